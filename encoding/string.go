package encoding

import (
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/grongierisc/dlist/errs"
	"github.com/grongierisc/dlist/format"
)

// DefaultLocale is the locale used when a Config does not name one:
// a direct byte-for-codepoint Latin-1 mapping, which can represent any
// byte string and therefore never fails to decode.
const DefaultLocale = "latin-1"

// EncodeStringLadder runs the three-tier string encoding ladder: Latin-1
// first, then UTF-16LE if allowUnicode, then the configured multibyte
// locale (still tagged ASCII) as a last resort.
func EncodeStringLadder(s string, locale string, allowUnicode bool) (payload []byte, tag format.Tag, err error) {
	if isLatin1(s) {
		return encodeLatin1(s), format.ASCII, nil
	}

	if allowUnicode {
		return encodeUTF16LE(s), format.Unicode, nil
	}

	b, err := encodeLocale(s, locale)
	if err != nil {
		return nil, 0, err
	}

	return b, format.ASCII, nil
}

// EncodeUTF16LE packs s as little-endian UTF-16 code units. Exported for
// callers that already know they want the UNICODE tier directly.
func EncodeUTF16LE(s string) []byte {
	return encodeUTF16LE(s)
}

// DecodeUTF16LE unpacks a UNICODE tag's payload.
func DecodeUTF16LE(payload []byte) (string, error) {
	if len(payload)%2 != 0 {
		return "", fmt.Errorf("%w: unicode payload has odd length %d", errs.ErrTruncatedPayload, len(payload))
	}

	units := make([]uint16, len(payload)/2)
	for i := range units {
		units[i] = le.Uint16(payload[i*2:])
	}

	return string(utf16.Decode(units)), nil
}

// DecodeASCIIText decodes an ASCII-tag payload as text using locale,
// falling back to the raw bytes (ok=false) if the locale cannot decode
// them. The default locale, Latin-1, never fails.
func DecodeASCIIText(payload []byte, locale string) (text string, ok bool) {
	if locale == "" || locale == DefaultLocale {
		return decodeLatin1(payload), true
	}

	s, err := decodeLocale(payload, locale)
	if err != nil {
		return "", false
	}

	return s, true
}

func isLatin1(s string) bool {
	for _, r := range s {
		if r > 0xFF {
			return false
		}
	}

	return true
}

func encodeLatin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = append(out, byte(r))
	}

	return out
}

func decodeLatin1(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}

	return string(runes)
}

func encodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, len(units)*2)
	for i, u := range units {
		le.PutUint16(out[i*2:], u)
	}

	return out
}

// encodeLocale and decodeLocale resolve an arbitrary configured locale
// name (e.g. "shift_jis", "windows-1252", "gbk") via the WHATWG encoding
// label registry and transcode through it. This is the fallback tier of
// the string ladder, reached only when Unicode is disabled and the
// value contains characters outside Latin-1.
func encodeLocale(s string, locale string) ([]byte, error) {
	enc, err := htmlindex.Get(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown locale %q", errs.ErrUnencodableString, locale)
	}

	out, err := enc.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnencodableString, err)
	}

	return []byte(out), nil
}

func decodeLocale(b []byte, locale string) (string, error) {
	enc, err := htmlindex.Get(locale)
	if err != nil {
		return "", fmt.Errorf("%w: unknown locale %q", errs.ErrUnencodableString, locale)
	}

	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrUnencodableString, err)
	}

	return string(out), nil
}
