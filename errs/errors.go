// Package errs defines the sentinel errors returned by the dlist codec.
//
// Call sites wrap these with additional context via fmt.Errorf's %w verb
// so callers can still compare with errors.Is while getting a useful
// message, e.g.:
//
//	return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrTruncatedHeader, need, len(data))
package errs

import "errors"

var (
	// ErrTruncatedHeader is returned when the buffer ends before a
	// length header is complete, or a long-form header stores a zero
	// length.
	ErrTruncatedHeader = errors.New("dlist: truncated or invalid header")

	// ErrTruncatedPayload is returned when a header's declared
	// next-offset exceeds the remaining buffer, or when a payload's
	// length is invalid for its tag.
	ErrTruncatedPayload = errors.New("dlist: truncated payload")

	// ErrUnknownTag is returned when a tag byte does not map to any
	// defined format.Tag.
	ErrUnknownTag = errors.New("dlist: unknown type tag")

	// ErrRangeOverflow is returned when an integer or decimal value's
	// magnitude cannot be represented in the 8-byte / 63-bit wire
	// envelope after all normalization passes.
	ErrRangeOverflow = errors.New("dlist: value out of encodable range")

	// ErrUnencodableString is returned when a string cannot be
	// represented under the configured locale and Unicode escalation
	// is disabled.
	ErrUnencodableString = errors.New("dlist: string not encodable under configured locale")

	// ErrUnsupportedValueKind is returned when encoding is asked to
	// serialize a host value whose kind has no wire representation.
	ErrUnsupportedValueKind = errors.New("dlist: unsupported value kind")

	// ErrMaxDepthExceeded is returned when nested-list recognition
	// recurses past the configured depth limit.
	ErrMaxDepthExceeded = errors.New("dlist: nested list recursion limit exceeded")
)
