package dlist

import (
	"github.com/grongierisc/dlist/encoding"
	"github.com/grongierisc/dlist/internal/options"
)

// DefaultMaxDepth bounds nested-list speculative re-parse recursion, to
// keep an adversarial or corrupt buffer from exhausting the stack.
const DefaultMaxDepth = 64

// Config holds the tunables of the codec: the locale used for the
// string ladder's last-resort tier, whether the UTF-16LE escalation
// tier is available, whether DOUBLE items prefer the trimmed compact
// form, and whether empty strings round-trip as the canonical null
// form or as an explicit zero-length string.
type Config struct {
	Locale            string
	AllowUnicode      bool
	CompactDouble     bool
	RetainEmptyString bool
	MaxDepth          int
}

// Option configures a Config, applied in order by NewConfig.
type Option = options.Option[*Config]

// WithLocale sets the fallback locale used when Unicode escalation is
// disabled and a string contains characters outside Latin-1. Locale
// names follow the WHATWG encoding label registry (e.g. "shift_jis",
// "windows-1252", "gbk").
func WithLocale(locale string) Option {
	return options.NoError(func(c *Config) { c.Locale = locale })
}

// WithUnicode controls whether the string ladder may escalate to
// UTF-16LE. Disabling it forces the configured locale's multibyte
// encoding for any string outside Latin-1.
func WithUnicode(enabled bool) Option {
	return options.NoError(func(c *Config) { c.AllowUnicode = enabled })
}

// WithCompactDouble controls whether float items prefer the trimmed
// COMPACT_DOUBLE/compact-DOUBLE forms over the plain 8-byte DOUBLE form.
func WithCompactDouble(enabled bool) Option {
	return options.NoError(func(c *Config) { c.CompactDouble = enabled })
}

// WithRetainEmptyString controls whether an empty string item encodes
// as the canonical null form (02 01) instead of the explicit
// zero-length string form (03 01 00).
func WithRetainEmptyString(enabled bool) Option {
	return options.NoError(func(c *Config) { c.RetainEmptyString = enabled })
}

// WithMaxDepth overrides the nested-list recursion limit.
func WithMaxDepth(n int) Option {
	return options.NoError(func(c *Config) { c.MaxDepth = n })
}

// NewConfig builds a Config from its defaults plus the given options.
func NewConfig(opts ...Option) *Config {
	cfg := &Config{
		Locale:       encoding.DefaultLocale,
		AllowUnicode: true,
		MaxDepth:     DefaultMaxDepth,
	}

	// Options built by NoError never fail; the error return exists only
	// so Config composes with options.Apply's general contract.
	_ = options.Apply(cfg, opts...)

	return cfg
}
