// SPDX-License-Identifier: MIT

package delimited

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// Ragged decides how rows of differing lengths become a rectangular table.
type Ragged int

const (
	// RaggedPad extends short rows with Empty cells up to the longest row.
	RaggedPad Ragged = iota
	// RaggedTrim cuts every row down to the shortest one.
	RaggedTrim
	// RaggedReject fails with table.ErrNonRectangular.
	RaggedReject
)

// String returns the policy name as used on the command line.
func (r Ragged) String() string {
	switch r {
	case RaggedPad:
		return "pad"
	case RaggedTrim:
		return "trim"
	case RaggedReject:
		return "reject"
	default:
		return fmt.Sprintf("Ragged(%d)", int(r))
	}
}

// ParseRagged maps "pad", "trim" or "reject" to a policy.
func ParseRagged(name string) (Ragged, error) {
	switch strings.ToLower(name) {
	case "pad":
		return RaggedPad, nil
	case "trim":
		return RaggedTrim, nil
	case "reject":
		return RaggedReject, nil
	}

	return 0, fmt.Errorf("delimited: unknown ragged policy %q", name)
}

// Defaults.
const (
	DefaultDelimiter = ','
	DefaultRagged    = RaggedPad
)

const (
	panicDelimiterInvalid = "delimited: WithDelimiter: delimiter must be a valid rune other than NUL, '\"', '\\r', '\\n'"
	panicRaggedInvalid    = "delimited: WithRagged: unknown policy"
)

// Option mutates Options.
type Option func(*Options)

// Options holds the effective reader/writer configuration.
type Options struct {
	delim   rune
	ragged  Ragged
	enc     encoding.Encoding // nil means UTF-8
	charset string            // resolved lazily; overrides enc when set
}

// WithDelimiter sets the field separator. Panics on 0, '"', '\r', '\n',
// utf8.RuneError or an invalid rune.
func WithDelimiter(r rune) Option {
	if r == 0 || r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError || !utf8.ValidRune(r) {
		panic(panicDelimiterInvalid)
	}

	return func(o *Options) { o.delim = r }
}

// WithRagged sets the ragged-row policy. Panics on an unknown value.
func WithRagged(p Ragged) Option {
	if p != RaggedPad && p != RaggedTrim && p != RaggedReject {
		panic(panicRaggedInvalid)
	}

	return func(o *Options) { o.ragged = p }
}

// WithEncoding decodes input (and encodes output) with enc.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *Options) { o.enc, o.charset = enc, "" }
}

// WithCharset selects the encoding by its WHATWG name or label
// ("windows-1251", "latin1", "koi8-r", ...). Unknown names surface as
// ErrUnknownCharset from Read/Write.
func WithCharset(name string) Option {
	return func(o *Options) { o.charset = name }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		delim:  DefaultDelimiter,
		ragged: DefaultRagged,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// resolveEncoding resolves the configured charset; nil means UTF-8.
func (o Options) resolveEncoding() (encoding.Encoding, error) {
	if o.charset == "" {
		return o.enc, nil
	}
	enc, err := htmlindex.Get(o.charset)
	if err != nil {
		return nil, fmt.Errorf("delimited: %q: %w", o.charset, ErrUnknownCharset)
	}
	if enc == unicode.UTF8 {
		return nil, nil
	}

	return enc, nil
}
