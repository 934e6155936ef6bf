// SPDX-License-Identifier: MIT

package render

import (
	"unicode/utf8"

	"github.com/katalvlaran/lvtab/cell"
)

// Align selects padding side within a column.
type Align int

const (
	// AlignLeft pads on the right.
	AlignLeft Align = iota
	// AlignRight pads on the left.
	AlignRight
)

// Defaults.
const (
	DefaultAlign       = AlignLeft
	DefaultRule        = '-'
	DefaultPlaceholder = cell.Placeholder
)

const (
	panicAlignInvalid = "render: WithAlign: unknown alignment"
	panicRuleInvalid  = "render: WithRule: rule must be a printable single-width rune"
)

// Option mutates Options.
type Option func(*Options)

// Options holds the effective rendering configuration.
type Options struct {
	align       Align
	rule        rune
	placeholder string
}

// WithAlign sets cell alignment. Panics on an unknown value.
func WithAlign(a Align) Option {
	if a != AlignLeft && a != AlignRight {
		panic(panicAlignInvalid)
	}

	return func(o *Options) { o.align = a }
}

// WithRule sets the rune repeated in horizontal rules.
func WithRule(r rune) Option {
	if !utf8.ValidRune(r) || r < ' ' || displayWidth(string(r)) != 1 {
		panic(panicRuleInvalid)
	}

	return func(o *Options) { o.rule = r }
}

// WithPlaceholder sets the text printed for Empty cells; "" leaves them blank.
func WithPlaceholder(s string) Option {
	return func(o *Options) { o.placeholder = s }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		align:       DefaultAlign,
		rule:        DefaultRule,
		placeholder: DefaultPlaceholder,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
