// SPDX-License-Identifier: MIT

package aggregate

// EmptyPolicy decides what a fold returns when a range holds no numeric cells.
type EmptyPolicy int

const (
	// Strict fails every operation with ErrEmptyAggregate.
	Strict EmptyPolicy = iota
	// Permissive returns the fold seed (Sum 0, Product 1); Mean still fails.
	Permissive
)

// String returns the policy name.
func (p EmptyPolicy) String() string {
	if p == Permissive {
		return "permissive"
	}

	return "strict"
}

// Defaults.
const (
	// DefaultEmptyPolicy is Strict.
	DefaultEmptyPolicy = Strict

	// DefaultRejectNonNumeric keeps the skip behavior for Empty and Text cells.
	DefaultRejectNonNumeric = false
)

const panicEmptyPolicyInvalid = "aggregate: WithEmptyPolicy: unknown policy"

// Option mutates Options. Options are applied in order; the last writer wins.
type Option func(*Options)

// Options holds the effective fold configuration.
type Options struct {
	empty        EmptyPolicy
	rejectNonNum bool
}

// EmptyPolicy returns the configured empty-range policy.
func (o Options) EmptyPolicy() EmptyPolicy { return o.empty }

// RejectNonNumeric reports whether non-Number cells abort the fold.
func (o Options) RejectNonNumeric() bool { return o.rejectNonNum }

// WithStrict selects the Strict empty-range policy.
func WithStrict() Option {
	return func(o *Options) { o.empty = Strict }
}

// WithPermissive selects the Permissive empty-range policy.
func WithPermissive() Option {
	return func(o *Options) { o.empty = Permissive }
}

// WithEmptyPolicy selects p. Panics on a value other than Strict or Permissive.
func WithEmptyPolicy(p EmptyPolicy) Option {
	if p != Strict && p != Permissive {
		panic(panicEmptyPolicyInvalid)
	}

	return func(o *Options) { o.empty = p }
}

// WithRejectNonNumeric makes any Empty or Text cell inside the range fail
// the fold with ErrNonNumeric instead of being skipped.
func WithRejectNonNumeric() Option {
	return func(o *Options) { o.rejectNonNum = true }
}

// WithSkipNonNumeric restores the default skipping of Empty and Text cells.
func WithSkipNonNumeric() Option {
	return func(o *Options) { o.rejectNonNum = false }
}

// gatherOptions resolves user options over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		empty:        DefaultEmptyPolicy,
		rejectNonNum: DefaultRejectNonNumeric,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// Resolve returns the effective Options for opts, for callers that report
// the configuration they ran with.
func Resolve(opts ...Option) Options {
	return gatherOptions(opts...)
}
