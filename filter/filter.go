// Package filter selects subsequences of ledger entries through composable
// per-entry conditions and whole-sequence transforms.
package filter

import (
	"github.com/rs/zerolog"

	"github.com/iho/beanfilter/ledger"
)

// Condition is a per-entry test a Filter applies.
type Condition interface {
	Match(entry ledger.Directive) bool
}

// ConditionFunc adapts a function to the Condition interface.
type ConditionFunc func(ledger.Directive) bool

// Match calls f.
func (f ConditionFunc) Match(entry ledger.Directive) bool {
	return f(entry)
}

// Invert returns a condition matching exactly when c does not. Inversion
// stays local to c: in a condition list only the wrapped test flips its
// sense, the other conditions keep theirs.
func Invert(c Condition) Condition {
	return ConditionFunc(func(entry ledger.Directive) bool {
		return !c.Match(entry)
	})
}

// EntryFilter is anything that reduces a sequence of entries.
type EntryFilter interface {
	Name() string
	Filter(entries ledger.Entries) ledger.Entries
}

// Filter keeps the entries matching all of its conditions. It holds no per
// run state: the same filter can serve any number of Filter calls, also
// concurrently.
type Filter struct {
	name  string
	conds []Condition
	log   zerolog.Logger
}

var _ EntryFilter = (*Filter)(nil)

// New creates a filter applying conds in order. With no conditions the
// filter passes every entry through.
func New(name string, conds ...Condition) *Filter {
	return &Filter{name: name, conds: conds, log: zerolog.Nop()}
}

// Name returns the filter's name.
func (f *Filter) Name() string {
	return f.name
}

// WithLogger returns a copy of the filter that logs one debug event per
// run, tagged with the filter's name.
func (f *Filter) WithLogger(log zerolog.Logger) *Filter {
	clone := *f
	clone.log = log.With().Str("filter", f.name).Logger()
	return &clone
}

// Filter returns the entries matching every condition, in input order. The
// input slice is never modified; without conditions it is returned as is.
func (f *Filter) Filter(entries ledger.Entries) ledger.Entries {
	if len(f.conds) == 0 {
		return entries
	}

	kept := make(ledger.Entries, 0, len(entries))
	for _, entry := range entries {
		if f.match(entry) {
			kept = append(kept, entry)
		}
	}

	f.log.Debug().
		Int("in", len(entries)).
		Int("out", len(kept)).
		Msg("filtered entries")

	return kept
}

// match tests the conditions in order, stopping at the first failure.
func (f *Filter) match(entry ledger.Directive) bool {
	for _, c := range f.conds {
		if !c.Match(entry) {
			return false
		}
	}
	return true
}
