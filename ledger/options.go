package ledger

import "github.com/shopspring/decimal"

// Options carries the balancing options a parsed ledger supplies. The
// filtering and booking packages treat it as opaque configuration for the
// balance check.
type Options struct {
	// InferredToleranceDefault seeds per-currency tolerances before
	// inference, with DefaultToleranceKey as wildcard.
	InferredToleranceDefault Tolerances

	// InferredToleranceMultiplier scales the smallest represented digit of
	// a posting's units into that currency's tolerance.
	InferredToleranceMultiplier decimal.Decimal

	// InferToleranceFromCost widens tolerances on cost and price
	// currencies of held commodities.
	InferToleranceFromCost bool
}

// DefaultOptions returns the options a ledger without explicit settings
// gets: half of the last digit as tolerance, no cost expansion.
func DefaultOptions() *Options {
	return &Options{
		InferredToleranceDefault:    Tolerances{},
		InferredToleranceMultiplier: decimal.New(5, -1),
		InferToleranceFromCost:      false,
	}
}
