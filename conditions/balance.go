package conditions

import (
	"github.com/shopspring/decimal"

	"github.com/iho/beanfilter/ledger"
)

// maximumTolerance caps tolerances inferred through costs and prices.
var maximumTolerance = decimal.New(5, -1)

// IsBalanced reports whether the transaction's postings sum to zero within
// the tolerances opts implies. A transaction holding a residual posting is
// balanced by construction: interpolation will absorb the difference.
func IsBalanced(txn *ledger.Transaction, opts *ledger.Options) bool {
	for _, p := range txn.Postings {
		if IsResidualPosting(p) {
			return true
		}
	}

	return Residual(txn).IsSmall(InferTolerances(txn, opts))
}

// Residual returns the sum of the transaction's posting weights per
// currency. Postings without units contribute nothing.
func Residual(txn *ledger.Transaction) ledger.Inventory {
	inv := ledger.NewInventory()
	for _, p := range txn.Postings {
		weight, err := p.Weight()
		if err != nil {
			continue
		}
		inv.Add(weight)
	}
	return inv
}

// InferTolerances derives per-currency tolerances from the precision of the
// transaction's posting amounts. Each currency tolerates half (or whatever
// multiple opts configures) of the smallest digit written for it; integer
// amounts tolerate nothing. With InferToleranceFromCost set, tolerances
// propagate to cost and price currencies scaled by the conversion rate,
// capped at 0.5.
func InferTolerances(txn *ledger.Transaction, opts *ledger.Options) ledger.Tolerances {
	tolerances := ledger.Tolerances{}
	for currency, tol := range opts.InferredToleranceDefault {
		tolerances[currency] = tol
	}

	costTolerances := map[string]decimal.Decimal{}

	for _, p := range txn.Postings {
		if p.Units == nil {
			continue
		}

		expo := p.Units.Number.Exponent()
		if expo >= 0 {
			continue
		}

		tol := decimal.New(1, expo).Mul(opts.InferredToleranceMultiplier)
		raiseTolerance(tolerances, p.Units.Currency, tol)

		if !opts.InferToleranceFromCost {
			continue
		}
		if p.Cost != nil {
			scaled := decimal.Min(tol.Mul(p.Cost.Number), maximumTolerance)
			costTolerances[p.Cost.Currency] = costTolerances[p.Cost.Currency].Add(scaled)
		}
		if p.Price != nil {
			scaled := decimal.Min(tol.Mul(p.Price.Number), maximumTolerance)
			costTolerances[p.Price.Currency] = costTolerances[p.Price.Currency].Add(scaled)
		}
	}

	for currency, tol := range costTolerances {
		raiseTolerance(tolerances, currency, tol)
	}

	return tolerances
}

func raiseTolerance(tolerances ledger.Tolerances, currency string, tol decimal.Decimal) {
	if current, ok := tolerances[currency]; ok && current.GreaterThanOrEqual(tol) {
		return
	}
	tolerances[currency] = tol
}
