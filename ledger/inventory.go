
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Inventory accumulates amounts per currency.
type Inventory map[string]decimal.Decimal

// NewInventory creates an empty inventory.
func NewInventory() Inventory {
	return Inventory{}
}

// Add accumulates a into the inventory.
func (inv Inventory) Add(a Amount) {
	inv[a.Currency] = inv[a.Currency].Add(a.Number)
}

// Get returns the accumulated number for currency, zero when absent.
func (inv Inventory) Get(currency string) decimal.Decimal {
	return inv[currency]
}

// IsEmpty reports whether every position is exactly zero.
func (inv Inventory) IsEmpty() bool {
	for _, number := range inv {
		if !number.IsZero() {
			return false
		}
	}
	return true
}

// IsSmall reports whether every position stays within its tolerance.
func (inv Inventory) IsSmall(tol Tolerances) bool {
	for currency, number := range inv {
		if number.Abs().GreaterThan(tol.For(currency)) {
			return false
		}
	}
	return true
}

// Currencies returns the held currencies in lexical order.
func (inv Inventory) Currencies() []string {
	currencies := make([]string, 0, len(inv))
	for currency := range inv {
		currencies = append(currencies, currency)
	}
	sort.Strings(currencies)
	return currencies
}

// DefaultToleranceKey is the wildcard entry of a tolerance map, applying to
// currencies not listed themselves.
const DefaultToleranceKey = "*"

// Tolerances maps currency to the largest residual still regarded as zero.
type Tolerances map[string]decimal.Decimal

// For returns the tolerance for currency, falling back to the wildcard
// entry and then to zero.
func (t Tolerances) For(currency string) decimal.Decimal {
	if tol, ok := t[currency]; ok {
		return tol
	}
	if tol, ok := t[DefaultToleranceKey]; ok {
		return tol
	}
	return decimal.Zero
}
