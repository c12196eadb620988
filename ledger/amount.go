package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a number of some currency.
type Amount struct {
	Number   decimal.Decimal
	Currency string
}

// NewAmount creates an amount of number currency.
func NewAmount(number decimal.Decimal, currency string) Amount {
	return Amount{Number: number, Currency: currency}
}

// IsZero reports whether the amount's number is zero.
func (a Amount) IsZero() bool {
	return a.Number.IsZero()
}

// Equal reports whether both number and currency match.
func (a Amount) Equal(b Amount) bool {
	return a.Currency == b.Currency && a.Number.Equal(b.Number)
}

// String renders the amount as "number currency".
func (a Amount) String() string {
	return fmt.Sprintf("%s %s", a.Number, a.Currency)
}
