// Package ledgertest provides fixture builders for tests across the module.
// Builders panic on malformed literals; they are meant for hardcoded test
// data only.
package ledgertest

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/beanfilter/ledger"
)

// Date parses an ISO formatted day like "2024-03-01".
func Date(value string) time.Time {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(fmt.Sprintf("ledgertest: bad date %q: %v", value, err))
	}
	return date
}

// Post builds a posting of number currency booked to account.
func Post(account, number, currency string) ledger.Posting {
	units := ledger.NewAmount(decimal.RequireFromString(number), currency)
	return ledger.Posting{Account: account, Units: &units}
}

// MissingPost builds a posting whose amount is left for interpolation.
func MissingPost(account string) ledger.Posting {
	return ledger.Posting{Account: account}
}

// AutoPost builds a tooling-added posting of number currency.
func AutoPost(account, number, currency string) ledger.Posting {
	p := Post(account, number, currency)
	p.Meta = ledger.Metadata{ledger.MetaAutomatic: true}
	return p
}

// Txn builds a flagged-okay transaction dated date.
func Txn(date, payee, narration string, postings ...ledger.Posting) *ledger.Transaction {
	return &ledger.Transaction{
		Date:      Date(date),
		Flag:      ledger.FlagOkay,
		Payee:     payee,
		Narration: narration,
		Postings:  postings,
	}
}

// Tagged adds tags to txn and returns it, for chaining in fixtures.
func Tagged(txn *ledger.Transaction, tags ...string) *ledger.Transaction {
	txn.Tags = append(txn.Tags, tags...)
	return txn
}
