// Package booking completes unbalanced transactions by booking their
// missing leg to a suggested account, the way a classifier materializes
// its predictions.
package booking

import (
	"errors"
	"fmt"

	"github.com/iho/beanfilter/conditions"
	"github.com/iho/beanfilter/ledger"
)

// ErrAccountCount is returned when accounts does not pair up with the
// transactions.
var ErrAccountCount = errors.New("accounts must pair up with transactions")

// AutoBalance books the missing leg of each unbalanced transaction to the
// paired account: txns[i] gets a leg on accounts[i], skipped when the
// account is empty. The added posting is marked automatic and carries no
// units, leaving the amount to interpolation. tags are added to every
// completed transaction.
//
// Balanced transactions and skipped ones pass through untouched; completed
// ones are clones, so the input is never modified.
func AutoBalance(txns []*ledger.Transaction, accounts []string, opts *ledger.Options, tags ...string) ([]*ledger.Transaction, error) {
	if len(txns) != len(accounts) {
		return nil, fmt.Errorf("%w: %d transactions, %d accounts", ErrAccountCount, len(txns), len(accounts))
	}

	out := make([]*ledger.Transaction, len(txns))
	for i, txn := range txns {
		account := accounts[i]
		if account == "" || conditions.IsBalanced(txn, opts) {
			out[i] = txn
			continue
		}

		clone := txn.Clone()
		clone.Postings = append(clone.Postings, ledger.Posting{
			Account: account,
			Meta:    ledger.Metadata{ledger.MetaAutomatic: true},
		})
		for _, tag := range tags {
			if !clone.HasTag(tag) {
				clone.Tags = append(clone.Tags, tag)
			}
		}
		out[i] = clone
	}

	return out, nil
}
