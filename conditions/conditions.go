// Package conditions implements the transaction predicates the filtering
// layer consumes: balance checking against inferred tolerances, classifier
// prediction marks and internal transfer detection.
package conditions

import (
	"github.com/iho/beanfilter/ledger"
)

// PredictedTagPrefix marks transactions completed by a classifier. The
// classifier stamps a tag with this prefix whenever it books a missing leg.
const PredictedTagPrefix = "_new"

// IsResidualPosting reports whether the posting absorbs its transaction's
// residual: its units are left for interpolation or it was added by tooling.
func IsResidualPosting(p ledger.Posting) bool {
	return p.Units == nil || p.Automatic()
}

// IsPredicted reports whether the transaction carries a classifier
// prediction mark.
func IsPredicted(txn *ledger.Transaction) bool {
	return IsPredictedWith(txn, PredictedTagPrefix)
}

// IsPredictedWith reports whether any transaction tag starts with prefix.
func IsPredictedWith(txn *ledger.Transaction, prefix string) bool {
	return txn.HasTagPrefix(prefix)
}
