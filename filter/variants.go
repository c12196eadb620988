package filter

import (
	"github.com/iho/beanfilter/conditions"
	"github.com/iho/beanfilter/ledger"
)

// IsTransaction matches transaction entries.
func IsTransaction() Condition {
	return ConditionFunc(func(entry ledger.Directive) bool {
		return entry.Kind() == ledger.KindTransaction
	})
}

// Balanced matches transactions whose postings balance within the
// tolerances opts implies. The entry is asserted to be a transaction, so
// the condition must run after IsTransaction in a condition list.
func Balanced(opts *ledger.Options) Condition {
	return ConditionFunc(func(entry ledger.Directive) bool {
		return conditions.IsBalanced(entry.(*ledger.Transaction), opts)
	})
}

// Predicted matches transactions carrying a classifier prediction tag.
// Like Balanced it relies on IsTransaction having run first.
func Predicted() Condition {
	return ConditionFunc(func(entry ledger.Directive) bool {
		return conditions.IsPredicted(entry.(*ledger.Transaction))
	})
}

// Transactions keeps only transaction entries.
func Transactions() *Filter {
	return New("transactions", IsTransaction())
}

// BalancedTransactions keeps transactions whose postings balance.
func BalancedTransactions(opts *ledger.Options) *Filter {
	return New("balanced_transactions", IsTransaction(), Balanced(opts))
}

// UnbalancedTransactions keeps transactions whose postings do not balance.
// Only the balance condition is inverted: non-transaction entries stay
// excluded.
func UnbalancedTransactions(opts *ledger.Options) *Filter {
	return New("unbalanced_transactions", IsTransaction(), Invert(Balanced(opts)))
}

// PredictedTransactions keeps transactions completed by a classifier.
func PredictedTransactions() *Filter {
	return New("predicted_transactions", IsTransaction(), Predicted())
}
