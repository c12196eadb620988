package filter

import (
	"sort"

	"github.com/iho/beanfilter/extract"
	"github.com/iho/beanfilter/ledger"
)

// SequenceTransform rewrites a whole transaction sequence. It covers
// selections a per-entry Condition cannot express, like keeping one
// representative per group of related transactions.
type SequenceTransform interface {
	Transform(txns []*ledger.Transaction) []*ledger.Transaction
}

// TransformFunc adapts a function to the SequenceTransform interface.
type TransformFunc func([]*ledger.Transaction) []*ledger.Transaction

// Transform calls f.
func (f TransformFunc) Transform(txns []*ledger.Transaction) []*ledger.Transaction {
	return f(txns)
}

// MostRecent keeps, for each key ext assigns, only the latest-dated
// transaction. Earlier-dated duplicates drop; on equal dates the first
// seen survives. Survivors come out in input order.
func MostRecent(ext extract.TransactionExtractor) SequenceTransform {
	return TransformFunc(func(txns []*ledger.Transaction) []*ledger.Transaction {
		keys := ext.Extract(txns)

		keyToIdx := make(map[string]int, len(txns))
		for i, txn := range txns {
			kept, ok := keyToIdx[keys[i]]
			if !ok || txn.Date.After(txns[kept].Date) {
				keyToIdx[keys[i]] = i
			}
		}

		indices := make([]int, 0, len(keyToIdx))
		for _, i := range keyToIdx {
			indices = append(indices, i)
		}
		sort.Ints(indices)

		out := make([]*ledger.Transaction, len(indices))
		for n, i := range indices {
			out[n] = txns[i]
		}
		return out
	})
}
