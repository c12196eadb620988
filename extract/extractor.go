// Package extract derives per-transaction keys used for grouping,
// deduplication and classifier features.
package extract

import (
	"fmt"
	"regexp"

	"github.com/iho/beanfilter/ledger"
)

// TransactionExtractor derives one key per transaction, aligned with the
// input by index.
type TransactionExtractor interface {
	Extract(txns []*ledger.Transaction) []string
}

// ExtractorFunc adapts a function to the TransactionExtractor interface.
type ExtractorFunc func([]*ledger.Transaction) []string

// Extract calls f.
func (f ExtractorFunc) Extract(txns []*ledger.Transaction) []string {
	return f(txns)
}

// DescriptionSeparator joins payee and narration in description keys. A
// carriage return cannot occur in either field, making the key unambiguous.
const DescriptionSeparator = "\r"

// Description keys transactions by payee and narration.
func Description() TransactionExtractor {
	return ExtractorFunc(func(txns []*ledger.Transaction) []string {
		keys := make([]string, len(txns))
		for i, txn := range txns {
			keys[i] = txn.Payee + DescriptionSeparator + txn.Narration
		}
		return keys
	})
}

// AccountMatching keys transactions by the first posting account matching
// expr, empty when no posting matches. expr is anchored at the start of
// the account.
func AccountMatching(expr string) (TransactionExtractor, error) {
	re, err := compileAccountPattern(expr)
	if err != nil {
		return nil, err
	}

	return ExtractorFunc(func(txns []*ledger.Transaction) []string {
		keys := make([]string, len(txns))
		for i, txn := range txns {
			for _, p := range txn.Postings {
				if re.MatchString(p.Account) {
					keys[i] = p.Account
					break
				}
			}
		}
		return keys
	}), nil
}

// SourceFilename keys transactions by the file they were parsed from,
// empty when the parser recorded none.
func SourceFilename() TransactionExtractor {
	return ExtractorFunc(func(txns []*ledger.Transaction) []string {
		keys := make([]string, len(txns))
		for i, txn := range txns {
			if name, ok := txn.Meta[ledger.MetaFilename].(string); ok {
				keys[i] = name
			}
		}
		return keys
	})
}

// DateInts returns each transaction's date as a yyyymmdd integer.
func DateInts(txns []*ledger.Transaction) []int {
	dates := make([]int, len(txns))
	for i, txn := range txns {
		dates[i] = txn.Date.Year()*10000 + int(txn.Date.Month())*100 + txn.Date.Day()
	}
	return dates
}

// AmountSigns returns the sign of the first posting matching expr for each
// transaction: -1, 0 or 1, with 0 when no posting matches or the units are
// missing. expr is anchored like in AccountMatching.
func AmountSigns(expr string, txns []*ledger.Transaction) ([]int, error) {
	re, err := compileAccountPattern(expr)
	if err != nil {
		return nil, err
	}

	signs := make([]int, len(txns))
	for i, txn := range txns {
		for _, p := range txn.Postings {
			if !re.MatchString(p.Account) {
				continue
			}
			if p.Units != nil {
				signs[i] = p.Units.Number.Sign()
			}
			break
		}
	}
	return signs, nil
}

// compileAccountPattern anchors expr at the start of the account, so
// "Expenses:" does not match subaccounts like Assets:Expenses:Receivable.
func compileAccountPattern(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("^(?:" + expr + ")")
	if err != nil {
		return nil, fmt.Errorf("account pattern %q: %w", expr, err)
	}
	return re, nil
}
