// Package dedup splits freshly imported transactions into duplicates of
// already booked ones and genuinely new entries.
package dedup

import (
	"sort"

	"github.com/iho/beanfilter/conditions"
	"github.com/iho/beanfilter/ledger"
)

// Comparator decides whether an imported transaction duplicates an
// existing one.
type Comparator interface {
	Duplicates(existing, imported *ledger.Transaction) bool
}

// ComparatorFunc adapts a function to the Comparator interface.
type ComparatorFunc func(existing, imported *ledger.Transaction) bool

// Duplicates calls f.
func (f ComparatorFunc) Duplicates(existing, imported *ledger.Transaction) bool {
	return f(existing, imported)
}

// Deduplicator matches imported transactions against existing ones inside
// a date window around each imported transaction's date.
type Deduplicator struct {
	cmp      Comparator
	headDays int
	tailDays int
}

// New creates a Deduplicator scanning headDays before and tailDays after
// each imported transaction's date.
func New(cmp Comparator, headDays, tailDays int) *Deduplicator {
	return &Deduplicator{cmp: cmp, headDays: headDays, tailDays: tailDays}
}

// Deduplicate partitions imported into transactions duplicating one of
// existing and the rest, each keeping input order. existing must be sorted
// by ascending date.
func (d *Deduplicator) Deduplicate(existing, imported []*ledger.Transaction) (duplicates, fresh []*ledger.Transaction) {
	duplicates = make([]*ledger.Transaction, 0, len(imported))
	fresh = make([]*ledger.Transaction, 0, len(imported))

	for _, txn := range imported {
		if d.duplicated(existing, txn) {
			duplicates = append(duplicates, txn)
		} else {
			fresh = append(fresh, txn)
		}
	}

	return duplicates, fresh
}

func (d *Deduplicator) duplicated(existing []*ledger.Transaction, txn *ledger.Transaction) bool {
	start := txn.Date.AddDate(0, 0, -d.headDays)
	end := txn.Date.AddDate(0, 0, d.tailDays+1)

	lo := sort.Search(len(existing), func(i int) bool {
		return !existing[i].Date.Before(start)
	})
	hi := sort.Search(len(existing), func(i int) bool {
		return !existing[i].Date.Before(end)
	})

	for _, candidate := range existing[lo:hi] {
		if d.cmp.Duplicates(candidate, txn) {
			return true
		}
	}
	return false
}

// InternalTransfer treats an imported transaction as a duplicate when it
// mirrors the other leg of a transfer between own accounts.
type InternalTransfer struct {
	// MaxDateDiff is the largest day gap allowed between the two legs.
	MaxDateDiff int
}

// Duplicates reports whether imported mirrors existing.
func (c InternalTransfer) Duplicates(existing, imported *ledger.Transaction) bool {
	return conditions.IsInternalTransfer(existing, imported, c.MaxDateDiff)
}

// NewInternalTransfer creates a Deduplicator catching mirrored transfers
// dated up to maxDateDiff days apart.
func NewInternalTransfer(maxDateDiff int) *Deduplicator {
	return New(InternalTransfer{MaxDateDiff: maxDateDiff}, maxDateDiff, maxDateDiff)
}
