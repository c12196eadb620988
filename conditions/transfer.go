package conditions

import (
	"time"

	"github.com/iho/beanfilter/ledger"
)

// IsInternalTransfer reports whether a and b look like the two legs of a
// transfer between own accounts: dated at most maxDateDiff days apart, with
// a posting pair in one currency cancelling to zero and the receiving side
// dated no earlier than the sending side.
func IsInternalTransfer(a, b *ledger.Transaction, maxDateDiff int) bool {
	gap := a.Date.Sub(b.Date)
	if gap < 0 {
		gap = -gap
	}
	if gap > time.Duration(maxDateDiff)*24*time.Hour {
		return false
	}

	for _, pa := range a.Postings {
		if pa.Units == nil {
			continue
		}
		for _, pb := range b.Postings {
			if pb.Units == nil || pb.Units.Currency != pa.Units.Currency {
				continue
			}
			if !pa.Units.Number.Add(pb.Units.Number).IsZero() {
				continue
			}
			// Money leaves one transaction and arrives in the other;
			// the arrival must not predate the departure. A pair of
			// zero postings moves nothing and is no transfer.
			if pa.Units.Number.IsPositive() && !a.Date.Before(b.Date) {
				return true
			}
			if pb.Units.Number.IsPositive() && !b.Date.Before(a.Date) {
				return true
			}
		}
	}

	return false
}
