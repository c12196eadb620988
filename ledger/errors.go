package ledger

import "errors"

var (
	// Collection errors
	ErrEntryNotFound = errors.New("entry not found")

	// Posting errors
	ErrMissingUnits = errors.New("posting units left for interpolation")
)
