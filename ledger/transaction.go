package ledger

import (
	"strings"
	"time"
)

// Transaction flags.
const (
	FlagOkay    = "*"
	FlagWarning = "!"
	FlagPadding = "P"
)

// Transaction records a financial transaction: a dated set of postings that
// must balance to zero, with an optional payee and a narration.
type Transaction struct {
	Date      time.Time
	Flag      string
	Payee     string
	Narration string
	Tags      []string
	Links     []string
	Postings  []Posting
	Meta      Metadata
}

func (t *Transaction) Kind() Kind { return KindTransaction }

func (t *Transaction) date() time.Time { return t.Date }

// Metadata returns the transaction metadata, allocating it when nil.
func (t *Transaction) Metadata() Metadata {
	if t.Meta == nil {
		t.Meta = Metadata{}
	}
	return t.Meta
}

// HasTag reports whether the transaction carries exactly tag.
func (t *Transaction) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// HasTagPrefix reports whether any tag starts with prefix.
func (t *Transaction) HasTagPrefix(prefix string) bool {
	for _, have := range t.Tags {
		if strings.HasPrefix(have, prefix) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the transaction. Postings, tags, links and
// metadata are copied so mutating the clone leaves the original intact.
func (t *Transaction) Clone() *Transaction {
	clone := *t
	clone.Tags = append([]string(nil), t.Tags...)
	clone.Links = append([]string(nil), t.Links...)
	clone.Meta = t.Meta.clone()

	clone.Postings = make([]Posting, len(t.Postings))
	for i, p := range t.Postings {
		clone.Postings[i] = p.clone()
	}

	return &clone
}

func (m Metadata) clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
