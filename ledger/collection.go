package ledger

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// MetaID is the metadata key carrying an entry's collection id.
const MetaID = "eid"

// Collection tracks parsed entries in file order under stable ids, so
// tooling can address individual entries across edits. Ids are ULIDs
// stamped into each entry's metadata.
type Collection struct {
	entries Entries
	index   map[string]int
	opts    *Options
}

// NewCollection creates a collection over entries, assigning every entry a
// fresh id. opts may be nil, in which case defaults apply.
func NewCollection(entries Entries, opts *Options) *Collection {
	if opts == nil {
		opts = DefaultOptions()
	}

	c := &Collection{
		entries: append(Entries(nil), entries...),
		index:   make(map[string]int, len(entries)),
		opts:    opts,
	}
	for i, e := range c.entries {
		c.index[c.stamp(e)] = i
	}

	return c
}

func (c *Collection) stamp(e Directive) string {
	id := ulid.Make().String()
	e.Metadata()[MetaID] = id
	return id
}

// Len returns the number of tracked entries.
func (c *Collection) Len() int {
	return len(c.entries)
}

// Options returns the balancing options the collection was created with.
func (c *Collection) Options() *Options {
	return c.opts
}

// Entries returns the tracked entries in order. The returned slice is a
// copy; the entries themselves are shared.
func (c *Collection) Entries() Entries {
	return append(Entries(nil), c.entries...)
}

// Transactions returns the tracked transactions in order.
func (c *Collection) Transactions() []*Transaction {
	return Transactions(c.entries)
}

// ID returns the collection id stamped on e, empty when e is untracked.
func (c *Collection) ID(e Directive) string {
	id, _ := e.Metadata()[MetaID].(string)
	if _, ok := c.index[id]; !ok {
		return ""
	}
	return id
}

// Get returns the entry tracked under id.
func (c *Collection) Get(id string) (Directive, error) {
	i, ok := c.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", ErrEntryNotFound, id)
	}
	return c.entries[i], nil
}

// Add appends e and returns its newly assigned id.
func (c *Collection) Add(e Directive) string {
	id := c.stamp(e)
	c.entries = append(c.entries, e)
	c.index[id] = len(c.entries) - 1
	return id
}

// Replace swaps the entry tracked under id for e, keeping id and position.
func (c *Collection) Replace(id string, e Directive) error {
	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("%w: id %s", ErrEntryNotFound, id)
	}
	e.Metadata()[MetaID] = id
	c.entries[i] = e
	return nil
}

// Remove drops the entry tracked under id, shifting later entries down.
func (c *Collection) Remove(id string) error {
	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("%w: id %s", ErrEntryNotFound, id)
	}

	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	delete(c.index, id)
	for otherID, j := range c.index {
		if j > i {
			c.index[otherID] = j - 1
		}
	}

	return nil
}
