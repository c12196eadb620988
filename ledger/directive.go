// Package ledger holds the in-memory data model of a parsed beancount-style
// ledger: dated directives, transaction postings, amounts and the balancing
// options a parser supplies alongside them.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind discriminates the concrete directive types.
type Kind int

const (
	KindTransaction Kind = iota
	KindOpen
	KindClose
	KindCommodity
	KindPad
	KindBalance
	KindNote
	KindEvent
	KindQuery
	KindPrice
	KindDocument
	KindCustom
)

// String returns the directive keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindTransaction:
		return "transaction"
	case KindOpen:
		return "open"
	case KindClose:
		return "close"
	case KindCommodity:
		return "commodity"
	case KindPad:
		return "pad"
	case KindBalance:
		return "balance"
	case KindNote:
		return "note"
	case KindEvent:
		return "event"
	case KindQuery:
		return "query"
	case KindPrice:
		return "price"
	case KindDocument:
		return "document"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Metadata carries the key-value pairs attached to directives and postings.
type Metadata map[string]any

// Metadata keys set by parsers and tooling rather than ledger authors.
const (
	MetaFilename  = "filename"
	MetaLineno    = "lineno"
	MetaAutomatic = "__automatic__"
)

// Directive is one dated entry of a ledger. The set of implementations is
// closed: every variant lives in this package and reports its own Kind.
type Directive interface {
	Kind() Kind
	Metadata() Metadata

	// date keeps the implementation set closed to this package.
	date() time.Time
}

// Entries is an ordered sequence of directives.
type Entries []Directive

// Transactions returns the transactions of entries, preserving order.
func Transactions(entries Entries) []*Transaction {
	txns := make([]*Transaction, 0, len(entries))
	for _, e := range entries {
		if txn, ok := e.(*Transaction); ok {
			txns = append(txns, txn)
		}
	}
	return txns
}

// Open declares an account available from its date onward.
type Open struct {
	Date       time.Time
	Account    string
	Currencies []string
	Booking    string
	Meta       Metadata
}

func (o *Open) Kind() Kind { return KindOpen }

func (o *Open) date() time.Time { return o.Date }

// Metadata returns the directive metadata, allocating it when nil.
func (o *Open) Metadata() Metadata {
	if o.Meta == nil {
		o.Meta = Metadata{}
	}
	return o.Meta
}

// Close marks an account unusable after its date.
type Close struct {
	Date    time.Time
	Account string
	Meta    Metadata
}

func (c *Close) Kind() Kind { return KindClose }

func (c *Close) date() time.Time { return c.Date }

func (c *Close) Metadata() Metadata {
	if c.Meta == nil {
		c.Meta = Metadata{}
	}
	return c.Meta
}

// Commodity declares a currency or commodity symbol.
type Commodity struct {
	Date     time.Time
	Currency string
	Meta     Metadata
}

func (c *Commodity) Kind() Kind { return KindCommodity }

func (c *Commodity) date() time.Time { return c.Date }

func (c *Commodity) Metadata() Metadata {
	if c.Meta == nil {
		c.Meta = Metadata{}
	}
	return c.Meta
}

// Pad inserts a balancing transaction from SourceAccount so a subsequent
// balance assertion on Account holds.
type Pad struct {
	Date          time.Time
	Account       string
	SourceAccount string
	Meta          Metadata
}

func (p *Pad) Kind() Kind { return KindPad }

func (p *Pad) date() time.Time { return p.Date }

func (p *Pad) Metadata() Metadata {
	if p.Meta == nil {
		p.Meta = Metadata{}
	}
	return p.Meta
}

// Balance asserts an account's balance on a date.
type Balance struct {
	Date      time.Time
	Account   string
	Amount    Amount
	Tolerance *decimal.Decimal
	Meta      Metadata
}

func (b *Balance) Kind() Kind { return KindBalance }

func (b *Balance) date() time.Time { return b.Date }

func (b *Balance) Metadata() Metadata {
	if b.Meta == nil {
		b.Meta = Metadata{}
	}
	return b.Meta
}

// Note attaches a dated comment to an account.
type Note struct {
	Date    time.Time
	Account string
	Comment string
	Meta    Metadata
}

func (n *Note) Kind() Kind { return KindNote }

func (n *Note) date() time.Time { return n.Date }

func (n *Note) Metadata() Metadata {
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	return n.Meta
}

// Event records a dated value for a named event type.
type Event struct {
	Date        time.Time
	Type        string
	Description string
	Meta        Metadata
}

func (e *Event) Kind() Kind { return KindEvent }

func (e *Event) date() time.Time { return e.Date }

func (e *Event) Metadata() Metadata {
	if e.Meta == nil {
		e.Meta = Metadata{}
	}
	return e.Meta
}

// Query embeds a named query expression in the ledger.
type Query struct {
	Date     time.Time
	Name     string
	Contents string
	Meta     Metadata
}

func (q *Query) Kind() Kind { return KindQuery }

func (q *Query) date() time.Time { return q.Date }

func (q *Query) Metadata() Metadata {
	if q.Meta == nil {
		q.Meta = Metadata{}
	}
	return q.Meta
}

// Price records an exchange rate between two currencies on a date.
type Price struct {
	Date     time.Time
	Currency string
	Amount   Amount
	Meta     Metadata
}

func (p *Price) Kind() Kind { return KindPrice }

func (p *Price) date() time.Time { return p.Date }

func (p *Price) Metadata() Metadata {
	if p.Meta == nil {
		p.Meta = Metadata{}
	}
	return p.Meta
}

// Document links a file to an account.
type Document struct {
	Date    time.Time
	Account string
	Path    string
	Tags    []string
	Links   []string
	Meta    Metadata
}

func (d *Document) Kind() Kind { return KindDocument }

func (d *Document) date() time.Time { return d.Date }

func (d *Document) Metadata() Metadata {
	if d.Meta == nil {
		d.Meta = Metadata{}
	}
	return d.Meta
}

// Custom carries tool-specific values under a directive name the core
// grammar does not interpret.
type Custom struct {
	Date   time.Time
	Name   string
	Values []any
	Meta   Metadata
}

func (c *Custom) Kind() Kind { return KindCustom }

func (c *Custom) date() time.Time { return c.Date }

func (c *Custom) Metadata() Metadata {
	if c.Meta == nil {
		c.Meta = Metadata{}
	}
	return c.Meta
}

var (
	_ Directive = (*Transaction)(nil)
	_ Directive = (*Open)(nil)
	_ Directive = (*Close)(nil)
	_ Directive = (*Commodity)(nil)
	_ Directive = (*Pad)(nil)
	_ Directive = (*Balance)(nil)
	_ Directive = (*Note)(nil)
	_ Directive = (*Event)(nil)
	_ Directive = (*Query)(nil)
	_ Directive = (*Price)(nil)
	_ Directive = (*Document)(nil)
	_ Directive = (*Custom)(nil)
)
