package ledger

// Posting is a single leg of a transaction. Units may be nil when the
// amount is left for interpolation to fill in.
type Posting struct {
	Account string
	Units   *Amount
	Cost    *Amount
	Price   *Amount
	Flag    string
	Meta    Metadata
}

// Automatic reports whether the posting was added by tooling rather than
// written in the ledger source.
func (p Posting) Automatic() bool {
	v, ok := p.Meta[MetaAutomatic].(bool)
	return ok && v
}

// Weight returns the amount the posting contributes to its transaction's
// balance: units priced at cost when a cost is attached, converted at price
// when a price is attached, otherwise the units themselves.
func (p Posting) Weight() (Amount, error) {
	if p.Units == nil {
		return Amount{}, ErrMissingUnits
	}

	switch {
	case p.Cost != nil:
		return Amount{Number: p.Units.Number.Mul(p.Cost.Number), Currency: p.Cost.Currency}, nil
	case p.Price != nil:
		return Amount{Number: p.Units.Number.Mul(p.Price.Number), Currency: p.Price.Currency}, nil
	default:
		return *p.Units, nil
	}
}

func (p Posting) clone() Posting {
	out := p
	if p.Units != nil {
		units := *p.Units
		out.Units = &units
	}
	if p.Cost != nil {
		cost := *p.Cost
		out.Cost = &cost
	}
	if p.Price != nil {
		price := *p.Price
		out.Price = &price
	}
	out.Meta = p.Meta.clone()
	return out
}
