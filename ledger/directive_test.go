package ledger

import (
	"testing"
	"time"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindTransaction, "transaction"},
		{KindOpen, "open"},
		{KindClose, "close"},
		{KindCommodity, "commodity"},
		{KindPad, "pad"},
		{KindBalance, "balance"},
		{KindNote, "note"},
		{KindEvent, "event"},
		{KindQuery, "query"},
		{KindPrice, "price"},
		{KindDocument, "document"},
		{KindCustom, "custom"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestDirectiveKinds(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		directive Directive
		want      Kind
	}{
		{"transaction", &Transaction{Date: date}, KindTransaction},
		{"open", &Open{Date: date, Account: "Assets:Cash"}, KindOpen},
		{"close", &Close{Date: date, Account: "Assets:Cash"}, KindClose},
		{"commodity", &Commodity{Date: date, Currency: "USD"}, KindCommodity},
		{"pad", &Pad{Date: date, Account: "Assets:Cash", SourceAccount: "Equity:Opening"}, KindPad},
		{"balance", &Balance{Date: date, Account: "Assets:Cash"}, KindBalance},
		{"note", &Note{Date: date, Account: "Assets:Cash", Comment: "note"}, KindNote},
		{"event", &Event{Date: date, Type: "location", Description: "home"}, KindEvent},
		{"query", &Query{Date: date, Name: "q", Contents: "SELECT 1"}, KindQuery},
		{"price", &Price{Date: date, Currency: "HOOL"}, KindPrice},
		{"document", &Document{Date: date, Account: "Assets:Cash", Path: "doc.pdf"}, KindDocument},
		{"custom", &Custom{Date: date, Name: "beanfilter-config"}, KindCustom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.directive.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectiveDates(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	directives := []Directive{
		&Transaction{Date: date},
		&Open{Date: date},
		&Close{Date: date},
		&Commodity{Date: date},
		&Pad{Date: date},
		&Balance{Date: date},
		&Note{Date: date},
		&Event{Date: date},
		&Query{Date: date},
		&Price{Date: date},
		&Document{Date: date},
		&Custom{Date: date},
	}

	for _, d := range directives {
		t.Run(d.Kind().String(), func(t *testing.T) {
			if got := d.date(); !got.Equal(date) {
				t.Errorf("date() = %v, want %v", got, date)
			}
		})
	}
}

func TestDirectiveMetadataAllocates(t *testing.T) {
	directives := []Directive{
		&Transaction{},
		&Open{},
		&Close{},
		&Commodity{},
		&Pad{},
		&Balance{},
		&Note{},
		&Event{},
		&Query{},
		&Price{},
		&Document{},
		&Custom{},
	}

	for _, d := range directives {
		t.Run(d.Kind().String(), func(t *testing.T) {
			meta := d.Metadata()
			if meta == nil {
				t.Fatalf("Metadata() = nil, want allocated map")
			}

			meta["key"] = "value"

			if got := d.Metadata()["key"]; got != "value" {
				t.Errorf("metadata did not persist, got %v", got)
			}
		})
	}
}

func TestTransactions(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	first := &Transaction{Date: date, Narration: "first"}
	second := &Transaction{Date: date, Narration: "second"}

	entries := Entries{
		&Open{Date: date, Account: "Assets:Cash"},
		first,
		&Price{Date: date, Currency: "HOOL"},
		second,
		&Close{Date: date, Account: "Assets:Cash"},
	}

	txns := Transactions(entries)

	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}
	if txns[0] != first || txns[1] != second {
		t.Errorf("transactions out of order: %v", txns)
	}
}
