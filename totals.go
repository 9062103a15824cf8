package invoice

import "github.com/shopspring/decimal"

// TaxRate is the VAT rate applied to the subtotal.
var TaxRate = N(decimal.New(21, -2))

// Totals are the amounts derived from a ledger.
type Totals struct {
	Subtotal Money
	Tax      Money
	Total    Money
}

// Totals sums the item subtotals and derives the tax and total.
//
// A single invalid item makes all three amounts invalid.
func (l Ledger) Totals() Totals {
	subtotal := M(0)
	for _, it := range l.items {
		subtotal = subtotal.Add(it.Subtotal())
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// IsValid reports whether the totals could be computed.
func (t Totals) IsValid() bool { return t.Subtotal.IsValid() }

func (t Totals) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("subtotal", t.Subtotal)
	w.Append("tax", t.Tax)
	w.Append("total", t.Total)
	return w.MarshalJSON()
}
