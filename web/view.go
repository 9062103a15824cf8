package web

import (
	"github.com/etnz/invoice"
	"github.com/etnz/invoice/renderer"
)

type formView struct {
	Title    string
	Items    []itemView
	Subtotal string
	Tax      string
	Total    string
	Invalid  bool
}

type itemView struct {
	ID          int
	Description string
	Quantity    string
	UnitPrice   string
	Discount    string
	Subtotal    string
	Invalid     bool
}

func newFormView(l invoice.Ledger) formView {
	totals := l.Totals()
	v := formView{
		Title:    renderer.Title,
		Subtotal: totals.Subtotal.String(),
		Tax:      totals.Tax.String(),
		Total:    totals.Total.String(),
		Invalid:  !totals.IsValid(),
	}
	for it := range l.Items() {
		v.Items = append(v.Items, itemView{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Value(invoice.FieldQuantity),
			UnitPrice:   it.Value(invoice.FieldUnitPrice),
			Discount:    it.Value(invoice.FieldDiscount),
			Subtotal:    it.Subtotal().String(),
			Invalid:     !it.IsValid(),
		})
	}
	return v
}
