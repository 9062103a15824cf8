package invoice

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Item is one billable line of a ledger.
type Item struct {
	ID          int
	Description string
	Quantity    Number
	UnitPrice   Number // in Currency
	Discount    Number // percentage, 0 to 100
}

// NewItem returns the item appended by Ledger.Add.
func NewItem(id int) Item {
	return Item{ID: id, Quantity: N(1)}
}

var hundredth = decimal.New(1, -2)

// Subtotal returns quantity × unit price × (1 − discount/100).
//
// The subtotal is invalid as soon as one of the numbers is.
func (it Item) Subtotal() Money {
	d, ok := it.Discount.Decimal()
	if !ok {
		return NaM()
	}
	factor := N(decimal.NewFromInt(1).Sub(d.Mul(hundredth)))
	return M(1).Mul(it.Quantity).Mul(it.UnitPrice).Mul(factor)
}

// IsValid reports whether all the numeric fields hold numbers.
func (it Item) IsValid() bool {
	return it.Quantity.IsValid() && it.UnitPrice.IsValid() && it.Discount.IsValid()
}

// Value returns the field as it would be typed back in the form.
func (it Item) Value(f Field) string {
	switch f {
	case FieldDescription:
		return it.Description
	case FieldQuantity:
		return it.Quantity.String()
	case FieldUnitPrice:
		return it.UnitPrice.String()
	case FieldDiscount:
		return it.Discount.String()
	default:
		return ""
	}
}

// with returns a copy of the item with field f set from raw input.
func (it Item) with(f Field, raw string) Item {
	switch f {
	case FieldDescription:
		it.Description = raw
	case FieldQuantity:
		it.Quantity = ParseNumber(raw)
	case FieldUnitPrice:
		it.UnitPrice = ParseNumber(raw)
	case FieldDiscount:
		it.Discount = ParseNumber(raw)
	}
	return it
}

func (it Item) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", it.ID)
	w.Append("description", it.Description)
	w.Append("quantity", it.Quantity)
	w.Append("unitPrice", it.UnitPrice)
	w.Append("discount", it.Discount)
	w.Append("subtotal", it.Subtotal())
	w.Optional("invalid", !it.IsValid())
	return w.MarshalJSON()
}

// Field selects one editable field of an Item.
type Field int

const (
	FieldDescription Field = iota
	FieldQuantity
	FieldUnitPrice
	FieldDiscount
)

// Fields lists the editable fields in display order.
var Fields = []Field{FieldDescription, FieldQuantity, FieldUnitPrice, FieldDiscount}

func (f Field) String() string {
	switch f {
	case FieldDescription:
		return "description"
	case FieldQuantity:
		return "quantity"
	case FieldUnitPrice:
		return "unitPrice"
	case FieldDiscount:
		return "discount"
	default:
		return "unknown"
	}
}

// ParseField parses a field name. Short aliases (desc, qty, price, disc) are accepted.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "description", "desc":
		return FieldDescription, nil
	case "quantity", "qty":
		return FieldQuantity, nil
	case "unitprice", "unit-price", "price":
		return FieldUnitPrice, nil
	case "discount", "disc":
		return FieldDiscount, nil
	default:
		return 0, fmt.Errorf("unknown field: %q", s)
	}
}
