package invoice

import "github.com/shopspring/decimal"

// item is a helper for test to create a valid item from const
func item(id int, description string, quantity, unitPrice, discount float64) Item {
	return Item{
		ID:          id,
		Description: description,
		Quantity:    N(quantity),
		UnitPrice:   N(unitPrice),
		Discount:    N(discount),
	}
}

// dec is a helper for test to create a decimal from a literal
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ids returns the item ids in display order.
func ids(l Ledger) []int {
	var res []int
	for it := range l.Items() {
		res = append(res, it.ID)
	}
	return res
}
