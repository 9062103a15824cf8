package invoice

import (
	"iter"
	"slices"
)

// Ledger is an immutable snapshot of the ordered list of items of a document.
//
// Insertion order is display order and item IDs are unique. Operations never
// modify a Ledger, they return the next snapshot. The zero value is an empty
// ledger.
type Ledger struct {
	items []Item
}

// NewLedger creates a ledger holding a copy of items.
//
// Items sharing an ID with a previous one are dropped.
func NewLedger(items ...Item) Ledger {
	l := Ledger{items: make([]Item, 0, len(items))}
	for _, it := range items {
		if _, exists := l.Item(it.ID); exists {
			continue
		}
		l.items = append(l.items, it)
	}
	return l
}

// SeedLedger returns the ledger a new editing session starts with.
func SeedLedger() Ledger {
	return NewLedger(
		Item{
			ID:          1,
			Description: "Mantenimiento de estructuras metálicas con pintura anticorrosiva y preparación de superficie.",
			Quantity:    N(2),
			UnitPrice:   N(180.5),
			Discount:    N(5),
		},
		Item{
			ID:          2,
			Description: "Suministro e instalación de luminarias LED industriales de alta eficiencia.",
			Quantity:    N(8),
			UnitPrice:   N(95.25),
			Discount:    N(0),
		},
	)
}

// Len returns the number of items.
func (l Ledger) Len() int { return len(l.items) }

// Items iterates over the items in display order.
func (l Ledger) Items() iter.Seq[Item] { return slices.Values(l.items) }

// Item returns the item with this id.
func (l Ledger) Item(id int) (Item, bool) {
	i := l.index(id)
	if i < 0 {
		return Item{}, false
	}
	return l.items[i], true
}

// NextID returns the id Add will assign: one more than the largest id, or 1.
func (l Ledger) NextID() int {
	next := 1
	for _, it := range l.items {
		if it.ID >= next {
			next = it.ID + 1
		}
	}
	return next
}

// Add returns a ledger with a new default item appended.
func (l Ledger) Add() Ledger {
	items := make([]Item, len(l.items), len(l.items)+1)
	copy(items, l.items)
	return Ledger{items: append(items, NewItem(l.NextID()))}
}

// Update returns a ledger where field f of item id is set from raw input.
//
// Description is stored as is, numeric fields go through ParseNumber.
// An unknown id leaves the ledger unchanged.
func (l Ledger) Update(id int, f Field, raw string) Ledger {
	i := l.index(id)
	if i < 0 {
		return l
	}
	items := slices.Clone(l.items)
	items[i] = items[i].with(f, raw)
	return Ledger{items: items}
}

// Remove returns a ledger without item id. An unknown id leaves the ledger unchanged.
func (l Ledger) Remove(id int) Ledger {
	i := l.index(id)
	if i < 0 {
		return l
	}
	items := make([]Item, 0, len(l.items)-1)
	items = append(items, l.items[:i]...)
	items = append(items, l.items[i+1:]...)
	return Ledger{items: items}
}

func (l Ledger) index(id int) int {
	return slices.IndexFunc(l.items, func(it Item) bool { return it.ID == id })
}

func (l Ledger) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("currency", Currency)
	w.EmbedFrom(l.Totals())
	items := l.items
	if items == nil {
		items = []Item{}
	}
	w.Append("items", items)
	return w.MarshalJSON()
}
