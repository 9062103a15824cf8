package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/invoice"
	md "github.com/nao1215/markdown"
)

// Title is the heading of a rendered ledger.
const Title = "Document Items"

// ledgerView is the data of the ledger.md template.
type ledgerView struct {
	Title    string
	Currency string
	Count    int
	Items    string // markdown table
	Summary  string // markdown table
	Invalid  string // markdown section, empty when every line is valid
}

// LedgerMarkdown renders the lines of l followed by its summary.
func LedgerMarkdown(l invoice.Ledger) string {
	var invalid bytes.Buffer
	ConditionalBlock(&invalid, func(w io.Writer) bool {
		found := false
		fmt.Fprintln(w, "> **Totals unavailable**: some values are not numbers.")
		for it := range l.Items() {
			if it.IsValid() {
				continue
			}
			found = true
			for _, f := range []invoice.Field{invoice.FieldQuantity, invoice.FieldUnitPrice, invoice.FieldDiscount} {
				if v := fieldNumber(it, f); !v.IsValid() {
					fmt.Fprintf(w, "> - line %d, %s: %q\n", it.ID, f, v.Raw())
				}
			}
		}
		return found
	})

	partials := map[string]string{
		"ledger_title":   "ledger_title.md",
		"ledger_items":   "ledger_items.md",
		"ledger_summary": "ledger_summary.md",
		"ledger_invalid": "ledger_invalid.md",
	}
	return renderTemplate("ledger", "ledger.md", partials, ledgerView{
		Title:    Title,
		Currency: invoice.Currency,
		Count:    l.Len(),
		Items:    ItemsMarkdown(l),
		Summary:  SummaryMarkdown(l.Totals()),
		Invalid:  invalid.String(),
	})
}

// ItemsMarkdown renders the lines of l as a table.
func ItemsMarkdown(l invoice.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	table := md.TableSet{
		Header: []string{"#", "Description", "Qty", "Unit price", "Disc. %", "Subtotal"},
	}
	for it := range l.Items() {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(it.ID),
			cell(it.Description),
			number(it.Quantity),
			price(it.UnitPrice),
			number(it.Discount),
			it.Subtotal().String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// SummaryMarkdown renders the totals as a table.
func SummaryMarkdown(t invoice.Totals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Subtotal", t.Subtotal.String()},
			{"VAT 21%", t.Tax.String()},
			{"Total", t.Total.String()},
		},
	})
	return doc.String()
}

// ItemMarkdown renders a single line as a sentence.
func ItemMarkdown(it invoice.Item) string {
	desc := it.Description
	if desc == "" {
		desc = "(no description)"
	}
	return fmt.Sprintf("Line %d: %s x %s, discount %s%% = **%s** %s\n",
		it.ID,
		number(it.Quantity),
		price(it.UnitPrice),
		number(it.Discount),
		it.Subtotal(),
		cell(desc),
	)
}

func fieldNumber(it invoice.Item, f invoice.Field) invoice.Number {
	switch f {
	case invoice.FieldQuantity:
		return it.Quantity
	case invoice.FieldUnitPrice:
		return it.UnitPrice
	case invoice.FieldDiscount:
		return it.Discount
	default:
		return invoice.Number{}
	}
}
