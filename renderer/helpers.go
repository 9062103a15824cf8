package renderer

import (
	"bytes"
	"io"
	"strings"

	"github.com/etnz/invoice"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// cell escapes text for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// price formats a unit price, or quotes the raw input when it is not a number.
func price(n invoice.Number) string {
	d, ok := n.Decimal()
	if !ok {
		return invalid(n)
	}
	return invoice.M(d).String()
}

// number formats a quantity or a percentage, or quotes the raw input when it is not a number.
func number(n invoice.Number) string {
	if !n.IsValid() {
		return invalid(n)
	}
	return n.String()
}

// invalid quotes the raw input of n as a code span that is safe in a table cell.
func invalid(n invoice.Number) string {
	return "`" + cell(strings.ReplaceAll(n.Raw(), "`", "'")) + "`?"
}
