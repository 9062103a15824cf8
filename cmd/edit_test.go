package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/invoice"
)

func runEditor(t *testing.T, input string) (*invoice.Session, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	e := &editor{
		session: invoice.NewSession(invoice.SeedLedger()),
		out:     &out,
		errOut:  &errOut,
	}
	if err := e.run(strings.NewReader(input)); err != nil {
		t.Fatalf("run: %v", err)
	}
	return e.session, out.String(), errOut.String()
}

func TestEditor(t *testing.T) {
	session, out, errOut := runEditor(t, `
add
set 3 desc Transporte a obra
set 3 price 45
rm 1
rm 1
`)
	if errOut != "" {
		t.Errorf("unexpected errors: %s", errOut)
	}

	l := session.Ledger()
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	it, ok := l.Item(3)
	if !ok || it.Description != "Transporte a obra" || !it.UnitPrice.Equal(invoice.N(45)) {
		t.Errorf("item 3 = %+v", it)
	}

	for _, want := range []string{
		"Line 3: 1 x 0,00 €",
		"Line 3: 1 x 45,00 €, discount 0% = **45,00 €** Transporte a obra",
		"Line 1 removed.",
		"807,00 €", // 762 + 45
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "Line 1 removed."); n != 1 {
		t.Errorf("removal reported %d times, want once", n)
	}
}

func TestEditor_ErrorsDoNotStopTheSession(t *testing.T) {
	session, _, errOut := runEditor(t, "frobnicate\nset x qty 1\nadd\n")
	if !strings.Contains(errOut, `unknown operation "frobnicate"`) {
		t.Errorf("errors = %q", errOut)
	}
	if !strings.Contains(errOut, "invalid item id") {
		t.Errorf("errors = %q", errOut)
	}
	if got := session.Ledger().Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestEditor_InvalidNumber(t *testing.T) {
	_, out, _ := runEditor(t, "set 2 qty ocho\n")
	if !strings.Contains(out, "NaN €") {
		t.Errorf("output does not show the invalid totals:\n%s", out)
	}
}

func TestEditor_QuitAndShow(t *testing.T) {
	session, out, _ := runEditor(t, "show\nquit\nadd\n")
	if got := session.Ledger().Len(); got != 2 {
		t.Errorf("commands after quit were applied: Len() = %d", got)
	}
	if !strings.Contains(out, "Mantenimiento de estructuras metálicas") {
		t.Errorf("show did not display the lines:\n%s", out)
	}
}

func TestEditor_DescriptionKeepsSpaces(t *testing.T) {
	session, _, errOut := runEditor(t, "set 1 desc  Pintura  \n  set 2 qty 3 \n")
	if errOut != "" {
		t.Fatalf("unexpected errors: %s", errOut)
	}
	l := session.Ledger()
	if it, _ := l.Item(1); it.Description != " Pintura  " {
		t.Errorf("description = %q, want %q", it.Description, " Pintura  ")
	}
	if it, _ := l.Item(2); !it.Quantity.Equal(invoice.N(3)) {
		t.Errorf("quantity = %v, want 3", it.Quantity)
	}
}
