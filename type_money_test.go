package invoice

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		money Money
		want  string
	}{
		{M(0), "0,00 €"},
		{M(0.05), "0,05 €"},
		{M(12.5), "12,50 €"},
		{M(999.999), "1.000,00 €"},
		{M(1336.9895), "1.336,99 €"},
		{M(232.0395), "232,04 €"},
		{M(1234567.891), "1.234.567,89 €"},
		{M(-12.5), "-12,50 €"},
		{NaM(), "NaN €"},
		{M(dec("92233720368547758.07")), "92.233.720.368.547.758,07 €"},
		{M(dec("92233720368547758.08")), "92.233.720.368.547.758,08 €"},
		{M(dec("100000000000000000")), "100.000.000.000.000.000,00 €"},
		{M(dec("-1234567890123456789.125")), "-1.234.567.890.123.456.789,13 €"},
		{M(dec("1e20")), "100.000.000.000.000.000.000,00 €"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.money.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoney_InvalidPropagates(t *testing.T) {
	if got := M(10).Add(NaM()); got.IsValid() {
		t.Errorf("M(10).Add(NaM()) = %v, want invalid", got)
	}
	if got := NaM().Add(M(10)); got.IsValid() {
		t.Errorf("NaM().Add(M(10)) = %v, want invalid", got)
	}
	if got := M(10).Mul(ParseNumber("x")); got.IsValid() {
		t.Errorf("M(10).Mul(invalid) = %v, want invalid", got)
	}
	if NaM().IsZero() {
		t.Errorf("NaM().IsZero() = true")
	}
	if !NaM().Equal(NaM()) || NaM().Equal(M(0)) {
		t.Errorf("invalid money equality is broken")
	}
}

func TestMoney_StringLargeTotals(t *testing.T) {
	l := NewLedger().Add().Update(1, FieldUnitPrice, "100000000000000000")
	totals := l.Totals()
	testCases := []struct {
		name  string
		money Money
		want  string
	}{
		{"subtotal", totals.Subtotal, "100.000.000.000.000.000,00 €"},
		{"tax", totals.Tax, "21.000.000.000.000.000,00 €"},
		{"total", totals.Total, "121.000.000.000.000.000,00 €"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.money.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}
