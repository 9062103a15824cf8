package invoice

import (
	"strings"
	"testing"
)

func TestParseNumber(t *testing.T) {
	testCases := []struct {
		raw       string
		wantValid bool
		want      string
	}{
		{raw: "12", wantValid: true, want: "12"},
		{raw: " 12 ", wantValid: true, want: "12"},
		{raw: "", wantValid: true, want: "0"},
		{raw: "   ", wantValid: true, want: "0"},
		{raw: "180.50", wantValid: true, want: "180.5"},
		{raw: "-3", wantValid: true, want: "-3"},
		{raw: "+4", wantValid: true, want: "4"},
		{raw: "1e3", wantValid: true, want: "1000"},
		{raw: "abc", wantValid: false, want: "abc"},
		{raw: "12abc", wantValid: false, want: "12abc"},
		{raw: "1,5", wantValid: false, want: "1,5"},
		{raw: "1 000", wantValid: false, want: "1 000"},
		{raw: "1e308", wantValid: true, want: "1" + strings.Repeat("0", 308)},
		{raw: "2e308", wantValid: false, want: "2e308"},
		{raw: "1e5000000", wantValid: false, want: "1e5000000"},
		{raw: "-1e5000000", wantValid: false, want: "-1e5000000"},
		{raw: "1e-5000000", wantValid: true, want: "0"},
		{raw: "0e5000000", wantValid: true, want: "0"},
		{raw: "1e-300", wantValid: true, want: "0." + strings.Repeat("0", 299) + "1"},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got := ParseNumber(tc.raw)
			if got.IsValid() != tc.wantValid {
				t.Fatalf("ParseNumber(%q).IsValid() = %v, want %v", tc.raw, got.IsValid(), tc.wantValid)
			}
			if got.String() != tc.want {
				t.Errorf("ParseNumber(%q) = %q, want %q", tc.raw, got.String(), tc.want)
			}
		})
	}
}

func TestNumber_Equal(t *testing.T) {
	testCases := []struct {
		name string
		a, b Number
		want bool
	}{
		{"same value", N(1.5), ParseNumber("1.50"), true},
		{"different values", N(1), N(2), false},
		{"zero value is 0", Number{}, N(0), true},
		{"valid and invalid", N(0), ParseNumber("x"), false},
		{"same invalid input", ParseNumber("x"), ParseNumber("x"), true},
		{"different invalid input", ParseNumber("x"), ParseNumber("y"), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
