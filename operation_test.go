package invoice

import (
	"strings"
	"testing"
)

func TestParseOperation(t *testing.T) {
	testCases := []struct {
		line    string
		want    Operation
		wantErr string
	}{
		{line: "add", want: Add()},
		{line: "  ADD  ", want: Add()},
		{line: "rm 3", want: Remove(3)},
		{line: "delete 12", want: Remove(12)},
		{line: "set 2 qty 8", want: Update(2, FieldQuantity, "8")},
		{line: "set 2 price 95.25", want: Update(2, FieldUnitPrice, "95.25")},
		{line: "set 1 unitPrice abc", want: Update(1, FieldUnitPrice, "abc")},
		{line: "update 1 disc 5", want: Update(1, FieldDiscount, "5")},
		{line: "set 1 desc Cable de cobre 3x2.5", want: Update(1, FieldDescription, "Cable de cobre 3x2.5")},
		{line: "set 1 description", want: Update(1, FieldDescription, "")},
		{line: "set 1 desc trail ", want: Update(1, FieldDescription, "trail ")},
		{line: "set 1 qty 3 ", want: Update(1, FieldQuantity, "3 ")},
		{line: "\trm 4\t", want: Remove(4)},
		{line: "", wantErr: "empty operation"},
		{line: "add 2", wantErr: "add takes no argument"},
		{line: "rm", wantErr: "missing item id"},
		{line: "rm two", wantErr: "invalid item id"},
		{line: "set 1", wantErr: "missing field"},
		{line: "set 1 colour red", wantErr: "unknown field"},
		{line: "undo", wantErr: "unknown operation"},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			got, err := ParseOperation(tc.line)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("ParseOperation(%q) error = %v, want %q", tc.line, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOperation(%q) unexpected error: %v", tc.line, err)
			}
			if got != tc.want {
				t.Errorf("ParseOperation(%q) = %+v, want %+v", tc.line, got, tc.want)
			}
		})
	}
}

func TestOperation_StringRoundTrip(t *testing.T) {
	for _, op := range []Operation{
		Add(),
		Remove(7),
		Update(3, FieldDescription, "Pintura epoxi"),
		Update(3, FieldDescription, "trail "),
		Update(3, FieldDescription, " lead"),
		Update(3, FieldUnitPrice, "12.5"),
		Update(4, FieldDiscount, "diez"),
	} {
		t.Run(op.String(), func(t *testing.T) {
			got, err := ParseOperation(op.String())
			if err != nil {
				t.Fatalf("ParseOperation(%q): %v", op.String(), err)
			}
			if got != op {
				t.Errorf("round trip = %+v, want %+v", got, op)
			}
		})
	}
}

func TestOperation_Apply(t *testing.T) {
	l := SeedLedger()
	l = Add().Apply(l)
	l = Update(3, FieldQuantity, "4").Apply(l)
	l = Remove(1).Apply(l)

	if got, want := ids(l), []int{2, 3}; len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	it, _ := l.Item(3)
	if !it.Quantity.Equal(N(4)) {
		t.Errorf("item 3 quantity = %v, want 4", it.Quantity)
	}
}
