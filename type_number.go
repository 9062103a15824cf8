package invoice

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Number is the result of coercing user input into a number.
//
// It is either a valid exact decimal, or invalid, in which case it remembers
// the text that could not be parsed. The zero value is a valid 0.
type Number struct {
	value   decimal.Decimal
	raw     string // only set when invalid
	invalid bool
}

// N returns a valid Number.
func N[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Number {
	return Number{value: newDecimal(value)}
}

// ParseNumber coerces raw user input into a Number.
//
// Surrounding spaces are ignored and an empty input is 0, like an empty
// numeric field in a browser form. Anything that is not a decimal literal, or
// is too large for a float64, is an invalid Number; ParseNumber never fails.
func ParseNumber(raw string) Number {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Number{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Number{raw: raw, invalid: true}
	}
	if d.IsZero() {
		return Number{}
	}
	// Keep numbers within the float64 range: larger ones are infinite and
	// smaller ones are 0.
	switch magnitude := int(d.Exponent()) + d.NumDigits() - 1; {
	case magnitude > maxMagnitude,
		magnitude == maxMagnitude && math.IsInf(d.InexactFloat64(), 0):
		return Number{raw: raw, invalid: true}
	case magnitude < minMagnitude:
		return Number{}
	}
	return Number{value: d}
}

const (
	maxMagnitude = 308  // math.MaxFloat64 is about 1.8e308
	minMagnitude = -324 // math.SmallestNonzeroFloat64 is about 4.9e-324
)

func (n Number) IsValid() bool { return !n.invalid }

// Decimal returns the value and whether it is valid.
func (n Number) Decimal() (decimal.Decimal, bool) { return n.value, !n.invalid }

// Raw returns the text an invalid Number was parsed from.
func (n Number) Raw() string { return n.raw }

// Equal reports whether both numbers are valid and equal, or both invalid with the same raw text.
func (n Number) Equal(m Number) bool {
	if n.invalid || m.invalid {
		return n.invalid == m.invalid && n.raw == m.raw
	}
	return n.value.Equal(m.value)
}

// String returns the canonical decimal, or the raw input when invalid.
func (n Number) String() string {
	if n.invalid {
		return n.raw
	}
	return n.value.String()
}

// MarshalJSON writes a valid Number as a bare JSON number and an invalid one as its raw string.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.invalid {
		return jsonString(n.raw)
	}
	return n.value.MarshalJSON()
}
