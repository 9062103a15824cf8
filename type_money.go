package invoice

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the only currency a ledger is kept and displayed in.
const Currency = "EUR"

// moneyTemplate places the amount ("1") before the currency symbol ("$").
const moneyTemplate = "1 $"

// currency returns the go-money currency for Currency.
func currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, Currency).Currency()
}

// formatter is the fixed display rule: "1.336,99 €".
var formatter = func() *money.Formatter {
	cur := currency()
	return money.NewFormatter(cur.Fraction, ",", ".", cur.Grapheme, moneyTemplate)
}()

// Money represents an amount in Currency.
//
// Like a float NaN, an invalid Money absorbs every operation it takes part in.
type Money struct {
	value   decimal.Decimal // as major unit value
	invalid bool
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// NaM returns the invalid Money.
func NaM() Money { return Money{invalid: true} }

func (m Money) IsValid() bool { return !m.invalid }

// Decimal returns the exact amount and whether it is valid.
func (m Money) Decimal() (decimal.Decimal, bool) { return m.value, !m.invalid }

func (m Money) IsZero() bool { return !m.invalid && m.value.IsZero() }

// Equal reports whether both amounts are valid and equal, or both invalid.
func (m Money) Equal(n Money) bool {
	if m.invalid || n.invalid {
		return m.invalid == n.invalid
	}
	return m.value.Equal(n.value)
}

func (m Money) Add(n Money) Money {
	if m.invalid || n.invalid {
		return NaM()
	}
	return Money{value: m.value.Add(n.value)}
}

func (m Money) Mul(n Number) Money {
	d, ok := n.Decimal()
	if m.invalid || !ok {
		return NaM()
	}
	return Money{value: m.value.Mul(d)}
}

// Round returns the amount rounded to the currency fraction.
func (m Money) Round() Money {
	if m.invalid {
		return m
	}
	return Money{value: m.value.Round(int32(currency().Fraction))}
}

// String formats the amount with the fixed display rule.
func (m Money) String() string {
	if m.invalid {
		s := strings.Replace(moneyTemplate, "1", "NaN", 1)
		return strings.Replace(s, "$", currency().Grapheme, 1)
	}
	fraction := int32(currency().Fraction)
	minor := m.value.Round(fraction).Shift(fraction)
	if minor.Abs().LessThanOrEqual(maxMinor) {
		return formatter.Format(minor.IntPart())
	}
	return formatLarge(m.value.StringFixed(fraction))
}

// maxMinor is the largest amount in minor units go-money can format.
var maxMinor = decimal.NewFromInt(math.MaxInt64)

// formatLarge applies the display rule to a fixed-point decimal string that
// does not fit in an int64 of minor units.
func formatLarge(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(formatter.Thousand)
		}
		b.WriteRune(r)
	}
	amount := sign + b.String()
	if fracPart != "" {
		amount += formatter.Decimal + fracPart
	}
	s := strings.Replace(formatter.Template, "1", amount, 1)
	return strings.Replace(s, "$", formatter.Grapheme, 1)
}

// MarshalJSON writes the rounded amount as a bare number, or null when invalid.
func (m Money) MarshalJSON() ([]byte, error) {
	if m.invalid {
		return []byte("null"), nil
	}
	return m.Round().value.MarshalJSON()
}
