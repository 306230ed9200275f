package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// maxPlaces is the fixed fractional precision for monetary amounts:
// four places past the decimal point.
const maxPlaces = 4

// Amount is an exact decimal monetary value with at most four fractional
// places. It is built on shopspring/decimal rather than binary floating
// point so that balance arithmetic never accumulates rounding error.
// The zero value is a usable zero amount.
type Amount struct {
	d decimal.Decimal
}

// ZeroAmount is the well-defined zero for Amount.
var ZeroAmount = Amount{}

// ParseAmount parses a decimal string such as "1.5" or "0.0001" into an
// Amount. It returns an error for malformed input or for values carrying
// more than four significant fractional places.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !d.Equal(d.Truncate(maxPlaces)) {
		return Amount{}, fmt.Errorf("invalid amount %q: more than %d decimal places", s, maxPlaces)
	}
	return Amount{d: d}, nil
}

// MustParseAmount is ParseAmount for static literals; it panics on error.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{d: a.d.Sub(b.d)}
}

// Neg returns -a.
func (a Amount) Neg() Amount {
	return Amount{d: a.d.Neg()}
}

// Cmp returns -1, 0, or 1 depending on whether a is less than, equal to,
// or greater than b. Comparison is exact.
func (a Amount) Cmp(b Amount) int {
	return a.d.Cmp(b.d)
}

// Equal reports whether a and b represent the same value, regardless of
// textual scale ("1.5" equals "1.50").
func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// IsNegative reports whether a < 0.
func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

// IsZero reports whether a == 0.
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// String renders the amount in the same decimal text form used on input,
// with trailing zeros normalized away ("1.50" renders as "1.5").
func (a Amount) String() string {
	return a.d.String()
}
