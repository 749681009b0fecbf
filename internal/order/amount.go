package order

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a price in cents.
type Amount int64

// MaxAmount is the largest representable price.
const MaxAmount Amount = math.MaxInt64

var maxCents = decimal.NewFromInt(math.MaxInt64)

// String renders the amount with exactly two decimal places and no prefix.
func (a Amount) String() string {
	return decimal.New(int64(a), -2).StringFixed(2)
}

// Format renders the amount behind the currency symbol, e.g. R100.00.
func (a Amount) Format(symbol string) string {
	return symbol + a.String()
}

// ParsePrice converts a catalog price string such as "R100.00" into an Amount.
// The symbol prefix is optional; anything past two decimal places is rounded.
func ParsePrice(raw, symbol string) (Amount, error) {
	s := strings.TrimSpace(raw)
	if symbol != "" {
		s = strings.TrimSpace(strings.TrimPrefix(s, symbol))
	}
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("parse price %q: empty", raw)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", raw, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("parse price %q: negative", raw)
	}
	cents := d.Shift(2).Round(0)
	if cents.GreaterThan(maxCents) {
		return 0, fmt.Errorf("parse price %q: out of range", raw)
	}
	return Amount(cents.IntPart()), nil
}
