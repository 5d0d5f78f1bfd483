package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value in dollars.
// Balances accrue fractional cents through interest, so the value is kept
// as an exact decimal and only rounded when rendered.
type Money struct {
	d decimal.Decimal
}

// Zero is the zero amount
var Zero = Money{}

// Dollars creates a Money value from whole dollars
func Dollars(dollars int64) Money {
	return Money{d: decimal.NewFromInt(dollars)}
}

var plainAmount = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// ParseMoney parses a plain decimal amount such as "1500" or "12.75".
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, fmt.Errorf("empty amount")
	}
	// plain digits only: decimal alone would take "1e3"
	if !plainAmount.MatchString(s) {
		return Zero, fmt.Errorf("invalid amount %q", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{d: d}, nil
}

// Add returns the sum of two Money values
func (m Money) Add(other Money) Money {
	return Money{d: m.d.Add(other.d)}
}

// Sub returns the difference of two Money values
func (m Money) Sub(other Money) Money {
	return Money{d: m.d.Sub(other.d)}
}

// MulRate multiplies by a rate without rounding
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{d: m.d.Mul(rate)}
}

// Mul multiplies by an integer
func (m Money) Mul(n int64) Money {
	return Money{d: m.d.Mul(decimal.NewFromInt(n))}
}

// IsPositive returns true if the value is positive
func (m Money) IsPositive() bool {
	return m.d.IsPositive()
}

// Equal reports whether both values are numerically equal
func (m Money) Equal(other Money) bool {
	return m.d.Equal(other.d)
}

// LessThan reports m < other
func (m Money) LessThan(other Money) bool {
	return m.d.LessThan(other.d)
}

// GreaterThanOrEqual reports m >= other
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.d.GreaterThanOrEqual(other.d)
}

// String returns a simple string representation (e.g., "1234.50")
func (m Money) String() string {
	return m.d.StringFixed(2)
}

// FormatUSD formats the value as "$1,234.56" (negative values as "-$1,234.56").
func (m Money) FormatUSD() string {
	s := m.d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	result := "$" + formatWithSeparator(whole, ",") + "." + frac
	if m.d.Round(2).IsNegative() {
		result = "-" + result
	}
	return result
}

// FormatWholeUSD formats the amount rounded to whole dollars, e.g. "$2,000"
func (m Money) FormatWholeUSD() string {
	s := m.d.Abs().StringFixed(0)

	result := "$" + formatWithSeparator(s, ",")
	if m.d.Round(0).IsNegative() {
		result = "-" + result
	}
	return result
}

// formatWithSeparator adds thousands separators to a run of digits
func formatWithSeparator(digits string, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}

	var result strings.Builder
	startOffset := len(digits) % 3
	if startOffset == 0 {
		startOffset = 3
	}

	result.WriteString(digits[:startOffset])
	for i := startOffset; i < len(digits); i += 3 {
		result.WriteString(sep)
		result.WriteString(digits[i : i+3])
	}

	return result.String()
}
