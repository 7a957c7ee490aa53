package decimal

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money represents a euro amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the money amount to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Times multiplies a unit amount (per day, per cachet) by a count
func (m Money) Times(n int) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(int64(n)))}
}

// Add adds another amount
func (m Money) Add(other decimal.Decimal) Money {
	return Money{m.Decimal.Add(other)}
}

// String returns the amount with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount the French way: "1 234,56 €"
func (m Money) Format() string {
	f, _ := m.Round().Decimal.Float64()
	return humanize.FormatFloat("# ###,##", f) + " €"
}
