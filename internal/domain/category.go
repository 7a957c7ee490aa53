package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Category is the regulatory annex an intermittent worker is attached to.
// The numeric values match the annex numbers used by France Travail.
type Category int

const (
	Technician Category = 8  // Annexe 8
	Artist     Category = 10 // Annexe 10
)

// String returns the short lowercase name of the category
func (c Category) String() string {
	switch c {
	case Technician:
		return "technician"
	case Artist:
		return "artist"
	default:
		return "annexe" + strconv.Itoa(int(c))
	}
}

// Label returns the display label used in reports and exports
func (c Category) Label() string {
	switch c {
	case Technician:
		return "Technicien (8)"
	case Artist:
		return "Artiste (10)"
	default:
		return fmt.Sprintf("Annexe %d", int(c))
	}
}

// IsSupported reports whether a parameter set exists for the category
func (c Category) IsSupported() bool {
	_, ok := categoryParams[c]
	return ok
}

// ParseCategory parses a category from its annex number or name.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "8", "annexe8", "annexe-8", "technician", "technicien":
		return Technician, nil
	case "10", "annexe10", "annexe-10", "artist", "artiste":
		return Artist, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// CategoryParams holds the constants of one annex. Values are fixed per
// category and never mutated at runtime.
type CategoryParams struct {
	SalaryThreshold      decimal.Decimal
	SalaryRateBelow      decimal.Decimal
	SalaryRateAbove      decimal.Decimal
	HourThreshold        decimal.Decimal
	HourRateBelow        decimal.Decimal
	HourRateAbove        decimal.Decimal
	FixedPartCoefficient decimal.Decimal
	Floor                decimal.Decimal

	// Non-indemnified days for a month are ceil(hours * DayFactor / DayDivisor).
	DayFactor  decimal.Decimal
	DayDivisor decimal.Decimal
}

// The artist salary/hour coefficients are not used by the Annexe 10 formula
// but are kept so both annexes expose the same parameter record.
var categoryParams = map[Category]CategoryParams{
	Technician: {
		SalaryThreshold:      decimal.NewFromInt(14400),
		SalaryRateBelow:      decimal.RequireFromString("0.42"),
		SalaryRateAbove:      decimal.RequireFromString("0.05"),
		HourThreshold:        decimal.NewFromInt(720),
		HourRateBelow:        decimal.RequireFromString("0.26"),
		HourRateAbove:        decimal.RequireFromString("0.08"),
		FixedPartCoefficient: decimal.RequireFromString("0.40"),
		Floor:                decimal.RequireFromString("38.34"),
		DayFactor:            decimal.RequireFromString("1.4"),
		DayDivisor:           decimal.NewFromInt(8),
	},
	Artist: {
		SalaryThreshold:      decimal.NewFromInt(13700),
		SalaryRateBelow:      decimal.RequireFromString("0.36"),
		SalaryRateAbove:      decimal.RequireFromString("0.05"),
		HourThreshold:        decimal.NewFromInt(690),
		HourRateBelow:        decimal.RequireFromString("0.26"),
		HourRateAbove:        decimal.RequireFromString("0.08"),
		FixedPartCoefficient: decimal.RequireFromString("0.70"),
		Floor:                decimal.RequireFromString("44.43"),
		DayFactor:            decimal.RequireFromString("1.3"),
		DayDivisor:           decimal.NewFromInt(10),
	},
}

// ParamsFor returns the parameter record of a category.
// The second return value is false for unsupported categories.
func ParamsFor(c Category) (CategoryParams, bool) {
	p, ok := categoryParams[c]
	return p, ok
}

// SupportedCategories lists the categories in display order
func SupportedCategories() []Category {
	return []Category{Artist, Technician}
}
