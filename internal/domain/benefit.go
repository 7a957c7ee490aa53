package domain

import (
	"github.com/shopspring/decimal"
)

// BenefitInput holds the reference-period figures used to compute the daily allowance
type BenefitInput struct {
	Category        Category        `yaml:"category" json:"category"`
	ReferenceSalary decimal.Decimal `yaml:"reference_salary" json:"reference_salary"` // Gross salary over the reference period
	Hours           decimal.Decimal `yaml:"hours" json:"hours"`                       // Hours worked over the reference period
	Cachets         int             `yaml:"cachets" json:"cachets"`
	ReferenceDays   int             `yaml:"reference_days" json:"reference_days"` // Calendar days in the reference period
}

// Validate rejects inputs the calculator should never see.
// Category support is checked by the calculator itself.
func (in BenefitInput) Validate() error {
	if in.ReferenceSalary.IsNegative() {
		return numericError("reference salary", "cannot be negative")
	}
	if in.Hours.IsNegative() {
		return numericError("hours", "cannot be negative")
	}
	if in.Cachets < 0 {
		return numericError("cachets", "cannot be negative")
	}
	if in.ReferenceDays <= 0 {
		return numericError("reference days", "must be positive")
	}
	if in.ReferenceDays > 366 {
		return numericError("reference days", "cannot exceed 366")
	}
	return nil
}

// Component is one named term of the benefit formula
type Component struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// Breakdown lists the formula terms in the order they were computed
type Breakdown []Component

// Get returns the value of a named component
func (b Breakdown) Get(name string) (decimal.Decimal, bool) {
	for _, c := range b {
		if c.Name == name {
			return c.Value, true
		}
	}
	return decimal.Zero, false
}

// Breakdown component names.
const (
	ComponentSJR                  = "sjr"
	ComponentSJRShare             = "sjr_70pc"
	ComponentPartA                = "part_a"
	ComponentPartB                = "part_b"
	ComponentPartC                = "part_c"
	ComponentNetBeforeDivisor     = "net_before_divisor"
	ComponentAnnualizationDivisor = "annualization_divisor"
)

// BenefitResult is the outcome of a daily allowance computation.
// All figures are rounded to cents.
type BenefitResult struct {
	Category            Category        `json:"category"`
	DailyReferenceWage  decimal.Decimal `json:"daily_reference_wage"`
	GrossDailyAllowance decimal.Decimal `json:"gross_daily_allowance"`
	NetDailyAllowance   decimal.Decimal `json:"net_daily_allowance"`
	Breakdown           Breakdown       `json:"breakdown"`
}

// IsZero reports whether the result carries no figures
func (r BenefitResult) IsZero() bool {
	return r.GrossDailyAllowance.IsZero() && r.NetDailyAllowance.IsZero() && len(r.Breakdown) == 0
}
