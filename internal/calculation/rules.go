package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rules holds the formula constants shared by both annexes.
// The social threshold and the annualization divisor are common practice
// rather than published Unédic rules, so they can be overridden from the
// settings file.
type Rules struct {
	MinimumDailyAllowance decimal.Decimal `json:"minimum_daily_allowance"` // AJ minimale
	DailySocialThreshold  decimal.Decimal `json:"daily_social_threshold"`  // CSG/CRDS apply above this gross amount
	SocialDeductionRate   decimal.Decimal `json:"social_deduction_rate"`   // CSG 6.2% + CRDS 0.5%
	AnnualizationDivisor  decimal.Decimal `json:"annualization_divisor"`   // Annexe 10 only
	ReferenceWageShare    decimal.Decimal `json:"reference_wage_share"`    // Annexe 10 part A
	CachetRate            decimal.Decimal `json:"cachet_rate"`             // Annexe 10 part B
	SalaryDivisor         decimal.Decimal `json:"salary_divisor"`          // Annexe 8 part A
	HoursDivisor          decimal.Decimal `json:"hours_divisor"`           // Annexe 8 part B
}

// RuleOverrides is the rules block of the settings file. A nil field keeps
// the default, any other value replaces it, zero included.
type RuleOverrides struct {
	MinimumDailyAllowance *decimal.Decimal `yaml:"minimum_daily_allowance,omitempty" json:"minimum_daily_allowance,omitempty"`
	DailySocialThreshold  *decimal.Decimal `yaml:"daily_social_threshold,omitempty" json:"daily_social_threshold,omitempty"`
	SocialDeductionRate   *decimal.Decimal `yaml:"social_deduction_rate,omitempty" json:"social_deduction_rate,omitempty"`
	AnnualizationDivisor  *decimal.Decimal `yaml:"annualization_divisor,omitempty" json:"annualization_divisor,omitempty"`
	ReferenceWageShare    *decimal.Decimal `yaml:"reference_wage_share,omitempty" json:"reference_wage_share,omitempty"`
	CachetRate            *decimal.Decimal `yaml:"cachet_rate,omitempty" json:"cachet_rate,omitempty"`
	SalaryDivisor         *decimal.Decimal `yaml:"salary_divisor,omitempty" json:"salary_divisor,omitempty"`
	HoursDivisor          *decimal.Decimal `yaml:"hours_divisor,omitempty" json:"hours_divisor,omitempty"`
}

// DefaultRules returns the values in force since 1 July 2024
func DefaultRules() Rules {
	return Rules{
		MinimumDailyAllowance: decimal.RequireFromString("31.71"),
		DailySocialThreshold:  decimal.NewFromInt(60),
		SocialDeductionRate:   decimal.RequireFromString("0.067"),
		AnnualizationDivisor:  decimal.RequireFromString("1.76"),
		ReferenceWageShare:    decimal.RequireFromString("0.70"),
		CachetRate:            decimal.RequireFromString("12.27"),
		SalaryDivisor:         decimal.NewFromInt(5000),
		HoursDivisor:          decimal.NewFromInt(507),
	}
}

// Merge returns a copy of r with every set field of o applied
func (r Rules) Merge(o RuleOverrides) Rules {
	pick := func(base decimal.Decimal, override *decimal.Decimal) decimal.Decimal {
		if override == nil {
			return base
		}
		return *override
	}
	return Rules{
		MinimumDailyAllowance: pick(r.MinimumDailyAllowance, o.MinimumDailyAllowance),
		DailySocialThreshold:  pick(r.DailySocialThreshold, o.DailySocialThreshold),
		SocialDeductionRate:   pick(r.SocialDeductionRate, o.SocialDeductionRate),
		AnnualizationDivisor:  pick(r.AnnualizationDivisor, o.AnnualizationDivisor),
		ReferenceWageShare:    pick(r.ReferenceWageShare, o.ReferenceWageShare),
		CachetRate:            pick(r.CachetRate, o.CachetRate),
		SalaryDivisor:         pick(r.SalaryDivisor, o.SalaryDivisor),
		HoursDivisor:          pick(r.HoursDivisor, o.HoursDivisor),
	}
}

// Validate checks that the rules keep every computed amount finite and non-negative
func (r Rules) Validate() error {
	if r.MinimumDailyAllowance.IsNegative() {
		return fmt.Errorf("minimum daily allowance cannot be negative")
	}
	if r.DailySocialThreshold.IsNegative() {
		return fmt.Errorf("daily social threshold cannot be negative")
	}
	if r.SocialDeductionRate.IsNegative() || r.SocialDeductionRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("social deduction rate must be between 0 and 1")
	}
	if r.AnnualizationDivisor.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("annualization divisor must be at least 1")
	}
	if r.ReferenceWageShare.IsNegative() || r.CachetRate.IsNegative() {
		return fmt.Errorf("artist coefficients cannot be negative")
	}
	if !r.SalaryDivisor.IsPositive() || !r.HoursDivisor.IsPositive() {
		return fmt.Errorf("technician divisors must be positive")
	}
	return nil
}
