package calculation

import (
	"fmt"

	"github.com/intermittent/are-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// BenefitCalculator computes the daily allowance (ARE) of an intermittent worker.
// It holds no mutable state and is safe for concurrent use.
type BenefitCalculator struct {
	rules Rules
}

// NewBenefitCalculator creates a calculator using the default rules
func NewBenefitCalculator() *BenefitCalculator {
	return &BenefitCalculator{rules: DefaultRules()}
}

// NewBenefitCalculatorWithRules creates a calculator with custom formula constants
func NewBenefitCalculatorWithRules(rules Rules) *BenefitCalculator {
	return &BenefitCalculator{rules: rules}
}

// Rules returns the formula constants in use
func (bc *BenefitCalculator) Rules() Rules {
	return bc.rules
}

// ComputeBenefit calculates the gross and net daily allowance.
// For an unsupported category the result is zeroed and ErrInvalidCategory is returned.
func (bc *BenefitCalculator) ComputeBenefit(in domain.BenefitInput) (domain.BenefitResult, error) {
	params, ok := domain.ParamsFor(in.Category)
	if !ok {
		return domain.BenefitResult{Breakdown: domain.Breakdown{}}, fmt.Errorf("%w: %d", domain.ErrInvalidCategory, int(in.Category))
	}

	sjr := DailyReferenceWage(in.ReferenceSalary, in.ReferenceDays)

	var gross decimal.Decimal
	var breakdown domain.Breakdown
	switch in.Category {
	case domain.Artist:
		gross, breakdown = bc.artistGross(params, sjr, in.Cachets)
	case domain.Technician:
		gross, breakdown = bc.technicianGross(params, in.ReferenceSalary, in.Hours)
	}

	net := bc.applySocialDeductions(gross)
	if in.Category == domain.Artist {
		breakdown = append(breakdown,
			domain.Component{Name: domain.ComponentNetBeforeDivisor, Value: net.Round(2)},
			domain.Component{Name: domain.ComponentAnnualizationDivisor, Value: bc.rules.AnnualizationDivisor},
		)
		net = net.Div(bc.rules.AnnualizationDivisor)
	}

	return domain.BenefitResult{
		Category:            in.Category,
		DailyReferenceWage:  sjr.Round(2),
		GrossDailyAllowance: gross.Round(2),
		NetDailyAllowance:   net.Round(2),
		Breakdown:           breakdown,
	}, nil
}

// DailyReferenceWage divides the reference salary by the calendar days of the period.
// A non-positive period yields zero.
func DailyReferenceWage(salary decimal.Decimal, referenceDays int) decimal.Decimal {
	if referenceDays <= 0 {
		return decimal.Zero
	}
	return salary.Div(decimal.NewFromInt(int64(referenceDays)))
}

// artistGross applies the Annexe 10 formula: max(AJmin, 70% SJR) + 12.27 * cachets / 12
func (bc *BenefitCalculator) artistGross(params domain.CategoryParams, sjr decimal.Decimal, cachets int) (decimal.Decimal, domain.Breakdown) {
	share := sjr.Mul(bc.rules.ReferenceWageShare)
	partA := decimal.Max(bc.rules.MinimumDailyAllowance, share)
	partB := bc.rules.CachetRate.Mul(decimal.NewFromInt(int64(cachets))).Div(decimal.NewFromInt(12))

	gross := decimal.Max(partA.Add(partB), params.Floor)
	return gross, domain.Breakdown{
		{Name: domain.ComponentSJR, Value: sjr.Round(2)},
		{Name: domain.ComponentSJRShare, Value: share.Round(2)},
		{Name: domain.ComponentPartA, Value: partA.Round(2)},
		{Name: domain.ComponentPartB, Value: partB.Round(2)},
	}
}

// technicianGross applies the Annexe 8 formula A + B + C
func (bc *BenefitCalculator) technicianGross(params domain.CategoryParams, salary, hours decimal.Decimal) (decimal.Decimal, domain.Breakdown) {
	aj := bc.rules.MinimumDailyAllowance

	a := aj.Mul(tiered(salary, params.SalaryThreshold, params.SalaryRateBelow, params.SalaryRateAbove)).Div(bc.rules.SalaryDivisor)
	b := aj.Mul(tiered(hours, params.HourThreshold, params.HourRateBelow, params.HourRateAbove)).Div(bc.rules.HoursDivisor)
	c := aj.Mul(params.FixedPartCoefficient)

	gross := decimal.Max(a.Add(b).Add(c), params.Floor)
	return gross, domain.Breakdown{
		{Name: domain.ComponentPartA, Value: a.Round(2)},
		{Name: domain.ComponentPartB, Value: b.Round(2)},
		{Name: domain.ComponentPartC, Value: c.Round(2)},
	}
}

// tiered splits amount at threshold and weights each side with its own rate
func tiered(amount, threshold, below, above decimal.Decimal) decimal.Decimal {
	under := decimal.Min(amount, threshold)
	over := decimal.Max(decimal.Zero, amount.Sub(threshold))
	return below.Mul(under).Add(above.Mul(over))
}

// applySocialDeductions removes CSG/CRDS when gross exceeds the daily threshold
func (bc *BenefitCalculator) applySocialDeductions(gross decimal.Decimal) decimal.Decimal {
	if gross.GreaterThan(bc.rules.DailySocialThreshold) {
		return gross.Mul(decimal.NewFromInt(1).Sub(bc.rules.SocialDeductionRate))
	}
	return gross
}
