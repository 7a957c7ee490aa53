package calculation

import (
	"fmt"

	"github.com/intermittent/are-simulator/internal/domain"
	money "github.com/intermittent/are-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// MonthlySimulator turns the hours of a month into non-indemnified days
// and the allowance paid for the remaining days.
type MonthlySimulator struct{}

// NewMonthlySimulator creates a monthly simulator
func NewMonthlySimulator() *MonthlySimulator {
	return &MonthlySimulator{}
}

// ComputeMonth calculates the day counts and the monthly allowance.
// The daily benefit is supplied by the caller and is not recomputed here.
func (ms *MonthlySimulator) ComputeMonth(in domain.MonthlyInput) (domain.MonthlyResult, error) {
	params, ok := domain.ParamsFor(in.Category)
	if !ok {
		return domain.MonthlyResult{}, fmt.Errorf("%w: %d", domain.ErrInvalidCategory, int(in.Category))
	}

	jni := NonIndemnifiedDays(params, in.TotalHours, in.DaysInMonth)
	indemnifiable := in.DaysInMonth - jni
	if indemnifiable < 0 {
		indemnifiable = 0
	}

	return domain.MonthlyResult{
		NonIndemnifiedDays: jni,
		IndemnifiableDays:  indemnifiable,
		MonthlyBenefit:     money.NewMoneyFromDecimal(in.DailyBenefit).Times(indemnifiable).Round().Decimal,
	}, nil
}

// NonIndemnifiedDays computes ceil(hours * factor / divisor), capped at daysInMonth
func NonIndemnifiedDays(params domain.CategoryParams, hours decimal.Decimal, daysInMonth int) int {
	if !hours.IsPositive() || daysInMonth <= 0 {
		return 0
	}
	days := hours.Mul(params.DayFactor).Div(params.DayDivisor).Ceil()
	if days.GreaterThan(decimal.NewFromInt(int64(daysInMonth))) {
		return daysInMonth
	}
	return int(days.IntPart())
}

// BuildMonthReport adds the other income of the month to a simulated result
func BuildMonthReport(activity domain.MonthActivity, result domain.MonthlyResult) domain.MonthReport {
	cachetIncome := money.NewMoneyFromDecimal(activity.NetPerCachet).Times(activity.Cachets)
	contractIncome := money.NewMoneyFromDecimal(activity.ContractHours.Mul(activity.ContractHourlyRate))
	total := money.NewMoneyFromDecimal(result.MonthlyBenefit).
		Add(cachetIncome.Decimal).
		Add(contractIncome.Decimal).
		Add(activity.SelfEmployedIncome)

	return domain.MonthReport{
		Category:           activity.Category,
		TotalHours:         activity.TotalHours(),
		DailyBenefit:       activity.DailyBenefit,
		Result:             result,
		CachetIncome:       cachetIncome.Round().Decimal,
		ContractIncome:     contractIncome.Round().Decimal,
		SelfEmployedIncome: activity.SelfEmployedIncome.Round(2),
		TotalNetIncome:     total.Round().Decimal,
	}
}
