package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	MinDaysInMonth = 28
	MaxDaysInMonth = 31
)

// Hours credited per assimilated unit when building the monthly total.
var (
	RehearsalCachetHours = decimal.NewFromInt(6)
	SickDayHours         = decimal.NewFromInt(8)
)

// MonthlyInput is what the monthly simulator consumes
type MonthlyInput struct {
	Category     Category        `json:"category"`
	TotalHours   decimal.Decimal `json:"total_hours"` // Worked and assimilated hours
	DaysInMonth  int             `json:"days_in_month"`
	DailyBenefit decimal.Decimal `json:"daily_benefit"` // Daily allowance applied to indemnifiable days
}

// Validate checks the numeric bounds of a monthly input
func (in MonthlyInput) Validate() error {
	if in.TotalHours.IsNegative() {
		return numericError("total hours", "cannot be negative")
	}
	if in.DailyBenefit.IsNegative() {
		return numericError("daily benefit", "cannot be negative")
	}
	return validateDaysInMonth(in.DaysInMonth)
}

func validateDaysInMonth(days int) error {
	if days < MinDaysInMonth || days > MaxDaysInMonth {
		return numericError("days in month", fmt.Sprintf("must be between %d and %d", MinDaysInMonth, MaxDaysInMonth))
	}
	return nil
}

// MonthlyResult holds the day counts and the allowance paid for a month
type MonthlyResult struct {
	NonIndemnifiedDays int             `json:"non_indemnified_days"`
	IndemnifiableDays  int             `json:"indemnifiable_days"`
	MonthlyBenefit     decimal.Decimal `json:"monthly_benefit"`
}

// MonthActivity describes everything worked or assimilated during a month.
// It is the caller-side aggregation feeding MonthlyInput.TotalHours.
type MonthActivity struct {
	Category     Category
	DaysInMonth  int
	DailyBenefit decimal.Decimal

	Cachets          int
	HoursPerCachet   decimal.Decimal
	NetPerCachet     decimal.Decimal
	RehearsalCachets int // Counted as 6 hours each
	SickDays         int // Unpaid sick days, counted as 8 hours each
	TrainingHours    decimal.Decimal

	// Fixed-term contract (CDD)
	ContractHours      decimal.Decimal
	ContractHourlyRate decimal.Decimal

	SelfEmployedIncome decimal.Decimal
}

// Validate checks every count and amount of the activity
func (a MonthActivity) Validate() error {
	checks := []struct {
		field string
		value decimal.Decimal
	}{
		{"daily benefit", a.DailyBenefit},
		{"hours per cachet", a.HoursPerCachet},
		{"net per cachet", a.NetPerCachet},
		{"training hours", a.TrainingHours},
		{"contract hours", a.ContractHours},
		{"contract hourly rate", a.ContractHourlyRate},
		{"self-employed income", a.SelfEmployedIncome},
	}
	for _, c := range checks {
		if c.value.IsNegative() {
			return numericError(c.field, "cannot be negative")
		}
	}
	if a.Cachets < 0 {
		return numericError("cachets", "cannot be negative")
	}
	if a.RehearsalCachets < 0 {
		return numericError("rehearsal cachets", "cannot be negative")
	}
	if a.SickDays < 0 {
		return numericError("sick days", "cannot be negative")
	}
	if a.SickDays > a.DaysInMonth {
		return numericError("sick days", "cannot exceed days in month")
	}
	return validateDaysInMonth(a.DaysInMonth)
}

// TotalHours sums worked and assimilated hours
func (a MonthActivity) TotalHours() decimal.Decimal {
	return decimal.NewFromInt(int64(a.Cachets)).Mul(a.HoursPerCachet).
		Add(decimal.NewFromInt(int64(a.RehearsalCachets)).Mul(RehearsalCachetHours)).
		Add(decimal.NewFromInt(int64(a.SickDays)).Mul(SickDayHours)).
		Add(a.TrainingHours).
		Add(a.ContractHours)
}

// HasContract reports whether a fixed-term contract was worked this month
func (a MonthActivity) HasContract() bool {
	return a.ContractHours.IsPositive()
}

// MonthlyInput builds the simulator input from the activity
func (a MonthActivity) MonthlyInput() MonthlyInput {
	return MonthlyInput{
		Category:     a.Category,
		TotalHours:   a.TotalHours(),
		DaysInMonth:  a.DaysInMonth,
		DailyBenefit: a.DailyBenefit,
	}
}

// MonthReport combines the simulated allowance with the other income of the month
type MonthReport struct {
	Category           Category        `json:"category"`
	TotalHours         decimal.Decimal `json:"total_hours"`
	DailyBenefit       decimal.Decimal `json:"daily_benefit"`
	Result             MonthlyResult   `json:"result"`
	CachetIncome       decimal.Decimal `json:"cachet_income"`
	ContractIncome     decimal.Decimal `json:"contract_income"`
	SelfEmployedIncome decimal.Decimal `json:"self_employed_income"`
	TotalNetIncome     decimal.Decimal `json:"total_net_income"`
}
