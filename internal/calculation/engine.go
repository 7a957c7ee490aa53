package calculation

import (
	"fmt"
	"time"

	"github.com/intermittent/are-simulator/internal/domain"
	money "github.com/intermittent/are-simulator/pkg/decimal"
)

// Engine validates inputs, runs the calculators and prepares the history row
// describing each simulation. It never stores anything itself.
type Engine struct {
	Benefit *BenefitCalculator
	Monthly *MonthlySimulator
	Logger  Logger
	Clock   func() time.Time
}

// NewEngine creates an engine with the default rules
func NewEngine() *Engine {
	return NewEngineWithRules(DefaultRules())
}

// NewEngineWithRules creates an engine with custom formula constants
func NewEngineWithRules(rules Rules) *Engine {
	return &Engine{
		Benefit: NewBenefitCalculatorWithRules(rules),
		Monthly: NewMonthlySimulator(),
		Logger:  NopLogger{},
		Clock:   time.Now,
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	e.Logger = LoggerOrNop(l)
}

// RunBenefit validates the input and computes the daily allowance
func (e *Engine) RunBenefit(in domain.BenefitInput) (domain.BenefitResult, domain.HistoryEntry, error) {
	if err := in.Validate(); err != nil {
		return domain.BenefitResult{}, domain.HistoryEntry{}, fmt.Errorf("benefit input: %w", err)
	}

	result, err := e.Benefit.ComputeBenefit(in)
	if err != nil {
		e.Logger.Warnf("benefit calculation rejected: %v", err)
		return result, domain.HistoryEntry{}, err
	}
	e.Logger.Debugf("%s benefit: sjr=%s gross=%s net=%s", in.Category, result.DailyReferenceWage, result.GrossDailyAllowance, result.NetDailyAllowance)

	salary := in.ReferenceSalary
	entry := domain.HistoryEntry{
		RecordedAt:      e.Clock(),
		Kind:            domain.KindBenefit,
		Category:        in.Category,
		Cachets:         in.Cachets,
		Hours:           in.Hours,
		ReferenceSalary: &salary,
		DailyBenefit:    result.NetDailyAllowance,
	}
	return result, entry, nil
}

// RunMonth validates the activity, aggregates its hours and simulates the month
func (e *Engine) RunMonth(activity domain.MonthActivity) (domain.MonthReport, domain.HistoryEntry, error) {
	if err := activity.Validate(); err != nil {
		return domain.MonthReport{}, domain.HistoryEntry{}, fmt.Errorf("month activity: %w", err)
	}

	result, err := e.Monthly.ComputeMonth(activity.MonthlyInput())
	if err != nil {
		e.Logger.Warnf("monthly simulation rejected: %v", err)
		return domain.MonthReport{}, domain.HistoryEntry{}, err
	}
	report := BuildMonthReport(activity, result)
	e.Logger.Debugf("%s month: hours=%s jni=%d indemnifiable=%d benefit=%s",
		activity.Category, report.TotalHours, result.NonIndemnifiedDays, result.IndemnifiableDays, result.MonthlyBenefit)

	monthly := result.MonthlyBenefit
	entry := domain.HistoryEntry{
		RecordedAt:       e.Clock(),
		Kind:             domain.KindMonthly,
		Category:         activity.Category,
		Cachets:          activity.Cachets,
		RehearsalCachets: activity.RehearsalCachets,
		Hours:            report.TotalHours,
		DailyBenefit:     activity.DailyBenefit,
		MonthlyBenefit:   &monthly,
		ContractDetails:  contractDetails(activity),
	}
	return report, entry, nil
}

// contractDetails renders the CDD summary kept in the history log
func contractDetails(a domain.MonthActivity) string {
	if !a.HasContract() {
		return ""
	}
	return fmt.Sprintf("%sh à %s€/h", a.ContractHours.String(), money.NewMoneyFromDecimal(a.ContractHourlyRate))
}
