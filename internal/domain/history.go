package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind distinguishes the simulations recorded in the history log
type EntryKind string

const (
	KindBenefit EntryKind = "benefit"
	KindMonthly EntryKind = "monthly"
)

// Label returns the display label of the entry kind
func (k EntryKind) Label() string {
	switch k {
	case KindBenefit:
		return "Journalier"
	case KindMonthly:
		return "Mensuel"
	default:
		return string(k)
	}
}

// HistoryEntry is one row of the simulation log. Rows are freely editable;
// optional amounts are nil when the simulation kind does not produce them.
type HistoryEntry struct {
	ID               string           `json:"id"`
	RecordedAt       time.Time        `json:"recorded_at"`
	Kind             EntryKind        `json:"kind"`
	Category         Category         `json:"category"`
	Cachets          int              `json:"cachets"`
	RehearsalCachets int              `json:"rehearsal_cachets"`
	Hours            decimal.Decimal  `json:"hours"`
	ReferenceSalary  *decimal.Decimal `json:"reference_salary,omitempty"`
	DailyBenefit     decimal.Decimal  `json:"daily_benefit"`
	MonthlyBenefit   *decimal.Decimal `json:"monthly_benefit,omitempty"`
	ContractDetails  string           `json:"contract_details,omitempty"`
}
