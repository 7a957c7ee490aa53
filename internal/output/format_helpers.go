package output

import (
	"strconv"

	"github.com/intermittent/are-simulator/internal/domain"
	money "github.com/intermittent/are-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// DateLayout is the timestamp format of the Date column
const DateLayout = "02/01/2006 15:04"

// historyHeader lists the columns shared by the tabular exports
var historyHeader = []string{
	"ID", "Date", "Type", "Annexe", "Cachets", "Cachets 6h", "Heures",
	"Salaire Ref", "ARE Journalière", "ARE Mensuelle", "Details CDD",
}

// FormatCurrency formats a decimal as a euro amount, e.g. "1 234,56 €".
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// optionalFixed renders an optional amount, "N/A" when absent
func optionalFixed(d *decimal.Decimal) string {
	if d == nil {
		return "N/A"
	}
	return d.StringFixed(2)
}

// historyRow renders an entry as the string cells of historyHeader
func historyRow(e domain.HistoryEntry) []string {
	return []string{
		e.ID,
		e.RecordedAt.Format(DateLayout),
		e.Kind.Label(),
		strconv.Itoa(int(e.Category)),
		strconv.Itoa(e.Cachets),
		strconv.Itoa(e.RehearsalCachets),
		e.Hours.String(),
		optionalFixed(e.ReferenceSalary),
		e.DailyBenefit.StringFixed(2),
		optionalFixed(e.MonthlyBenefit),
		e.ContractDetails,
	}
}
