package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/intermittent/are-simulator/internal/domain"
)

// ConsoleFormatter renders the history log as an aligned text table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(entries []domain.HistoryEntry) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "HISTORIQUE DES SIMULATIONS")
	fmt.Fprintln(&buf, "================================")
	if len(entries) == 0 {
		fmt.Fprintln(&buf, "Aucune donnée enregistrée dans l'historique.")
		return buf.Bytes(), nil
	}

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDate\tType\tAnnexe\tCachets\tHeures\tARE Journalière\tARE Mensuelle\tDetails CDD")
	for _, e := range entries {
		monthly := "N/A"
		if e.MonthlyBenefit != nil {
			monthly = FormatCurrency(*e.MonthlyBenefit)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			e.ID,
			e.RecordedAt.Format(DateLayout),
			e.Kind.Label(),
			int(e.Category),
			e.Cachets,
			e.Hours.String(),
			FormatCurrency(e.DailyBenefit),
			monthly,
			e.ContractDetails,
		)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	fmt.Fprintf(&buf, "\n%d simulation(s)\n", len(entries))
	return buf.Bytes(), nil
}
