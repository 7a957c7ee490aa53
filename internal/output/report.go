package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/intermittent/are-simulator/internal/domain"
)

// Export writes the history log in the named format and returns the file written.
func Export(entries []domain.HistoryEntry, format, path, dir string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(f, entries, path, dir)
}

// RenderBenefit formats a daily allowance result for the terminal
func RenderBenefit(r domain.BenefitResult) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Résultats estimés de l'ARE journalière (%s)\n", r.Category.Label())
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Salaire journalier de référence : %s\n", FormatCurrency(r.DailyReferenceWage))
	fmt.Fprintf(&buf, "ARE journalière brute :           %s\n", FormatCurrency(r.GrossDailyAllowance))
	fmt.Fprintf(&buf, "ARE journalière nette estimée :   %s\n", FormatCurrency(r.NetDailyAllowance))
	if len(r.Breakdown) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Détails du calcul :")
		for _, c := range r.Breakdown {
			fmt.Fprintf(&buf, "  %-22s %s\n", c.Name, c.Value.String())
		}
	}
	return buf.String()
}

// RenderMonth formats a monthly simulation for the terminal
func RenderMonth(r domain.MonthReport) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Résultats de la simulation mensuelle (%s)\n", r.Category.Label())
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Heures totales travaillées/assimilées : %s heures\n", r.TotalHours.String())
	fmt.Fprintf(&buf, "Jours non indemnisés (JNI) :            %d jours\n", r.Result.NonIndemnifiedDays)
	fmt.Fprintf(&buf, "Jours indemnisables ce mois-ci :        %d jours\n", r.Result.IndemnifiableDays)
	fmt.Fprintf(&buf, "ARE journalière utilisée :              %s\n", FormatCurrency(r.DailyBenefit))
	fmt.Fprintf(&buf, "ARE mensuelle estimée :                 %s\n", FormatCurrency(r.Result.MonthlyBenefit))
	fmt.Fprintf(&buf, "Revenu cachets :                        %s\n", FormatCurrency(r.CachetIncome))
	fmt.Fprintf(&buf, "Revenu CDD :                            %s\n", FormatCurrency(r.ContractIncome))
	fmt.Fprintf(&buf, "Revenu auto-entrepreneur :              %s\n", FormatCurrency(r.SelfEmployedIncome))
	fmt.Fprintf(&buf, "Revenu total net estimé ce mois-ci :    %s\n", FormatCurrency(r.TotalNetIncome))
	return buf.String()
}
