package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/intermittent/are-simulator/internal/domain"
	"github.com/intermittent/are-simulator/internal/output"
	"github.com/intermittent/are-simulator/pkg/dateutil"
	"github.com/spf13/cobra"
)

func newBenefitCmd(a *app) *cobra.Command {
	var (
		in       domain.BenefitInput
		from, to string
		record   bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "benefit",
		Short: "Compute the gross and net daily allowance from reference-period figures",
		Example: `  arecalc benefit --category artist --salary 8536.59 --hours 732 --cachets 61 --days 319
  arecalc benefit --category 8 --salary 15000 --hours 800 --from 2024-01-01 --to 2024-12-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if from != "" || to != "" {
				if from == "" || to == "" {
					return fmt.Errorf("--from and --to must be given together")
				}
				days, err := dateutil.ParseReferencePeriod(from, to)
				if err != nil {
					return err
				}
				in.ReferenceDays = days
			}

			result, entry, err := a.engine.RunBenefit(in)
			if err != nil {
				return err
			}

			if record {
				saved, err := a.store.Append(cmd.Context(), entry)
				if err != nil {
					return fmt.Errorf("record simulation: %w", err)
				}
				a.logger.Infof("simulation recorded as %s", saved.ID)
			}

			if asJSON {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, string(data))
				return nil
			}
			fmt.Fprint(a.out, output.RenderBenefit(result))
			return nil
		},
	}

	f := cmd.Flags()
	f.Var(newCategoryValue(&in.Category, domain.Artist), "category", "annex: artist (10) or technician (8)")
	f.Var(newDecimalValue(&in.ReferenceSalary, "0"), "salary", "gross salary over the reference period (€)")
	f.Var(newDecimalValue(&in.Hours, "0"), "hours", "hours worked over the reference period")
	f.IntVar(&in.Cachets, "cachets", 0, "cachets over the reference period")
	f.IntVar(&in.ReferenceDays, "days", 365, "calendar days in the reference period")
	f.StringVar(&from, "from", "", "reference period start (YYYY-MM-DD), overrides --days")
	f.StringVar(&to, "to", "", "reference period end (YYYY-MM-DD)")
	f.BoolVar(&record, "log", false, "record the result in the history")
	f.BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
