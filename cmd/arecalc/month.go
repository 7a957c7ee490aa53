package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/intermittent/are-simulator/internal/domain"
	"github.com/intermittent/are-simulator/internal/output"
	"github.com/intermittent/are-simulator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// defaultHoursPerCachet follows the usual declaration: 12h for artists, 8h for technicians
func defaultHoursPerCachet(c domain.Category) decimal.Decimal {
	if c == domain.Artist {
		return decimal.NewFromInt(12)
	}
	return decimal.NewFromInt(8)
}

func newMonthCmd(a *app) *cobra.Command {
	var (
		activity domain.MonthActivity
		month    string
		dryRun   bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Simulate the allowance of a month from worked and assimilated hours",
		Example: `  arecalc month --category technician --cdd-hours 143 --cdd-rate 11.61 --daily-benefit 49.70
  arecalc month --category artist --month 2025-02 --cachets 5 --rehearsal-cachets 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != "" && !cmd.Flags().Changed("days-in-month") {
				days, err := dateutil.DaysInMonthOf(month)
				if err != nil {
					return err
				}
				activity.DaysInMonth = days
			}
			if !cmd.Flags().Changed("hours-per-cachet") {
				activity.HoursPerCachet = defaultHoursPerCachet(activity.Category)
			}

			report, entry, err := a.engine.RunMonth(activity)
			if err != nil {
				return err
			}

			if !dryRun {
				saved, err := a.store.Append(cmd.Context(), entry)
				if err != nil {
					return fmt.Errorf("record simulation: %w", err)
				}
				a.logger.Infof("simulation recorded as %s", saved.ID)
			}

			if asJSON {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, string(data))
				return nil
			}
			fmt.Fprint(a.out, output.RenderMonth(report))
			return nil
		},
	}

	f := cmd.Flags()
	f.Var(newCategoryValue(&activity.Category, domain.Artist), "category", "annex: artist (10) or technician (8)")
	f.StringVar(&month, "month", "", "month simulated (YYYY-MM), sets --days-in-month")
	f.IntVar(&activity.DaysInMonth, "days-in-month", 30, "days in the month (28-31)")
	f.Var(newDecimalValue(&activity.DailyBenefit, "49.70"), "daily-benefit", "daily allowance applied to indemnifiable days (€)")
	f.IntVar(&activity.Cachets, "cachets", 0, "cachets worked this month")
	f.Var(newDecimalValue(&activity.HoursPerCachet, "12"), "hours-per-cachet", "hours counted per cachet (default 12 for artists, 8 for technicians)")
	f.Var(newDecimalValue(&activity.NetPerCachet, "90"), "net-per-cachet", "net pay per cachet (€)")
	f.IntVar(&activity.RehearsalCachets, "rehearsal-cachets", 0, "rehearsal cachets (6h each)")
	f.IntVar(&activity.SickDays, "sick-days", 0, "unpaid sick days (8h each)")
	f.Var(newDecimalValue(&activity.TrainingHours, "0"), "training-hours", "training hours")
	f.Var(newDecimalValue(&activity.ContractHours, "0"), "cdd-hours", "fixed-term contract hours")
	f.Var(newDecimalValue(&activity.ContractHourlyRate, "11.61"), "cdd-rate", "fixed-term contract net hourly rate (€)")
	f.Var(newDecimalValue(&activity.SelfEmployedIncome, "0"), "self-employed", "self-employed net income (€)")
	f.BoolVar(&dryRun, "dry-run", false, "do not record the simulation in the history")
	f.BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}
