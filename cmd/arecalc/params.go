package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/intermittent/are-simulator/internal/domain"
	"github.com/intermittent/are-simulator/internal/history"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newParamsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Show or change the saved parameters",
	}
	cmd.AddCommand(newParamsShowCmd(a), newParamsSetCmd(a))
	return cmd
}

func newParamsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the parameters and formula constants in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := a.settings.EffectiveRules()
			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "SMIC horaire brut\t%s €\n", a.settings.Display.HourlyMinimumWage.StringFixed(2))
			fmt.Fprintf(tw, "AJ minimale\t%s €\n", rules.MinimumDailyAllowance.StringFixed(2))
			fmt.Fprintf(tw, "Seuil prélèvements sociaux\t%s €\n", rules.DailySocialThreshold.StringFixed(2))
			fmt.Fprintf(tw, "Taux de prélèvement social\t%s %%\n", rules.SocialDeductionRate.Mul(decimal.NewFromInt(100)).String())
			fmt.Fprintf(tw, "Diviseur d'annualisation (annexe 10)\t%s\n", rules.AnnualizationDivisor.String())
			for _, c := range domain.SupportedCategories() {
				p, _ := domain.ParamsFor(c)
				fmt.Fprintf(tw, "Plancher %s\t%s €\n", c.Label(), p.Floor.StringFixed(2))
			}
			if p, ok := domain.ParamsFor(domain.Technician); ok {
				fmt.Fprintf(tw, "Annexe 8 seuil salaire\t%s € (taux %s / %s)\n", p.SalaryThreshold, p.SalaryRateBelow, p.SalaryRateAbove)
				fmt.Fprintf(tw, "Annexe 8 seuil heures\t%s h (taux %s / %s)\n", p.HourThreshold, p.HourRateBelow, p.HourRateAbove)
				fmt.Fprintf(tw, "Annexe 8 partie C\t%s\n", p.FixedPartCoefficient)
			}
			historyPath := a.settings.History.SQLitePath
			if historyPath == "" {
				historyPath = defaultHistoryFile
			}
			fmt.Fprintf(tw, "Historique\t%s\n", historyPath)
			return tw.Flush()
		},
	}
}

func newParamsSetCmd(a *app) *cobra.Command {
	var (
		wage       decimal.Decimal
		sqlitePath string
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change and save the displayable parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("hourly-minimum-wage") && !cmd.Flags().Changed("sqlite-path") {
				return fmt.Errorf("nothing to change: use --hourly-minimum-wage or --sqlite-path")
			}
			if cmd.Flags().Changed("hourly-minimum-wage") {
				a.fileSettings.Display.HourlyMinimumWage = wage
			}
			if cmd.Flags().Changed("sqlite-path") {
				a.fileSettings.History.SQLitePath = sqlitePath
			}
			if err := a.parser.SaveToFile(a.fileSettings, a.configPath); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Paramètres sauvegardés dans %s\n", a.configPath)
			return nil
		},
	}
	cmd.Flags().Var(newDecimalValue(&wage, "0"), "hourly-minimum-wage", "SMIC horaire brut (€)")
	cmd.Flags().StringVar(&sqlitePath, "sqlite-path", "", "history database path, \""+history.MemoryPath+"\" for a history kept only during the run (empty means "+defaultHistoryFile+")")
	return cmd
}
