package main

import (
	"fmt"

	"github.com/intermittent/are-simulator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List, edit, delete and export recorded simulations",
	}
	cmd.AddCommand(
		newHistoryListCmd(a),
		newHistoryDeleteCmd(a),
		newHistoryUpdateCmd(a),
		newHistoryExportCmd(a),
	)
	return cmd
}

func newHistoryListCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.GetFormatterByName(format)
			if f == nil || f.Name() == "xlsx" {
				return fmt.Errorf("%w: %q cannot be printed", output.ErrUnsupportedFormat, format)
			}
			entries, err := a.store.List(cmd.Context())
			if err != nil {
				return err
			}
			data, err := f.Format(entries)
			if err != nil {
				return err
			}
			_, err = a.out.Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "console, csv or json")
	return cmd
}

func newHistoryDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete entries from the history",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range args {
				if err := a.store.Delete(cmd.Context(), id); err != nil {
					return fmt.Errorf("delete %s: %w", id, err)
				}
				fmt.Fprintf(a.out, "Deleted %s\n", id)
			}
			return nil
		},
	}
}

func newHistoryUpdateCmd(a *app) *cobra.Command {
	var (
		cachets, rehearsal    int
		hours, daily, monthly decimal.Decimal
		salary                decimal.Decimal
		contractDetails       string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit the fields of a recorded simulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := a.store.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("update %s: %w", args[0], err)
			}

			changed := cmd.Flags().Changed
			if changed("cachets") {
				entry.Cachets = cachets
			}
			if changed("rehearsal-cachets") {
				entry.RehearsalCachets = rehearsal
			}
			if changed("hours") {
				entry.Hours = hours
			}
			if changed("daily-benefit") {
				entry.DailyBenefit = daily
			}
			if changed("monthly-benefit") {
				m := monthly
				entry.MonthlyBenefit = &m
			}
			if changed("salary") {
				s := salary
				entry.ReferenceSalary = &s
			}
			if changed("cdd") {
				entry.ContractDetails = contractDetails
			}

			if err := a.store.Update(cmd.Context(), entry); err != nil {
				return fmt.Errorf("update %s: %w", entry.ID, err)
			}
			fmt.Fprintf(a.out, "Updated %s\n", entry.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&cachets, "cachets", 0, "cachets")
	f.IntVar(&rehearsal, "rehearsal-cachets", 0, "rehearsal cachets")
	f.Var(newDecimalValue(&hours, "0"), "hours", "total hours")
	f.Var(newDecimalValue(&daily, "0"), "daily-benefit", "daily allowance (€)")
	f.Var(newDecimalValue(&monthly, "0"), "monthly-benefit", "monthly allowance (€)")
	f.Var(newDecimalValue(&salary, "0"), "salary", "reference salary (€)")
	f.StringVar(&contractDetails, "cdd", "", "fixed-term contract details")
	return cmd
}

func newHistoryExportCmd(a *app) *cobra.Command {
	var format, path, dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the history to a spreadsheet or another format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				a.logger.Warnf("history is empty, exporting headers only")
			}
			written, err := output.Export(entries, format, path, dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Exported %d simulation(s) to %s\n", len(entries), written)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&format, "format", "f", "xlsx", "xlsx, csv, json or console")
	f.StringVarP(&path, "out", "o", "", "output file (default: timestamped file in --dir)")
	f.StringVar(&dir, "dir", ".", "directory for timestamped exports")
	return cmd
}
