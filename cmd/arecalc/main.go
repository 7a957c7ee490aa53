package main

import (
	"fmt"
	"io"
	"os"

	"github.com/intermittent/are-simulator/internal/calculation"
	"github.com/intermittent/are-simulator/internal/config"
	"github.com/intermittent/are-simulator/internal/history"
	"github.com/spf13/cobra"
)

// defaultHistoryFile is used when the settings do not name a history database
const defaultHistoryFile = "historique.db"

// app carries the collaborators shared by every subcommand
type app struct {
	configPath string
	verbose    bool

	out, errOut io.Writer
	logger      calculation.Logger
	parser      *config.SettingsParser
	openStore   func(path string) (history.Store, error)

	// fileSettings is what the settings file holds and what params set saves;
	// settings adds the environment overrides and drives the run.
	fileSettings *config.Settings
	settings     *config.Settings
	engine       *calculation.Engine
	store        history.Store
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:       out,
		errOut:    errOut,
		parser:    config.NewSettingsParser(),
		openStore: history.Open,
	}
}

// execute runs the command line and releases the history store,
// whether the command succeeded or not
func (a *app) execute(args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	defer a.closeStore()
	return root.Execute()
}

func (a *app) closeStore() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil && a.logger != nil {
		a.logger.Warnf("close history: %v", err)
	}
	a.store = nil
}

func (a *app) setup() error {
	a.logger = newStdLogger(a.errOut, a.verbose)
	a.fileSettings = a.parser.LoadOrDefault(a.configPath, a.logger)

	settings, err := config.WithEnvOverrides(a.fileSettings)
	if err != nil {
		a.logger.Warnf("ignoring environment overrides: %v", err)
		settings = a.fileSettings
	}
	a.settings = settings

	a.engine = calculation.NewEngineWithRules(a.settings.EffectiveRules())
	a.engine.SetLogger(a.logger)

	path := a.settings.History.SQLitePath
	if path == "" {
		path = defaultHistoryFile
	}
	store, err := a.openStore(path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	a.store = store
	return nil
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "arecalc",
		Short:         "Estimate ARE unemployment benefits for intermittent entertainment workers",
		Long:          "arecalc estimates the daily ARE allowance for Annexe 8 (technicians) and Annexe 10 (artists),\nsimulates monthly allowances and keeps an exportable log of simulations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultSettingsFile, "settings file (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log calculation details to stderr")

	root.AddCommand(
		newBenefitCmd(a),
		newMonthCmd(a),
		newHistoryCmd(a),
		newParamsCmd(a),
	)
	return root
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
