package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/intermittent/are-simulator/internal/config"
	"github.com/intermittent/are-simulator/internal/domain"
	"github.com/intermittent/are-simulator/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cli struct {
	t      *testing.T
	config string
}

func newCLI(t *testing.T) *cli {
	dir := t.TempDir()
	t.Setenv("ARE_SQLITE_PATH", filepath.Join(dir, "historique.db"))
	t.Setenv("ARE_HOURLY_MINIMUM_WAGE", "")
	return &cli{t: t, config: filepath.Join(dir, "parametres.yaml")}
}

func (c *cli) run(args ...string) (string, error) {
	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).execute(append([]string{"--config", c.config}, args...))
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	out, err := c.run(args...)
	require.NoError(c.t, err, "arecalc %v", args)
	return out
}

func (c *cli) entries() []domain.HistoryEntry {
	var entries []domain.HistoryEntry
	require.NoError(c.t, json.Unmarshal([]byte(c.mustRun("history", "list", "--format", "json")), &entries))
	return entries
}

func TestBenefitCommand(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun("benefit", "--category", "artist", "--salary", "8536.59", "--hours", "732", "--cachets", "61", "--days", "319")

	assert.Contains(t, out, domain.Artist.Label())
	assert.Contains(t, out, "49,87 €")
	assert.Contains(t, out, "94,08 €")
	assert.Empty(t, c.entries(), "benefit without --log is not recorded")
}

func TestBenefitCommand_Rejections(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("benefit", "--category", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")

	_, err = c.run("benefit", "--salary", "-1")
	require.Error(t, err)

	_, err = c.run("benefit", "--from", "2024-01-01")
	require.Error(t, err)
}

func TestMonthCommandRecordsHistory(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun("month", "--category", "technician", "--days-in-month", "30",
		"--daily-benefit", "49.70", "--cdd-hours", "143", "--cdd-rate", "11.61")

	assert.Contains(t, out, "26 jours")
	assert.Contains(t, out, "198,80 €")

	entries := c.entries()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.KindMonthly, entries[0].Kind)
	assert.Equal(t, "143h à 11.61€/h", entries[0].ContractDetails)

	c.mustRun("month", "--dry-run", "--cachets", "2")
	assert.Len(t, c.entries(), 1, "dry run is not recorded")
}

func TestHistoryUpdateDeleteExport(t *testing.T) {
	c := newCLI(t)
	c.mustRun("benefit", "--log", "--category", "8", "--salary", "15000", "--hours", "800")
	c.mustRun("month", "--category", "artist", "--cachets", "5")

	entries := c.entries()
	require.Len(t, entries, 2)
	first := entries[0]
	assert.Equal(t, domain.KindBenefit, first.Kind)

	c.mustRun("history", "update", first.ID, "--monthly-benefit", "100", "--cdd", "note")
	updated := c.entries()[0]
	require.NotNil(t, updated.MonthlyBenefit)
	assert.Equal(t, "100", updated.MonthlyBenefit.String())
	assert.Equal(t, "note", updated.ContractDetails)
	assert.True(t, first.DailyBenefit.Equal(updated.DailyBenefit), "unchanged fields are kept")

	csvPath := filepath.Join(t.TempDir(), "export.csv")
	out := c.mustRun("history", "export", "--format", "csv", "--out", csvPath)
	assert.Contains(t, out, "2 simulation(s)")
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ARE Journalière")

	c.mustRun("history", "delete", first.ID)
	assert.Len(t, c.entries(), 1)

	_, err = c.run("history", "delete", first.ID)
	assert.Error(t, err)
}

func TestParamsSetAndShow(t *testing.T) {
	c := newCLI(t)
	assert.Contains(t, c.mustRun("params", "show"), "11.65 €")

	c.mustRun("params", "set", "--hourly-minimum-wage", "12")
	out := c.mustRun("params", "show")
	assert.Contains(t, out, "12.00 €")
	assert.Contains(t, out, "31.71 €")

	_, err := c.run("params", "set")
	assert.Error(t, err)
}

func TestParamsSetDoesNotSaveEnvironment(t *testing.T) {
	c := newCLI(t)
	envHistory := os.Getenv("ARE_SQLITE_PATH")
	t.Setenv("ARE_HOURLY_MINIMUM_WAGE", "99")

	assert.Contains(t, c.mustRun("params", "show"), "99.00 €")
	c.mustRun("params", "set", "--sqlite-path", history.MemoryPath)

	saved, err := config.NewSettingsParser().LoadFromFile(c.config)
	require.NoError(t, err)
	assert.Equal(t, "11.65", saved.Display.HourlyMinimumWage.StringFixed(2))
	assert.Equal(t, history.MemoryPath, saved.History.SQLitePath)

	t.Setenv("ARE_HOURLY_MINIMUM_WAGE", "")
	out := c.mustRun("params", "show")
	assert.Contains(t, out, "11.65 €")
	assert.NotContains(t, out, "99.00 €")
	assert.Contains(t, out, envHistory, "the environment still wins for the run")
}

type closeCounter struct {
	*history.Memory
	closes int
}

func (c *closeCounter) Close() error {
	c.closes++
	return nil
}

func TestStoreClosedWhenCommandFails(t *testing.T) {
	c := newCLI(t)
	store := &closeCounter{Memory: history.NewMemory()}

	var out, errOut bytes.Buffer
	a := newApp(&out, &errOut)
	a.openStore = func(string) (history.Store, error) { return store, nil }

	err := a.execute([]string{"--config", c.config, "benefit", "--salary", "-1"})
	require.Error(t, err)
	assert.Equal(t, 1, store.closes)

	a = newApp(&out, &errOut)
	a.openStore = func(string) (history.Store, error) { return store, nil }
	require.NoError(t, a.execute([]string{"--config", c.config, "month", "--dry-run"}))
	assert.Equal(t, 2, store.closes)
}
