package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type warnCounter struct{ warns, infos int }

func (w *warnCounter) Debugf(string, ...any) {}
func (w *warnCounter) Infof(string, ...any)  { w.infos++ }
func (w *warnCounter) Warnf(string, ...any)  { w.warns++ }
func (w *warnCounter) Errorf(string, ...any) {}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parametres.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewSettingsParser(t *testing.T) {
	assert.NotNil(t, NewSettingsParser())
}

func TestLoadFromFile_Success(t *testing.T) {
	path := writeTemp(t, "display:\n"+
		"  hourly_minimum_wage: 11.88\n"+
		"rules:\n"+
		"  annualization_divisor: 1.80\n"+
		"history:\n"+
		"  sqlite_path: \"historique.db\"\n")

	settings, err := NewSettingsParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, settings.Display.HourlyMinimumWage.Equal(decimal.RequireFromString("11.88")))
	assert.Equal(t, "historique.db", settings.History.SQLitePath)

	rules := settings.EffectiveRules()
	assert.True(t, rules.AnnualizationDivisor.Equal(decimal.RequireFromString("1.80")))
	assert.True(t, rules.MinimumDailyAllowance.Equal(decimal.RequireFromString("31.71")))
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	path := writeTemp(t, "history:\n  sqlite_path: log.db\n")

	settings, err := NewSettingsParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, settings.Display.HourlyMinimumWage.Equal(decimal.RequireFromString("11.65")))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	settings, err := NewSettingsParser().LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Nil(t, settings)
	assert.Contains(t, err.Error(), "failed to read file")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := writeTemp(t, "display:\n\thourly_minimum_wage: [not a number\n")

	settings, err := NewSettingsParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, settings)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidRules(t *testing.T) {
	path := writeTemp(t, "rules:\n  social_deduction_rate: 1.5\n")

	_, err := NewSettingsParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "social deduction rate")
}

func TestWithEnvOverrides(t *testing.T) {
	t.Setenv("ARE_SQLITE_PATH", "/tmp/env.db")
	t.Setenv("ARE_HOURLY_MINIMUM_WAGE", "12.00")
	path := writeTemp(t, "history:\n  sqlite_path: file.db\n")

	fromFile, err := NewSettingsParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file.db", fromFile.History.SQLitePath, "loading does not read the environment")

	settings, err := WithEnvOverrides(fromFile)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", settings.History.SQLitePath)
	assert.True(t, settings.Display.HourlyMinimumWage.Equal(decimal.NewFromInt(12)))

	assert.Equal(t, "file.db", fromFile.History.SQLitePath, "file view is not modified")
	assert.True(t, fromFile.Display.HourlyMinimumWage.Equal(decimal.RequireFromString("11.65")))
}

func TestWithEnvOverrides_Invalid(t *testing.T) {
	t.Setenv("ARE_HOURLY_MINIMUM_WAGE", "abc")
	_, err := WithEnvOverrides(DefaultSettings())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ARE_HOURLY_MINIMUM_WAGE")
}

func TestLoadFromFile_ZeroRuleOverrides(t *testing.T) {
	path := writeTemp(t, "rules:\n  social_deduction_rate: 0\n  daily_social_threshold: 0\n")

	settings, err := NewSettingsParser().LoadFromFile(path)
	require.NoError(t, err)
	require.NotNil(t, settings.Rules.SocialDeductionRate)

	rules := settings.EffectiveRules()
	assert.True(t, rules.SocialDeductionRate.IsZero())
	assert.True(t, rules.DailySocialThreshold.IsZero())
	assert.True(t, rules.AnnualizationDivisor.Equal(decimal.RequireFromString("1.76")), "unset fields keep defaults")

	out := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, NewSettingsParser().SaveToFile(settings, out))
	reloaded, err := NewSettingsParser().LoadFromFile(out)
	require.NoError(t, err)
	assert.True(t, reloaded.EffectiveRules().SocialDeductionRate.IsZero(), "zero override survives a save")
}

func TestLoadOrDefault(t *testing.T) {
	parser := NewSettingsParser()

	logger := &warnCounter{}
	settings := parser.LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"), logger)
	assert.Equal(t, DefaultSettings(), settings)
	assert.Equal(t, 1, logger.infos)
	assert.Zero(t, logger.warns)

	logger = &warnCounter{}
	settings = parser.LoadOrDefault(writeTemp(t, "display: [broken"), logger)
	assert.Equal(t, DefaultSettings(), settings)
	assert.Equal(t, 1, logger.warns)

	settings = parser.LoadOrDefault(writeTemp(t, "display:\n  hourly_minimum_wage: 12.5\n"), nil)
	assert.True(t, settings.Display.HourlyMinimumWage.Equal(decimal.RequireFromString("12.5")))
}

func TestValidateSettings(t *testing.T) {
	parser := NewSettingsParser()
	assert.NoError(t, parser.ValidateSettings(DefaultSettings()))

	s := DefaultSettings()
	s.Display.HourlyMinimumWage = decimal.NewFromInt(-1)
	err := parser.ValidateSettings(s)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "hourly minimum wage")
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	parser := NewSettingsParser()
	path := filepath.Join(t.TempDir(), "out.yaml")

	s := DefaultSettings()
	s.Display.HourlyMinimumWage = decimal.RequireFromString("11.88")
	threshold := decimal.NewFromInt(62)
	s.Rules.DailySocialThreshold = &threshold
	s.History.SQLitePath = "historique.db"
	require.NoError(t, parser.SaveToFile(s, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, loaded.Display.HourlyMinimumWage.Equal(s.Display.HourlyMinimumWage))
	assert.True(t, loaded.EffectiveRules().DailySocialThreshold.Equal(decimal.NewFromInt(62)))
	assert.Equal(t, "historique.db", loaded.History.SQLitePath)
}

func TestSaveToFile_RejectsInvalid(t *testing.T) {
	s := DefaultSettings()
	divisor := decimal.RequireFromString("0.5")
	s.Rules.AnnualizationDivisor = &divisor
	err := NewSettingsParser().SaveToFile(s, filepath.Join(t.TempDir(), "out.yaml"))
	assert.Error(t, err)
}
