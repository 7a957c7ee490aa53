package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/intermittent/are-simulator/internal/calculation"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultSettingsFile is used when no --config flag is given
const DefaultSettingsFile = "parametres.yaml"

// Settings is the persisted parameter set of the simulator
type Settings struct {
	Display DisplayParams     `yaml:"display" json:"display"`
	Rules   calculation.RuleOverrides `yaml:"rules,omitempty" json:"rules"`
	History HistoryConfig             `yaml:"history" json:"history"`
}

// DisplayParams holds values shown to the user but not used by the formulas
type DisplayParams struct {
	HourlyMinimumWage decimal.Decimal `yaml:"hourly_minimum_wage" json:"hourly_minimum_wage"` // SMIC horaire brut
}

// HistoryConfig locates the simulation log. An empty path lets the caller
// pick its default.
type HistoryConfig struct {
	SQLitePath string `yaml:"sqlite_path,omitempty" json:"sqlite_path,omitempty"`
}

// EffectiveRules returns the default rules with the file overrides applied
func (s *Settings) EffectiveRules() calculation.Rules {
	return calculation.DefaultRules().Merge(s.Rules)
}

// DefaultSettings returns the built-in parameter set
func DefaultSettings() *Settings {
	return &Settings{
		Display: DisplayParams{
			HourlyMinimumWage: decimal.RequireFromString("11.65"), // 1 January 2025
		},
	}
}

// SettingsParser handles reading, validating and writing the settings file
type SettingsParser struct{}

// NewSettingsParser creates a new settings parser
func NewSettingsParser() *SettingsParser {
	return &SettingsParser{}
}

// LoadFromFile loads settings from a YAML file. Environment overrides are
// not applied so the result can be saved back unchanged; see WithEnvOverrides.
func (sp *SettingsParser) LoadFromFile(filename string) (*Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := sp.ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}

	return settings, nil
}

// LoadOrDefault loads the settings file, falling back to the built-in
// defaults when it is missing or invalid. The fallback is logged, never fatal.
func (sp *SettingsParser) LoadOrDefault(filename string, logger calculation.Logger) *Settings {
	logger = calculation.LoggerOrNop(logger)
	settings, err := sp.LoadFromFile(filename)
	if err == nil {
		logger.Debugf("settings loaded from %s", filename)
		return settings
	}
	if errors.Is(err, os.ErrNotExist) {
		logger.Infof("no settings file at %s, using defaults", filename)
	} else {
		logger.Warnf("using default settings: %v", err)
	}

	return DefaultSettings()
}

// WithEnvOverrides returns a copy of s where ARE_SQLITE_PATH and
// ARE_HOURLY_MINIMUM_WAGE take precedence. s itself is left untouched.
func WithEnvOverrides(s *Settings) (*Settings, error) {
	out := *s
	if v := os.Getenv("ARE_SQLITE_PATH"); v != "" {
		out.History.SQLitePath = v
	}
	if v := os.Getenv("ARE_HOURLY_MINIMUM_WAGE"); v != "" {
		wage, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("ARE_HOURLY_MINIMUM_WAGE: %w", err)
		}
		if wage.IsNegative() {
			return nil, fmt.Errorf("ARE_HOURLY_MINIMUM_WAGE cannot be negative")
		}
		out.Display.HourlyMinimumWage = wage
	}
	return &out, nil
}

// ValidateSettings validates loaded settings
func (sp *SettingsParser) ValidateSettings(s *Settings) error {
	if s.Display.HourlyMinimumWage.IsNegative() {
		return fmt.Errorf("hourly minimum wage cannot be negative")
	}
	if err := s.EffectiveRules().Validate(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}
	return nil
}

// SaveToFile validates and writes settings as YAML
func (sp *SettingsParser) SaveToFile(s *Settings, filename string) error {
	if err := sp.ValidateSettings(s); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
