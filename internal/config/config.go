// Package config handles the uacast TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"uacast/internal/model"

	"github.com/BurntSushi/toml"
)

// Config holds all uacast configuration.
type Config struct {
	Scenario   ScenarioConfig   `toml:"scenario"`
	Retention  model.AnchorSet  `toml:"retention"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// ScenarioConfig holds the default acquisition scenario.
type ScenarioConfig struct {
	MonthlyBudget float64 `toml:"monthly_budget"`
	CPI           float64 `toml:"cpi"`
	ARPDAU        float64 `toml:"arpdau"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration: a mid-size mobile title
// spending 250k/month at a $4 CPI.
func DefaultConfig() Config {
	return Config{
		Scenario: ScenarioConfig{
			MonthlyBudget: 250000,
			CPI:           4.0,
			ARPDAU:        0.25,
		},
		Retention: model.AnchorSet{
			D1: 35, D7: 12, D14: 8, D30: 5, D90: 3, D180: 2.2, D360: 1.5,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Inputs assembles the engine parameter set from the configured scenario.
func (c Config) Inputs() model.Inputs {
	return model.Inputs{
		MonthlyBudget: c.Scenario.MonthlyBudget,
		CPI:           c.Scenario.CPI,
		ARPDAU:        c.Scenario.ARPDAU,
		Anchors:       c.Retention,
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "uacast")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "uacast")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
