package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"tradehabit/correlation"
)

// Config is the complete application configuration.
type Config struct {
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	Server   ServerConfig   `json:"server" yaml:"server"`
}

// JournalConfig selects and locates the journal store.
type JournalConfig struct {
	Type          string `json:"type" yaml:"type"` // "sqlite" or "csv"
	DBPath        string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	TradesFile    string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	HabitDaysFile string `json:"habit_days_file,omitempty" yaml:"habit_days_file,omitempty"`
}

// AnalysisConfig tunes the correlation engine.
type AnalysisConfig struct {
	Limit              int     `json:"limit" yaml:"limit"`
	MinPerSide         int     `json:"min_per_side" yaml:"min_per_side"`
	FullCreditSample   int     `json:"full_credit_sample" yaml:"full_credit_sample"`
	StrongConfidence   int     `json:"strong_confidence" yaml:"strong_confidence"`
	ModerateConfidence int     `json:"moderate_confidence" yaml:"moderate_confidence"`
	LargeSample        int     `json:"large_sample" yaml:"large_sample"`
	PnLScale           float64 `json:"pnl_scale" yaml:"pnl_scale"`
	OvertradePerDay    int     `json:"overtrade_per_day" yaml:"overtrade_per_day"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
	Mode string `json:"mode" yaml:"mode"` // gin mode: "debug" or "release"
}

// Params maps the analysis section onto engine parameters.
func (a AnalysisConfig) Params() correlation.Params {
	return correlation.Params{
		MinPerSide:         a.MinPerSide,
		FullCreditSample:   a.FullCreditSample,
		StrongConfidence:   a.StrongConfidence,
		ModerateConfidence: a.ModerateConfidence,
		LargeSample:        a.LargeSample,
		PnLScale:           a.PnLScale,
		OvertradePerDay:    a.OvertradePerDay,
	}
}

// LoadFromFile loads configuration from a file (YAML or JSON based on
// content), then applies environment overrides.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadEnv reads a .env file when present and returns the default config
// with environment overrides applied. Used when no config file is given.
func LoadEnv() (*Config, error) {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg := Default()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("TRADEHABIT_DB"); v != "" {
		c.Journal.Type = "sqlite"
		c.Journal.DBPath = v
	}
	if v := os.Getenv("TRADEHABIT_ADDR"); v != "" {
		c.Server.Addr = v
	}
}

// SaveToFile saves configuration to a file (YAML or JSON based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Journal.Type {
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for sqlite type")
		}
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.HabitDaysFile == "" {
			return fmt.Errorf("journal.trades_file and habit_days_file required for csv type")
		}
	default:
		return fmt.Errorf("journal.type must be 'sqlite' or 'csv'")
	}

	if c.Analysis.Limit < 1 {
		return fmt.Errorf("analysis.limit must be at least 1")
	}
	if !c.Analysis.Params().Valid() {
		return fmt.Errorf("analysis parameters are inconsistent")
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("server.mode must be 'debug' or 'release'")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	p := correlation.DefaultParams()
	return &Config{
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./tradehabit.sqlite",
		},
		Analysis: AnalysisConfig{
			Limit:              3,
			MinPerSide:         p.MinPerSide,
			FullCreditSample:   p.FullCreditSample,
			StrongConfidence:   p.StrongConfidence,
			ModerateConfidence: p.ModerateConfidence,
			LargeSample:        p.LargeSample,
			PnLScale:           p.PnLScale,
			OvertradePerDay:    p.OvertradePerDay,
		},
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
	}
}
