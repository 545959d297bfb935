// Package config loads golfx configuration from rc files, environment
// variables, and flags bound through viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the golfx configuration.
type Config struct {
	Root       string `mapstructure:"root"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	Quiet      bool   `mapstructure:"quiet"`
	Verbose    bool   `mapstructure:"verbose"`
	Method     string `mapstructure:"method"`
	Handicap   string `mapstructure:"handicap"`
	FairRandom bool   `mapstructure:"fairRandom"`
}

// Handicap modes. "pmp" bakes personal pars into the scorecards, "legacy"
// subtracts handicap strokes during scoring, "none" scores gross only.
const (
	HandicapModePMP    = "pmp"
	HandicapModeLegacy = "legacy"
	HandicapModeNone   = "none"
)

// LoadConfig loads configuration from rc files, the environment, and any
// flags already bound into viper. rootPath overrides the configured root.
func LoadConfig(rootPath string) (*Config, error) {
	viper.SetDefault("root", ".")
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("method", "")
	viper.SetDefault("handicap", HandicapModePMP)
	viper.SetDefault("fairRandom", false)

	configPaths := []string{".golfxrc.json", ".golfxrc.yaml", ".golfxrc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	viper.SetEnvPrefix("GOLFX")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	switch config.Format {
	case "console", "json", "markdown":
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	switch config.Handicap {
	case HandicapModePMP, HandicapModeLegacy, HandicapModeNone:
	default:
		return fmt.Errorf("invalid handicap mode: %s. Must be 'pmp', 'legacy', or 'none'", config.Handicap)
	}

	switch config.Method {
	case "", "stroke_play", "stableford", "match_play", "skins":
	default:
		return fmt.Errorf("invalid scoring method: %s. Must be 'stroke_play', 'stableford', 'match_play', or 'skins'", config.Method)
	}

	return nil
}
