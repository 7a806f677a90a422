// Package config loads pedit's user-facing settings: tab width, a
// keymap passed through opaque to whatever input layer consumes it,
// and the ambient debug/log-file toggles every core package respects.
//
// Grounded on the teacher's internal/config/config.go: the same
// viper-backed load/default/validate shape, env var overrides via a
// prefixed AutomaticEnv, and a createDefaultConfig fallback when no
// config.yaml exists — trimmed down to the handful of fields a text
// editor core actually needs, dropping everything specific to
// Postgres connection/replication/alerts monitoring.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is pedit's full set of user-facing settings.
type Config struct {
	TabSize int               `mapstructure:"tab_size"`
	Keymap  map[string]string `mapstructure:"keymap"`
	Debug   bool              `mapstructure:"debug"`
	LogFile string            `mapstructure:"log_file"`
}

// LoadConfig loads configuration from config.yaml and environment
// variables, searching ~/.config/pedit/ and the current directory.
func LoadConfig() (*Config, error) {
	return LoadConfigFromPath("")
}

// LoadConfigFromPath loads configuration from a specific path, or from
// the default search locations when configPath is empty.
func LoadConfigFromPath(configPath string) (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("PEDIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	applyDefaults()

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME/.config/pedit")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return createDefaultConfig()
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// createDefaultConfig builds a Config from viper's defaults when no
// config file exists.
func createDefaultConfig() (*Config, error) {
	cfg := &Config{
		TabSize: viper.GetInt("tab_size"),
		Keymap:  viper.GetStringMapString("keymap"),
		Debug:   viper.GetBool("debug"),
		LogFile: viper.GetString("log_file"),
	}
	return cfg, nil
}

// ValidateConfig checks the loaded configuration for sane values.
func ValidateConfig(cfg *Config) error {
	if cfg.TabSize < 1 || cfg.TabSize > 16 {
		return fmt.Errorf("tab_size must be between 1 and 16, got %d", cfg.TabSize)
	}
	return nil
}

// applyDefaults sets viper's defaults before a config file is read, so
// any field the file omits still resolves to a sane value.
func applyDefaults() {
	viper.SetDefault("tab_size", 4)
	viper.SetDefault("keymap", map[string]string{})
	viper.SetDefault("debug", false)
	// Log file default (empty = ~/.config/pedit/pedit.log, per logger.InitLogger).
	viper.SetDefault("log_file", "")
}
