package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// MATHTIK_LOG_LEVEL or MATHTIK_SCHEDULER_PRIOR_RATIO_MAX.
const EnvPrefix = "MATHTIK"

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("scheduler.prior_ratio_base", 0.1)
	v.SetDefault("scheduler.prior_ratio_step", 0.04)
	v.SetDefault("scheduler.prior_ratio_max", 0.5)
	v.SetDefault("scheduler.multiple_choice_rate", 0.75)
}

// Load reads configuration from the default config directory.
// Environment variables take precedence over the config file.
func Load() (*Config, error) {
	dir, err := defaultConfigDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dir)
}

// LoadFrom reads config.yaml from dir if present, then applies the
// environment and validates the result.
func LoadFrom(dir string) (*Config, error) {
	// A missing .env file is normal.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func defaultConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "mathtik"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "mathtik"), nil
}
