// Package config loads runtime settings from defaults, an optional config
// file, a .env file and MATHTIK_* environment variables.
package config

// Config holds all application configuration.
type Config struct {
	// DBPath overrides the default database location when non-empty.
	DBPath    string          `mapstructure:"db_path"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler" validate:"required"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	// File is where the TUI writes logs. Empty means the data directory.
	File string `mapstructure:"file"`
}

// SchedulerConfig tunes challenge selection.
type SchedulerConfig struct {
	PriorRatioBase     float64 `mapstructure:"prior_ratio_base" validate:"gte=0,lte=1"`
	PriorRatioStep     float64 `mapstructure:"prior_ratio_step" validate:"gte=0,lte=1"`
	PriorRatioMax      float64 `mapstructure:"prior_ratio_max" validate:"gte=0,lte=1,gtefield=PriorRatioBase"`
	MultipleChoiceRate float64 `mapstructure:"multiple_choice_rate" validate:"gt=0,lte=1"`
}
