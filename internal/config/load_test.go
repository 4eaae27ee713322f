package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.DBPath)
	assert.InDelta(t, 0.1, cfg.Scheduler.PriorRatioBase, 1e-9)
	assert.InDelta(t, 0.04, cfg.Scheduler.PriorRatioStep, 1e-9)
	assert.InDelta(t, 0.5, cfg.Scheduler.PriorRatioMax, 1e-9)
	assert.InDelta(t, 0.75, cfg.Scheduler.MultipleChoiceRate, 1e-9)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MATHTIK_LOG_LEVEL", "debug")
	t.Setenv("MATHTIK_DB_PATH", "/tmp/mathtik-test.db")
	t.Setenv("MATHTIK_SCHEDULER_PRIOR_RATIO_MAX", "0.3")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/mathtik-test.db", cfg.DBPath)
	assert.InDelta(t, 0.3, cfg.Scheduler.PriorRatioMax, 1e-9)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "log:\n  level: warn\nscheduler:\n  multiple_choice_rate: 0.5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.InDelta(t, 0.5, cfg.Scheduler.MultipleChoiceRate, 1e-9)
	assert.InDelta(t, 0.1, cfg.Scheduler.PriorRatioBase, 1e-9)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: warn\n"), 0o644))
	t.Setenv("MATHTIK_LOG_LEVEL", "error")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "MATHTIK_LOG_LEVEL", "loud"},
		{"ratio above one", "MATHTIK_SCHEDULER_PRIOR_RATIO_STEP", "1.5"},
		{"zero choice rate", "MATHTIK_SCHEDULER_MULTIPLE_CHOICE_RATE", "0"},
		{"max below base", "MATHTIK_SCHEDULER_PRIOR_RATIO_MAX", "0.05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadFrom(t.TempDir())
			assert.Error(t, err)
		})
	}
}
