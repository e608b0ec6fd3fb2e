package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConfigOptionAccessors verifies the typed option accessors tolerate
// the loose value types produced by YAML/JSON decoding.
func TestConfigOptionAccessors(t *testing.T) {
	cfg := Config{
		Options: map[string]any{
			"base_url":  "http://localhost:11434/v1",
			"verbose":   true,
			"rpm_int":   120,
			"rpm_int64": int64(90),
			"rpm_float": float64(60),
			"top_p":     0.9,
			"wrong":     []string{"not-a-scalar"},
		},
	}

	t.Run("string option", func(t *testing.T) {
		assert.Equal(t, "http://localhost:11434/v1", cfg.StringOption("base_url"))
		assert.Empty(t, cfg.StringOption("missing"))
		assert.Empty(t, cfg.StringOption("verbose"))
	})

	t.Run("bool option", func(t *testing.T) {
		assert.True(t, cfg.BoolOption("verbose"))
		assert.False(t, cfg.BoolOption("missing"))
		assert.False(t, cfg.BoolOption("base_url"))
	})

	t.Run("int option", func(t *testing.T) {
		assert.Equal(t, 120, cfg.IntOption("rpm_int"))
		assert.Equal(t, 90, cfg.IntOption("rpm_int64"))
		assert.Equal(t, 60, cfg.IntOption("rpm_float"))
		assert.Zero(t, cfg.IntOption("missing"))
		assert.Zero(t, cfg.IntOption("wrong"))
	})

	t.Run("float option", func(t *testing.T) {
		assert.Equal(t, 0.9, cfg.FloatOption("top_p"))
		assert.Equal(t, 120.0, cfg.FloatOption("rpm_int"))
		assert.Equal(t, 90.0, cfg.FloatOption("rpm_int64"))
		assert.Zero(t, cfg.FloatOption("missing"))
	})
}

// TestConfigNilOptions verifies accessors are safe on a zero Config.
func TestConfigNilOptions(t *testing.T) {
	var cfg Config

	assert.Empty(t, cfg.StringOption("base_url"))
	assert.False(t, cfg.BoolOption("verbose"))
	assert.Zero(t, cfg.IntOption("requests_per_minute"))
	assert.Zero(t, cfg.FloatOption("top_p"))
}
