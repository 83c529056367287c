package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, 500000, cfg.KDFIterations)
		assert.Equal(t, 100000, cfg.ContainerKDFIterations)
		assert.Equal(t, 2048, cfg.DetectionSampleSize)
		assert.Equal(t, 500, cfg.TextSampleSize)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.True(t, cfg.MetricsEnabled)
		assert.Equal(t, "docsafe", cfg.MetricsNamespace)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PBKDF2_ITERATIONS", "600000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("METRICS_ENABLED", "false")

		cfg := Load()

		assert.Equal(t, 600000, cfg.KDFIterations)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.False(t, cfg.MetricsEnabled)
	})
}
