// Package config provides application configuration through environment variables.
package config

import (
	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all tunable parameters for the encryption subsystem.
type Config struct {
	// KDFIterations is the PBKDF2 iteration count used for session master-key
	// derivation. Must be at least 100000; 500000 is the recommended default.
	KDFIterations int
	// ContainerKDFIterations is the PBKDF2 iteration count used by the encrypted
	// container codec. The container format canonically uses 100000.
	ContainerKDFIterations int

	// DetectionSampleSize is the number of leading bytes the encryption classifier
	// analyzes for signatures and entropy.
	DetectionSampleSize int
	// TextSampleSize is the number of bytes sampled by the printable-text heuristic.
	TextSampleSize int

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
}

// Load reads configuration from environment variables, falling back to defaults.
// A .env file is loaded first if present.
func Load() *Config {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	return &Config{
		KDFIterations:          env.GetInt("PBKDF2_ITERATIONS", 500000),
		ContainerKDFIterations: env.GetInt("CONTAINER_PBKDF2_ITERATIONS", 100000),

		DetectionSampleSize: env.GetInt("DETECTION_SAMPLE_SIZE", 2048),
		TextSampleSize:      env.GetInt("DETECTION_TEXT_SAMPLE_SIZE", 500),

		LogLevel: env.GetString("LOG_LEVEL", "info"),

		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "docsafe"),
	}
}
