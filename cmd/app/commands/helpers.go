// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ameerarsath/publicdocsafe-sub005/internal/config"
	"github.com/ameerarsath/publicdocsafe-sub005/internal/container"
	cryptoService "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/service"
	"github.com/ameerarsath/publicdocsafe-sub005/internal/detection"
	"github.com/ameerarsath/publicdocsafe-sub005/internal/diagnostics"
	"github.com/ameerarsath/publicdocsafe-sub005/internal/metrics"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// Services bundles the wired-up subsystem used by the commands.
type Services struct {
	Config      *config.Config
	Logger      *slog.Logger
	Codec       *container.Codec
	Detector    *detection.Detector
	Port        *diagnostics.Port
	DekManager  cryptoService.DekManager
	metricsProv *metrics.Provider
}

// BuildServices constructs the full service graph from configuration. Metrics
// instrumentation is attached to the DEK manager when enabled, otherwise a
// no-op recorder is used.
func BuildServices() (*Services, error) {
	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)

	aeadManager := cryptoService.NewAEADManager()
	cipher := cryptoService.NewCipherService(aeadManager, logger)

	var dekManager cryptoService.DekManager = cryptoService.NewDekManager(cipher, logger)
	var provider *metrics.Provider
	if cfg.MetricsEnabled {
		var err error
		provider, err = metrics.NewProvider(cfg.MetricsNamespace)
		if err != nil {
			return nil, err
		}
		business, err := metrics.NewBusinessMetrics(provider.MeterProvider(), cfg.MetricsNamespace)
		if err != nil {
			return nil, err
		}
		dekManager = cryptoService.NewDekManagerWithMetrics(dekManager, business)
	} else {
		dekManager = cryptoService.NewDekManagerWithMetrics(dekManager, metrics.NewNoOpBusinessMetrics())
	}

	codec := container.NewCodec(aeadManager, cfg.ContainerKDFIterations, logger)
	detector := detection.NewDetector(cfg.DetectionSampleSize, cfg.TextSampleSize, logger)
	port := diagnostics.NewPort(detector, codec, logger)

	return &Services{
		Config:      cfg,
		Logger:      logger,
		Codec:       codec,
		Detector:    detector,
		Port:        port,
		DekManager:  dekManager,
		metricsProv: provider,
	}, nil
}

// newLogger builds a JSON slog logger at the configured level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// readPassword prompts for and reads a password line from the IOTuple reader.
func readPassword(io IOTuple, prompt string) (string, error) {
	fmt.Fprint(io.Writer, prompt)
	scanner := bufio.NewScanner(io.Reader)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return "", fmt.Errorf("no password provided")
	}
	password := strings.TrimSpace(scanner.Text())
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return password, nil
}
