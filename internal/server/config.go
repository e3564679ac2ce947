package server

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/ironsheep/denoise-mcp/internal/spectral"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel  = "DENOISE_MCP_LOG_LEVEL"
	EnvRadius    = "DENOISE_MCP_RADIUS"
	EnvTransform = "DENOISE_MCP_FFT"
)

// Config holds server-wide defaults. Tool arguments override them per call.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel zapcore.Level

	// Radius is the notch radius used when noise_remove omits one.
	Radius int

	// Transform names the FFT backend (see spectral.TransformNames).
	Transform string
}

// DefaultConfig returns info-level logging, the default notch radius and the
// default FFT backend.
func DefaultConfig() Config {
	return Config{
		LogLevel:  zapcore.InfoLevel,
		Radius:    spectral.DefaultRadius,
		Transform: spectral.DefaultTransform,
	}
}

// ConfigFromEnv overlays DefaultConfig with any variables getenv reports.
// Invalid values are errors rather than silently ignored.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if v := strings.TrimSpace(getenv(EnvRadius)); v != "" {
		r, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvRadius, err)
		}
		if r < 0 {
			return cfg, fmt.Errorf("%s: %w: %d", EnvRadius, spectral.ErrInvalidRadius, r)
		}
		cfg.Radius = r
	}

	if v := strings.TrimSpace(getenv(EnvTransform)); v != "" {
		t, err := spectral.NewTransform(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvTransform, err)
		}
		cfg.Transform = t.Name()
	}

	return cfg, nil
}
