// Package logging builds the zap logger shared by the CLI and the terminal
// editor.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New builds a logger at the given level ("debug", "info", "warn", "error")
// writing to outputPath ("stderr", "stdout" or a file path). Format is
// FormatConsole or FormatJSON.
func New(level, format, outputPath string) (*zap.Logger, error) {
	var cfg zap.Config

	switch format {
	case FormatConsole, "":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.DisableStacktrace = true
	case FormatJSON:
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q (expected %s or %s)", format, FormatConsole, FormatJSON)
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	if outputPath == "" {
		outputPath = "stderr"
	}
	cfg.OutputPaths = []string{outputPath}
	cfg.ErrorOutputPaths = []string{"stderr"}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}
