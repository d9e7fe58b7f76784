package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// EnvLevel selects the minimum log level (debug, info, warn, error).
	EnvLevel = "TICKTICK_MCP_LOG_LEVEL"
	// EnvFormat selects the encoder (console or json).
	EnvFormat = "TICKTICK_MCP_LOG_FORMAT"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options controls logger construction. The zero value yields an info-level
// console logger on stderr.
type Options struct {
	Level  string
	Format string
	Output zapcore.WriteSyncer
}

// OptionsFromEnv reads Level and Format from the process environment.
func OptionsFromEnv() Options {
	return Options{
		Level:  os.Getenv(EnvLevel),
		Format: os.Getenv(EnvFormat),
	}
}

// New creates a leveled, timestamped logger writing to stderr unless
// opts.Output says otherwise.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if raw := strings.TrimSpace(opts.Level); raw != "" {
		parsed, err := zapcore.ParseLevel(strings.ToLower(raw))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.StacktraceKey = "stacktrace"

	var encoder zapcore.Encoder
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", FormatConsole:
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(out), level)
	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)), nil
}
