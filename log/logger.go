// Package log provides structured logging for the launcher.
//
// The launcher logs diagnostics to stderr as JSON; stdout stays
// reserved for rendered command output and user-facing results. The
// default level is info, lowered to debug by --verbose.
package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/skiffrun/skiff/types"
)

// Logger wraps a zap.Logger with launcher context fields.
type Logger struct {
	zap *zap.Logger
}

// NewLogger creates a logger writing to os.Stderr.
func NewLogger(verbose bool) *Logger {
	return NewLoggerWithWriter(verbose, os.Stderr)
}

// NewLoggerWithWriter creates a logger writing to w. Used by tests to
// capture output.
func NewLoggerWithWriter(verbose bool, w io.Writer) *Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:     "timestamp",
		LevelKey:    "level",
		MessageKey:  "message",
		EncodeTime:  zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)

	return &Logger{zap: zap.New(core)}
}

// WithResolution returns a logger carrying the resolution context on
// every entry: project root, engine source, engine version.
func (l *Logger) WithResolution(res *types.Resolution) *Logger {
	return &Logger{zap: l.zap.With(
		zap.String("root", res.Root),
		zap.String("engine_source", string(res.Source)),
		zap.String("engine_version", res.Version),
	)}
}

// Debug logs a debug message.
func (l *Logger) Debug(message string, fields map[string]any) {
	l.zap.Debug(message, zap.Any("fields", fields))
}

// Info logs an info message.
func (l *Logger) Info(message string, fields map[string]any) {
	l.zap.Info(message, zap.Any("fields", fields))
}

// Warn logs a warning message.
func (l *Logger) Warn(message string, fields map[string]any) {
	l.zap.Warn(message, zap.Any("fields", fields))
}

// Error logs an error message.
func (l *Logger) Error(message string, fields map[string]any) {
	l.zap.Error(message, zap.Any("fields", fields))
}
