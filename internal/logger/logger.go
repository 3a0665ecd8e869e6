// Package logger holds the process-wide structured logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger. It is a no-op until Initialize is called so
// library code and tests can log freely.
var Logger = zap.NewNop().Sugar()

// Initialize sets up the global logger. JSON output uses the zap production
// encoder; otherwise a compact console encoder writes to stderr so generated
// output on stdout stays clean.
func Initialize(jsonOutput, verbose bool) error {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stderr"}

		zapLogger, err := config.Build()
		if err != nil {
			return err
		}

		Logger = zapLogger.Sugar()

		return nil
	}

	Logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleEncoderConfig()),
		zapcore.AddSync(os.Stderr),
		level,
	)).Sugar()

	return nil
}

// Use replaces the global logger, returning a func that restores the
// previous one. Intended for tests.
func Use(l *zap.SugaredLogger) func() {
	prev := Logger
	Logger = l

	return func() { Logger = prev }
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      zapcore.CapitalColorLevelEncoder,
		ConsoleSeparator: " ",
	}
}

// Cleanup flushes any buffered log entries.
func Cleanup() {
	_ = Logger.Sync()
}

// Debugw logs a debug message with structured fields.
func Debugw(msg string, keysAndValues ...interface{}) {
	Logger.Debugw(msg, keysAndValues...)
}

// Infow logs an info message with structured fields.
func Infow(msg string, keysAndValues ...interface{}) {
	Logger.Infow(msg, keysAndValues...)
}

// Warnw logs a warning with structured fields.
func Warnw(msg string, keysAndValues ...interface{}) {
	Logger.Warnw(msg, keysAndValues...)
}

// Errorw logs an error with structured fields.
func Errorw(msg string, keysAndValues ...interface{}) {
	Logger.Errorw(msg, keysAndValues...)
}
