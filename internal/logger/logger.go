// Package logger provides the presenter's structured logging.
// The terminal belongs to the full-screen UI, so nothing is written unless a log file is configured.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance used throughout slidereel.
var Logger *log.Logger

// closer is the currently open log file, if any
var closer io.Closer

func init() {
	Logger = log.New(io.Discard)
	Logger.SetLevel(log.InfoLevel)
}

// Configure sets up the logger.
// An empty level falls back to SLIDEREEL_LOG_LEVEL and then to info; an empty file
// falls back to SLIDEREEL_LOG_FILE and then to discarding output.
func Configure(level string, file string) error {
	if level == "" {
		level = os.Getenv("SLIDEREEL_LOG_LEVEL")
	}
	if file == "" {
		file = os.Getenv("SLIDEREEL_LOG_FILE")
	}

	var output io.Writer = io.Discard
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", file, err)
		}
		output = f
	}

	Close()
	if c, ok := output.(io.Closer); ok {
		closer = c
	}

	Logger = log.NewWithOptions(output, log.Options{
		ReportTimestamp: true,
		Prefix:          "slidereel",
	})
	Logger.SetLevel(ParseLevel(level))
	return nil
}

// SetOutput redirects the logger, mainly for tests
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// Close releases the log file opened by Configure
func Close() {
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
}

// ParseLevel converts a level name into a log level, defaulting to info
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}
