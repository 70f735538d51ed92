package common

import (
	"context"
	"fmt"
	"os"
	"sort"
)

// Logger provides structured logging for planner operations. Data-integrity
// warnings and referential no-ops are reported here rather than surfaced as
// errors, matching the best-effort editing model.
type Logger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op logger if not found
func LoggerFromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}
	return &noOpLogger{}
}

// noOpLogger is a logger that does nothing (fallback when no logger in context)
type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {
	// Do nothing
}

// StdoutLogger writes log lines to standard output with metadata keys
// sorted for stable output. Installed by the CLI in verbose mode.
type StdoutLogger struct{}

func (l *StdoutLogger) Log(level, message string, metadata map[string]interface{}) {
	line := fmt.Sprintf("[%s] %s", level, message)
	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		line += fmt.Sprintf(" %s=%v", key, metadata[key])
	}
	fmt.Fprintln(os.Stdout, line)
}
