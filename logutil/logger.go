// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"context"
	"log/slog"
)

// ComponentLogger provides component-scoped structured logging.
type ComponentLogger struct {
	component string
	fields    []any
}

// NewLogger creates a logger scoped to a named component.
func NewLogger(component string) *ComponentLogger {
	return &ComponentLogger{component: component}
}

// WithFields returns a new logger with additional fields.
// Fields are provided as alternating key-value pairs.
func (l *ComponentLogger) WithFields(fields ...any) *ComponentLogger {
	merged := make([]any, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &ComponentLogger{component: l.component, fields: merged}
}

// Component returns the component name for this logger.
func (l *ComponentLogger) Component() string {
	return l.component
}

// Enabled reports whether records at level would be emitted.
func (l *ComponentLogger) Enabled(level Level) bool {
	if level == LevelDebug {
		return IsDebugEnabled()
	}
	return Logger().Enabled(context.Background(), level.slogLevel())
}

// Debug logs a message at debug level.
func (l *ComponentLogger) Debug(msg string, args ...any) {
	if IsDebugEnabled() {
		l.with(debugLogger()).Debug(msg, args...)
	}
}

// Info logs a message at info level.
func (l *ComponentLogger) Info(msg string, args ...any) {
	l.with(Logger()).Info(msg, args...)
}

// Warn logs a message at warn level.
func (l *ComponentLogger) Warn(msg string, args ...any) {
	l.with(Logger()).Warn(msg, args...)
}

// Error logs a message at error level.
func (l *ComponentLogger) Error(msg string, args ...any) {
	l.with(Logger()).Error(msg, args...)
}

func (l *ComponentLogger) with(base *slog.Logger) *slog.Logger {
	logger := base.With("component", l.component)
	if len(l.fields) > 0 {
		logger = logger.With(l.fields...)
	}
	return logger
}
