// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides the structured logging used across konsole, built
// on top of slog.
//
// Logs go to stderr so they never mix with the text konsole renders to
// stdout. Debug output is off unless SetupLogger is called with debug=true or
// KONSOLE_DEBUG=true is set.
//
// # Basic Usage
//
//	logutil.SetupLogger(debug, structured)
//
//	logutil.Debug("row allocated", "row", row)
//	logutil.Warn("theme ignored", "path", path, "error", err)
//
// # Component Loggers
//
// Packages log through a component-scoped logger:
//
//	var log = logutil.NewLogger("progress")
//
//	log.Debug("bar added", "row", bar.Row())
//
// Component loggers resolve the global logger on every call, so a logger
// declared at package level follows later calls to SetupLogger.
//
// # Structured Logging
//
// When structured=true, logs are JSON:
//
//	{"time":"2026-01-15T10:30:00Z","level":"DEBUG","msg":"bar added","component":"progress","row":4}
//
// Otherwise they use slog's text format:
//
//	time=2026-01-15T10:30:00Z level=DEBUG msg="bar added" component=progress row=4
package logutil
