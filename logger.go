package cell

import "log/slog"

// logger is the package-wide logger used to trace mailbox activity.
var logger *slog.Logger = slog.Default()

// SetLogger overrides the package logger.
//
// If not set, slog.Default() is used.
func SetLogger(l *slog.Logger) {
	logger = l
}
