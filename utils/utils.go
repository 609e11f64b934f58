package utils

import (
	"context"
	"log/slog"
)

func logError(level slog.Level, e error, args []any) {
	if e == nil {
		return
	}
	slog.Log(context.Background(), level, "", append([]any{"error", e}, args...)...)
}

// Loge logs a non-nil error with optional key value pairs.
func Loge(e error, args ...any) {
	logError(slog.LevelError, e, args)
}

func Logwe(e error, args ...any) {
	logError(slog.LevelWarn, e, args)
}

// Logde is for errors that are expected in normal operation.
func Logde(e error, args ...any) {
	logError(slog.LevelDebug, e, args)
}
