package main

import (
	"log/slog"
	"os"

	"estate-ledger/internal/logger"
)

func main() {
	// Info until the configured level is known.
	setLogger(slog.LevelInfo)

	if err := newRootCommand().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func setLogger(level slog.Level) {
	logHandler := logger.NewPrettyHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(logHandler))
}
