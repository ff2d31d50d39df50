package app

import (
	"log/slog"
	"os"

	"logistics-dashboard-service/internal/logx"
)

// NewLogger returns the production logger: JSON on stdout at info level.
func NewLogger() logx.Logger {
	base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return logx.NewSlogAdapter(base)
}
