//go:build !js

package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/glintgl/glint/app"
	"github.com/glintgl/glint/gpu"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevelFromEnv(),
	})))

	err := app.Run(app.Options{
		WindowTitle: "glint",
		ClearColor:  gpu.ColorSRGBA(0.06, 0.07, 0.09, 1),
	})

	if err != nil {
		slog.Error("Fatal error", slog.Any("error", err))
		os.Exit(1)
	}
}

func logLevelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
