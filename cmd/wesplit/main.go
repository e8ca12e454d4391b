package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mmynk/wesplit/internal/config"
	"github.com/mmynk/wesplit/internal/currency"
	"github.com/mmynk/wesplit/internal/tui"
	"github.com/mmynk/wesplit/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if cfg.TUILogPath != "" {
		f, err := os.OpenFile(cfg.TUILogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logging.SetupWithWriter(logOut, cfg.LogLevel)

	formatter := currency.FromEnvironment(cfg.Locale)
	slog.Info("Starting WeSplit", "locale", formatter.Locale(), "currency", formatter.Code())

	if err := tui.NewView(formatter).Run(); err != nil {
		slog.Error("UI failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
