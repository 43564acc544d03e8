package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/env"
	"github.com/Lexv0lk/merch-ledger/internal/pkg/logging"
	"github.com/Lexv0lk/merch-ledger/internal/store/bootstrap"
)

// Applies migrations and seeds the merch catalog, then exits.
func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	configPath := ""
	env.TrySetFromEnv(env.EnvConfigPath, &configPath)

	cfg, err := bootstrap.LoadStoreConfig(configPath)
	if err != nil {
		defaultLogger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	logger, closeLogger, err := logging.NewLogger(cfg.LogFormat)
	if err != nil {
		defaultLogger.Error("failed to create logger", "error", err.Error())
		os.Exit(1)
	}

	app := bootstrap.NewStoreApp(cfg, logger)

	err = app.Prepare(mainCtx)
	app.Shutdown()
	closeLogger()

	if err != nil {
		defaultLogger.Error("bootstrap failed", "error", err.Error())
		os.Exit(1)
	}
}
