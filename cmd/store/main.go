package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/env"
	"github.com/Lexv0lk/merch-ledger/internal/pkg/logging"
	"github.com/Lexv0lk/merch-ledger/internal/store/bootstrap"
)

const (
	networkProtocol = "tcp"
)

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
	defer closeLogger()

	lis, err := net.Listen(networkProtocol, cfg.HttpPort)
	if err != nil {
		logger.Error("failed to listen", "error", err.Error())
		return
	}

	app := bootstrap.NewStoreApp(cfg, logger)
	defer app.Shutdown()

	if err := app.Prepare(mainCtx); err != nil {
		logger.Error("failed to prepare store", "error", err.Error())
		return
	}

	if err := app.Run(mainCtx, lis); err != nil {
		logger.Error("store stopped with error", "error", err.Error())
	}
}
