// Package main содержит точку входа для регистрации пользователя.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/user-registration/internal/app/registration"
	"github.com/magabrotheeeer/user-registration/internal/config"
	"github.com/magabrotheeeer/user-registration/internal/lib/sl"
)

const envProd = "prod"

func main() {
	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)

	logger.Info("starting registration", slog.String("env", cfg.Env))
	logger.Debug("config loaded", slog.String("config", cfg.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := registration.New(cfg, logger, os.Stdout)
	if err != nil {
		logger.Error("failed to initialize registration app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("registration failed", sl.Err(err), sl.Kind(err))
		stop()
		os.Exit(1)
	}

	logger.Info("registration finished")
}

func setupLogger(env string) *slog.Logger {
	level := slog.LevelDebug
	if env == envProd {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
