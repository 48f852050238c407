package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ojas-1234/company-fitness-bot/internal/app"
	"github.com/ojas-1234/company-fitness-bot/internal/bot"
	"github.com/ojas-1234/company-fitness-bot/internal/config"
	"github.com/ojas-1234/company-fitness-bot/internal/logger"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		panic(err)
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	b, err := bot.New(
		cfg,
		app.UserService,
		app.ChallengeService,
		app.CompletionService,
		app.LeaderboardService,
		app.SetupStore,
	)
	if err != nil {
		slog.Error("failed to initialize bot", "error", err)
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("bot starting", "env", cfg.AppEnv)

	err = b.Run(ctx)
	if err != nil {
		slog.Error("bot failed", "error", err)
		panic(err)
	}
	slog.Info("bot stopped")
}
