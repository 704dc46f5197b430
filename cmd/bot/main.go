// Package main contains the entrypoint for the HabitBot Telegram bot.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbot "github.com/go-telegram/bot"

	"github.com/edgard/habitbot/internal/bot"
	"github.com/edgard/habitbot/internal/bot/handlers"
	"github.com/edgard/habitbot/internal/bot/tasks"
	"github.com/edgard/habitbot/internal/config"
	"github.com/edgard/habitbot/internal/history"
	"github.com/edgard/habitbot/internal/logger"
	"github.com/edgard/habitbot/internal/store"
	"github.com/edgard/habitbot/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes and starts all application components (config, logger,
// stores, telegram bot, scheduler), handles graceful shutdown, and returns
// an exit code (0 for success, 1 for failure).
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)

	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		log.Error("Failed to load reference timezone", "timezone", cfg.Scheduler.Timezone, "error", err)
		return 1
	}

	userStore, err := store.New(cfg.Store.Dir, log)
	if err != nil {
		log.Error("Failed to open user record store", "dir", cfg.Store.Dir, "error", err)
		return 1
	}
	if err := userStore.LoadAll(); err != nil {
		log.Error("Failed to load user records", "dir", cfg.Store.Dir, "error", err)
		return 1
	}

	db, err := history.NewDB(cfg.History.Path)
	if err != nil {
		log.Error("Failed to open history database", "path", cfg.History.Path, "error", err)
		return 1
	}
	defer history.CloseDB(db)
	historyStore := history.NewStore(db, log)

	hDeps := handlers.HandlerDeps{
		Logger:  log,
		Config:  cfg,
		Store:   userStore,
		Prompts: handlers.NewPromptRegistry(),
	}

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log)),
		tgbot.WithDefaultHandler(handlers.NewMenuRouter(hDeps)),
	}
	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	cfg.Telegram.BotInfo, err = tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return 1
	}
	log.Info("Retrieved bot info", "bot_id", cfg.Telegram.BotInfo.ID, "bot_username", cfg.Telegram.BotInfo.Username)

	if err := telegram.RegisterHandlers(tg, log, handlers.RegisterAllCommands(hDeps)); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return 1
	}

	tDeps := tasks.TaskDeps{
		Logger:   log,
		Store:    userStore,
		History:  historyStore,
		Notifier: telegram.NewNotifier(tg, log),
		Config:   cfg,
		Location: loc,
	}
	sched, err := bot.NewScheduler(log, loc, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	app := bot.NewBot(log, cfg, userStore, historyStore, tg, sched)

	log.Info("Starting bot...")
	runErr := app.Run(ctx)

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}
