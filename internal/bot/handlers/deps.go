package handlers

import (
	"log/slog"

	"github.com/edgard/habitbot/internal/config"
	"github.com/edgard/habitbot/internal/store"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger  *slog.Logger
	Config  *config.Config
	Store   *store.Store
	Prompts *PromptRegistry
}
