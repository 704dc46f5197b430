package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/habitbot/internal/config"
)

// NewStartHandler returns a handler for the /start command. It greets the
// user and attaches the persistent reply keyboard menu.
func NewStartHandler(deps HandlerDeps) bot.HandlerFunc {
	return startHandler{deps}.Handle
}

// startHandler processes the /start command using injected dependencies.
type startHandler struct {
	deps HandlerDeps
}

func (h startHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "start")

	chatID, userID, ok := messageChat(update)
	if !ok {
		log.WarnContext(ctx, "Start handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	log.InfoContext(ctx, "Handling /start command", "chat_id", chatID, "user_id", userID)

	// Materialize the user's record so the schedulers see them immediately.
	h.deps.Store.LoadOne(userID)
	h.deps.Prompts.Clear(chatID)

	sendTextWithKeyboard(ctx, b, log, chatID, h.deps.Config.Messages.Welcome, menuKeyboard(h.deps.Config))
}

// menuKeyboard builds the persistent reply keyboard from the configured
// menu labels, two buttons per row.
func menuKeyboard(cfg *config.Config) models.ReplyMarkup {
	labels := []string{
		cfg.Menu.AddHabit,
		cfg.Menu.AddReminder,
		cfg.Menu.AddTask,
		cfg.Menu.ViewTasks,
		cfg.Menu.ViewHabits,
		cfg.Menu.ViewReminders,
		cfg.Menu.Commands,
	}

	var rows [][]models.KeyboardButton
	var row []models.KeyboardButton
	for _, label := range labels {
		row = append(row, models.KeyboardButton{Text: label})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return &models.ReplyKeyboardMarkup{
		Keyboard:       rows,
		ResizeKeyboard: true,
	}
}
