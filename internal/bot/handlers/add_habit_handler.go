package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// addHabitHandler implements the two-step "Add habit" flow: prompt for a
// habit name, then append the user's next message to their habit list.
type addHabitHandler struct {
	deps HandlerDeps
}

// Prompt asks the user for a habit name and awaits the answer.
func (h addHabitHandler) Prompt(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "add_habit")

	chatID, _, ok := messageChat(update)
	if !ok {
		return
	}

	h.deps.Prompts.Await(chatID, PromptHabit)
	sendText(ctx, b, log, chatID, h.deps.Config.Messages.PromptHabit)
}

// Save appends the answered habit name and persists state.
func (h addHabitHandler) Save(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "add_habit")

	chatID, userID, ok := messageChat(update)
	if !ok {
		return
	}

	habit := strings.TrimSpace(update.Message.Text)
	if habit == "" {
		h.deps.Prompts.Await(chatID, PromptHabit)
		sendText(ctx, b, log, chatID, h.deps.Config.Messages.PromptHabit)
		return
	}

	if err := h.deps.Store.AddHabit(userID, habit); err != nil {
		// The habit is in memory; only durability is at risk.
		log.ErrorContext(ctx, "Failed to persist habit", "user_id", userID, "error", err)
		sendText(ctx, b, log, chatID, h.deps.Config.Messages.SaveFailed)
		return
	}

	log.InfoContext(ctx, "Habit added", "user_id", userID)
	sendText(ctx, b, log, chatID, fmt.Sprintf(h.deps.Config.Messages.HabitAdded, habit))
}
