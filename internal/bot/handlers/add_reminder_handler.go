package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/habitbot/internal/store"
)

// errBadReminderFormat indicates the answer was not "HH:MM <habit number>".
var errBadReminderFormat = errors.New("expected 'HH:MM <habit number>'")

// parseReminderInput splits a reminder answer into its time-of-day string
// and 1-based habit number. The time itself is validated by the store.
func parseReminderInput(text string) (timeOfDay string, habitNumber int, err error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return "", 0, errBadReminderFormat
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, errBadReminderFormat
	}
	return fields[0], n, nil
}

// addReminderHandler implements the two-step "Add reminder" flow: show the
// numbered habit list and prompt for "HH:MM <habit number>", then validate
// and append the reminder. Invalid answers re-prompt with a specific error
// and keep awaiting; state is never mutated on rejected input.
type addReminderHandler struct {
	deps HandlerDeps
}

func (h addReminderHandler) Prompt(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "add_reminder")

	chatID, userID, ok := messageChat(update)
	if !ok {
		return
	}

	habits := h.deps.Store.Habits(userID)
	if len(habits) == 0 {
		sendText(ctx, b, log, chatID, h.deps.Config.Messages.NoHabitsYet)
		return
	}

	h.deps.Prompts.Await(chatID, PromptReminder)
	sendText(ctx, b, log, chatID, fmt.Sprintf(h.deps.Config.Messages.PromptReminder, formatNumberedList(habits)))
}

func (h addReminderHandler) Save(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "add_reminder")

	chatID, userID, ok := messageChat(update)
	if !ok {
		return
	}

	timeOfDay, habitNumber, err := parseReminderInput(update.Message.Text)
	if err != nil {
		h.deps.Prompts.Await(chatID, PromptReminder)
		sendText(ctx, b, log, chatID, h.deps.Config.Messages.ReminderBadFormat)
		return
	}

	habit, err := h.deps.Store.AddReminder(userID, timeOfDay, habitNumber)
	switch {
	case errors.Is(err, store.ErrInvalidTime):
		h.deps.Prompts.Await(chatID, PromptReminder)
		sendText(ctx, b, log, chatID, h.deps.Config.Messages.ReminderBadTime)
		return
	case errors.Is(err, store.ErrNoHabits):
		sendText(ctx, b, log, chatID, h.deps.Config.Messages.NoHabitsYet)
		return
	case errors.Is(err, store.ErrHabitIndex):
		h.deps.Prompts.Await(chatID, PromptReminder)
		sendText(ctx, b, log, chatID, h.deps.Config.Messages.ReminderBadHabitIndex)
		return
	case err != nil:
		// Reminder is in memory; only durability is at risk.
		log.ErrorContext(ctx, "Failed to persist reminder", "user_id", userID, "error", err)
		sendText(ctx, b, log, chatID, h.deps.Config.Messages.SaveFailed)
		return
	}

	log.InfoContext(ctx, "Reminder added", "user_id", userID, "time", timeOfDay)
	sendText(ctx, b, log, chatID, fmt.Sprintf(h.deps.Config.Messages.ReminderSet, habit, timeOfDay))
}
