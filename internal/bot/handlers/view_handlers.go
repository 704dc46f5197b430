package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// viewHabitsHandler renders the user's habit list, or an explicit
// "no habits" response rather than an empty rendering.
type viewHabitsHandler struct {
	deps HandlerDeps
}

func (h viewHabitsHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "view_habits")

	chatID, userID, ok := messageChat(update)
	if !ok {
		return
	}

	habits := h.deps.Store.Habits(userID)
	if len(habits) == 0 {
		sendText(ctx, b, log, chatID, h.deps.Config.Messages.NoHabits)
		return
	}
	sendText(ctx, b, log, chatID, formatLines(h.deps.Config.Messages.HabitsHeader, habits))
}

// viewTasksHandler renders today's task list, or an explicit "no tasks"
// response.
type viewTasksHandler struct {
	deps HandlerDeps
}

func (h viewTasksHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "view_tasks")

	chatID, userID, ok := messageChat(update)
	if !ok {
		return
	}

	tasks := h.deps.Store.DailyTasks(userID)
	if len(tasks) == 0 {
		sendText(ctx, b, log, chatID, h.deps.Config.Messages.NoTasks)
		return
	}
	sendText(ctx, b, log, chatID, formatLines(h.deps.Config.Messages.TasksHeader, tasks))
}

// viewRemindersHandler renders the user's reminders as "HH:MM - habit"
// lines, or an explicit "no reminders" response.
type viewRemindersHandler struct {
	deps HandlerDeps
}

func (h viewRemindersHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "view_reminders")

	chatID, userID, ok := messageChat(update)
	if !ok {
		return
	}

	reminders := h.deps.Store.Reminders(userID)
	if len(reminders) == 0 {
		sendText(ctx, b, log, chatID, h.deps.Config.Messages.NoReminders)
		return
	}

	lines := make([]string, len(reminders))
	for i, r := range reminders {
		lines[i] = fmt.Sprintf("%s - %s", r.Time, r.Habit)
	}
	sendText(ctx, b, log, chatID, formatLines(h.deps.Config.Messages.RemindersHeader, lines))
}
