package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewMenuRouter returns the default text handler: a flat dispatch table from
// menu label to handler, plus routing of answers to pending prompts. A menu
// label always wins over a pending prompt (choosing a new action cancels the
// open question); text matching neither a label nor a prompt gets the fixed
// fallback response.
func NewMenuRouter(deps HandlerDeps) bot.HandlerFunc {
	log := deps.Logger.With("handler", "menu_router")

	addHabit := addHabitHandler{deps}
	addReminder := addReminderHandler{deps}
	addTask := addTaskHandler{deps}

	labels := map[string]bot.HandlerFunc{
		deps.Config.Menu.AddHabit:      addHabit.Prompt,
		deps.Config.Menu.AddReminder:   addReminder.Prompt,
		deps.Config.Menu.AddTask:       addTask.Prompt,
		deps.Config.Menu.ViewTasks:     viewTasksHandler{deps}.Handle,
		deps.Config.Menu.ViewHabits:    viewHabitsHandler{deps}.Handle,
		deps.Config.Menu.ViewReminders: viewRemindersHandler{deps}.Handle,
		deps.Config.Menu.Commands:      helpHandler{deps}.Handle,
	}

	answers := map[PromptKind]bot.HandlerFunc{
		PromptHabit:    addHabit.Save,
		PromptReminder: addReminder.Save,
		PromptTask:     addTask.Save,
	}

	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID, userID, ok := messageChat(update)
		if !ok {
			return
		}

		text := strings.TrimSpace(update.Message.Text)
		if text == "" {
			return
		}

		deps.Store.LoadOne(userID)

		if handler, found := labels[text]; found {
			deps.Prompts.Clear(chatID)
			handler(ctx, b, update)
			return
		}

		if kind, pending := deps.Prompts.Take(chatID); pending {
			if handler, found := answers[kind]; found {
				handler(ctx, b, update)
				return
			}
		}

		log.DebugContext(ctx, "Unknown command", "chat_id", chatID, "text", text)
		sendText(ctx, b, log, chatID, deps.Config.Messages.Unknown)
	}
}
