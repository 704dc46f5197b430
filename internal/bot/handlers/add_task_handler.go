package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// addTaskHandler implements the two-step "Add task" flow: prompt for a task,
// then append the user's next message to their daily task list.
type addTaskHandler struct {
	deps HandlerDeps
}

func (h addTaskHandler) Prompt(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "add_task")

	chatID, _, ok := messageChat(update)
	if !ok {
		return
	}

	h.deps.Prompts.Await(chatID, PromptTask)
	sendText(ctx, b, log, chatID, h.deps.Config.Messages.PromptTask)
}

func (h addTaskHandler) Save(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "add_task")

	chatID, userID, ok := messageChat(update)
	if !ok {
		return
	}

	task := strings.TrimSpace(update.Message.Text)
	if task == "" {
		h.deps.Prompts.Await(chatID, PromptTask)
		sendText(ctx, b, log, chatID, h.deps.Config.Messages.PromptTask)
		return
	}

	if err := h.deps.Store.AddDailyTask(userID, task); err != nil {
		log.ErrorContext(ctx, "Failed to persist daily task", "user_id", userID, "error", err)
		sendText(ctx, b, log, chatID, h.deps.Config.Messages.SaveFailed)
		return
	}

	log.InfoContext(ctx, "Daily task added", "user_id", userID)
	sendText(ctx, b, log, chatID, fmt.Sprintf(h.deps.Config.Messages.TaskAdded, task))
}
