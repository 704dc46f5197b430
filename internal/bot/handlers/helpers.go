// Package handlers contains Telegram bot command and message handlers,
// along with their registration logic and the conversational prompt flow.
package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// sendText sends a plain text message and logs delivery failures. Outbound
// sends are fire-and-forget from the handlers' perspective.
func sendText(ctx context.Context, b *bot.Bot, log *slog.Logger, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send message", "error", err, "chat_id", chatID)
	}
}

// sendTextWithKeyboard sends a text message with a reply markup attached.
func sendTextWithKeyboard(ctx context.Context, b *bot.Bot, log *slog.Logger, chatID int64, text string, markup models.ReplyMarkup) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text, ReplyMarkup: markup})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send message", "error", err, "chat_id", chatID)
	}
}

// messageChat extracts the chat and user IDs from an update, reporting
// whether the update carries a usable text message.
func messageChat(update *models.Update) (chatID, userID int64, ok bool) {
	if update == nil || update.Message == nil || update.Message.From == nil {
		return 0, 0, false
	}
	return update.Message.Chat.ID, update.Message.From.ID, true
}

// formatNumberedList renders items as "1. a\n2. b", the shape users answer
// with a habit number.
func formatNumberedList(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d. %s", i+1, item)
	}
	return sb.String()
}

// formatLines joins a header and items, one item per line.
func formatLines(header string, items []string) string {
	return header + "\n" + strings.Join(items, "\n")
}
