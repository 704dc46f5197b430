package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
)

// Notifier delivers reminder notifications to users over Telegram. Delivery
// is fire-and-forget: failures are logged and never surfaced to the
// schedulers, which have no retry or catch-up semantics anyway.
type Notifier struct {
	bot    *bot.Bot
	logger *slog.Logger
}

// NewNotifier creates a Notifier backed by an existing bot instance.
func NewNotifier(b *bot.Bot, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		bot:    b,
		logger: logger.With("component", "notifier"),
	}
}

// Deliver sends text to the user's private chat. For direct chats the chat
// ID equals the user ID.
func (n *Notifier) Deliver(ctx context.Context, userID int64, text string) {
	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{ChatID: userID, Text: text})
	if err != nil {
		n.logger.ErrorContext(ctx, "Failed to deliver notification", "user_id", userID, "error", err)
		return
	}
	n.logger.DebugContext(ctx, "Notification delivered", "user_id", userID)
}
