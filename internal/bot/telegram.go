package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram rejects text messages longer than this.
const maxMessageLength = 4096

var ErrNoChat = errors.New("chat ID not set")

type TelegramBot struct {
	bot     *tgbotapi.BotAPI
	handler *Handler
	chatID  int64
}

func NewTelegramBot(token string, chatID int64, pool Pool) (*TelegramBot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &TelegramBot{
		bot:     bot,
		handler: NewHandler(pool),
		chatID:  chatID,
	}, nil
}

// Start long-polls for commands until ctx is done.
func (t *TelegramBot) Start(ctx context.Context) error {
	slog.Info("Authorized on account", "username", t.bot.Self.UserName, "pool_chat_id", t.chatID)
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	defer t.bot.StopReceivingUpdates()

	for {
		select {
		case update := <-updates:
			t.handleUpdate(ctx, update)
		case <-ctx.Done():
			return nil
		}
	}
}

func (t *TelegramBot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	command := update.Message.Command()
	chatID := update.Message.Chat.ID
	slog.Debug("Pool command received", "command", command, "chat_id", chatID)

	reply := t.handler.HandleCommand(ctx, update)
	if _, err := t.bot.Send(reply); err != nil {
		slog.Error("Error answering pool command", "command", command, "chat_id", chatID, "error", err)
	}
}

// SendMessage posts a Markdown report to the pool chat, splitting it on
// line breaks when it exceeds Telegram's length limit.
func (t *TelegramBot) SendMessage(text string) error {
	if t.chatID == 0 {
		slog.Error("Chat ID not set")
		return ErrNoChat
	}

	for i, part := range splitMessage(text, maxMessageLength) {
		msg := tgbotapi.NewMessage(t.chatID, part)
		msg.ParseMode = "Markdown"
		if _, err := t.bot.Send(msg); err != nil {
			slog.Error("Error sending pool report", "chat_id", t.chatID, "part", i+1, "error", err)
			return err
		}
	}
	return nil
}

// splitMessage cuts text into chunks of at most limit bytes, preferring to
// break after a newline. A single line longer than limit is cut at the
// last rune boundary that fits.
func splitMessage(text string, limit int) []string {
	var parts []string
	for len(text) > limit {
		cut := strings.LastIndex(text[:limit], "\n") + 1
		if cut == 0 {
			cut = limit
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			if cut == 0 {
				cut = limit
			}
		}
		parts = append(parts, text[:cut])
		text = text[cut:]
	}
	if text != "" || len(parts) == 0 {
		parts = append(parts, text)
	}
	return parts
}
