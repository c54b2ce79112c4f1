// internal/writer/telegram/client.go
package telegram

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client mirrors log messages into one Telegram chat.
type Client struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// Config is minimal bot config.
type Config struct {
	Token  string
	ChatID int64
}

// New logs the bot in (one getMe call).
func New(cfg Config) (*Client, error) {
	if cfg.Token == "" || cfg.ChatID == 0 {
		return nil, errors.New("telegram client: token and chat id required")
	}
	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}
	return &Client{bot: bot, chatID: cfg.ChatID}, nil
}

// Send implements writer.MirrorClient.
func (c *Client) Send(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := c.bot.Send(tgbotapi.NewMessage(c.chatID, PlainText(message)))
	return err
}

// PlainText drops Discord bold markers; the message is sent without a parse mode.
func PlainText(message string) string {
	return strings.ReplaceAll(message, "**", "")
}
