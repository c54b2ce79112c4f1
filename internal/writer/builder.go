// internal/writer/builder.go
package writer

import (
	"context"
	"errors"
	"time"

	cfg "github.com/tamzrod/queue-presence/internal/config"
	"github.com/tamzrod/queue-presence/internal/writer/discord"
	"github.com/tamzrod/queue-presence/internal/writer/telegram"
)

// readyTimeout bounds how long a bot login may take at startup.
const readyTimeout = 30 * time.Second

// BuildPlan converts one unit config into a publish Plan.
// Assumes config has already passed validation.
func BuildPlan(u cfg.UnitConfig) (Plan, error) {
	if u.ID == "" {
		return Plan{}, errors.New("writer: unit.id required")
	}
	return Plan{
		UnitID:       u.ID,
		GuildID:      u.Discord.GuildID,
		LogChannelID: u.Discord.LogChannelID,
	}, nil
}

// BuildChatClient logs one unit's bot in and waits for the gateway to be ready.
func BuildChatClient(ctx context.Context, u cfg.UnitConfig) (*discord.Client, func() error, error) {
	c, err := discord.New(ctx, discord.Config{
		Token:        u.Discord.Token,
		ReadyTimeout: readyTimeout,
	})
	if err != nil {
		return nil, nil, err
	}
	return c, c.Close, nil
}

// BuildMirror creates the shared Telegram mirror, or returns a nil client when disabled.
func BuildMirror(t cfg.TelegramConfig) (MirrorClient, error) {
	if !t.Enabled() {
		return nil, nil
	}
	c, err := telegram.New(telegram.Config{Token: t.Token, ChatID: t.ChatID})
	if err != nil {
		return nil, err
	}
	return c, nil
}
