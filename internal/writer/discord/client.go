// internal/writer/discord/client.go
package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Client implements writer.ChatClient over one Discord bot session.
// This adapter is delivery-only: it never decides what to show.
type Client struct {
	s *discordgo.Session
}

// Config is minimal session config.
type Config struct {
	Token        string
	ReadyTimeout time.Duration
}

// customStatusName is required by the gateway; the visible text is State.
const customStatusName = "Custom Status"

// New opens a gateway session and waits for the Ready event.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, errors.New("discord client: token required")
	}

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, err
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	ready := make(chan *discordgo.Ready, 1)
	s.AddHandlerOnce(func(_ *discordgo.Session, r *discordgo.Ready) {
		ready <- r
	})

	if err := s.Open(); err != nil {
		return nil, fmt.Errorf("discord client: open: %w", err)
	}

	timeout := cfg.ReadyTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	select {
	case <-ready:
		return &Client{s: s}, nil
	case <-ctx.Done():
		_ = s.Close()
		return nil, ctx.Err()
	case <-time.After(timeout):
		_ = s.Close()
		return nil, errors.New("discord client: timed out waiting for ready")
	}
}

// Close closes the gateway session.
func (c *Client) Close() error {
	if c == nil || c.s == nil {
		return nil
	}
	return c.s.Close()
}

// Tag returns the bot's user name as reported at login.
func (c *Client) Tag() string {
	if c == nil || c.s == nil || c.s.State == nil || c.s.State.User == nil {
		return ""
	}
	return c.s.State.User.String()
}

// ---- writer.ChatClient interface ----

// SetPresence sets online/invisible and a custom status with the given text.
func (c *Client) SetPresence(ctx context.Context, online bool, activity string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	st := discordgo.StatusInvisible
	if online {
		st = discordgo.StatusOnline
	}

	return c.s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: string(st),
		Activities: []*discordgo.Activity{{
			Name:  customStatusName,
			Type:  discordgo.ActivityTypeCustom,
			State: activity,
		}},
	})
}

// SetNickname changes the bot's own nickname in one guild.
func (c *Client) SetNickname(ctx context.Context, guildID, nickname string) error {
	return c.s.GuildMemberNickname(guildID, "@me", nickname, discordgo.WithContext(ctx))
}

// SendLog posts a message to a text channel.
func (c *Client) SendLog(ctx context.Context, channelID, message string) error {
	ch, err := c.s.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("fetch channel %s: %w", channelID, err)
	}
	if !isTextBased(ch.Type) {
		return fmt.Errorf("channel %s is not text based (type %d)", channelID, ch.Type)
	}

	_, err = c.s.ChannelMessageSend(channelID, message, discordgo.WithContext(ctx))
	return err
}

func isTextBased(t discordgo.ChannelType) bool {
	switch t {
	case discordgo.ChannelTypeGuildText,
		discordgo.ChannelTypeGuildNews,
		discordgo.ChannelTypeGuildVoice,
		discordgo.ChannelTypeGuildStageVoice,
		discordgo.ChannelTypeGuildNewsThread,
		discordgo.ChannelTypeGuildPublicThread,
		discordgo.ChannelTypeGuildPrivateThread,
		discordgo.ChannelTypeDM,
		discordgo.ChannelTypeGroupDM:
		return true
	}
	return false
}
