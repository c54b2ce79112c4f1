// internal/writer/discord/client_test.go
package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestIsTextBased(t *testing.T) {
	assert.True(t, isTextBased(discordgo.ChannelTypeGuildText))
	assert.True(t, isTextBased(discordgo.ChannelTypeGuildNews))
	assert.True(t, isTextBased(discordgo.ChannelTypeGuildPublicThread))
	assert.False(t, isTextBased(discordgo.ChannelTypeGuildCategory))
	assert.True(t, isTextBased(discordgo.ChannelTypeGuildStageVoice))
}

func TestNew_RequiresToken(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.Error(t, err)
}

func TestNilClientIsSafe(t *testing.T) {
	var c *Client
	assert.NoError(t, c.Close())
	assert.Empty(t, c.Tag())
}
