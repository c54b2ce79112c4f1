// internal/config/validate_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to build a unit quickly
func unit(id string, capacity int, mode, style string) UnitConfig {
	return UnitConfig{
		ID:            id,
		QueueID:       "q-" + id,
		MatchID:       "m-" + id,
		Capacity:      capacity,
		TierMode:      mode,
		NicknameStyle: style,
		Poll:          PollConfig{IntervalMs: 1000},
		Discord: DiscordConfig{
			Token:        "token-" + id,
			GuildID:      "guild",
			LogChannelID: "channel",
		},
	}
}

func validConfig(units ...UnitConfig) *Config {
	cfg := &Config{
		NeatQueue: NeatQueueConfig{APIKey: "key"},
		Units:     units,
	}
	Normalize(cfg)
	return cfg
}

// ---- tests ----

func TestValidate_AllVariants(t *testing.T) {
	cfg := validConfig(
		unit("br", 8, "binary", "dash"),
		unit("eu", 8, "count", "dash"),
		unit("tdm", 16, "count", "count"),
	)

	require.NoError(t, Validate(cfg))
}

func TestValidate_CapacityNotMultipleOfEight(t *testing.T) {
	for _, c := range []int{-8, 6, 12, 20} {
		cfg := validConfig(unit("u1", c, "count", "count"))
		assert.Error(t, Validate(cfg), "capacity=%d", c)
	}
}

func TestValidate_DuplicateUnitID(t *testing.T) {
	cfg := validConfig(
		unit("u1", 8, "count", "count"),
		unit("u1", 16, "count", "count"),
	)

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestValidate_UnknownModes(t *testing.T) {
	assert.Error(t, Validate(validConfig(unit("u1", 8, "bool", "count"))))
	assert.Error(t, Validate(validConfig(unit("u1", 8, "count", "fancy"))))
}

func TestValidate_MissingSecrets(t *testing.T) {
	cfg := validConfig(unit("u1", 8, "count", "count"))
	cfg.NeatQueue.APIKey = ""
	assert.Error(t, Validate(cfg))

	cfg = validConfig(unit("u1", 8, "count", "count"))
	cfg.Units[0].Discord.Token = ""
	assert.Error(t, Validate(cfg))
}

func TestValidate_TelegramNeedsChat(t *testing.T) {
	cfg := validConfig(unit("u1", 8, "count", "count"))
	cfg.Telegram.Token = "tg"
	assert.Error(t, Validate(cfg))

	cfg.Telegram.ChatID = 42
	assert.NoError(t, Validate(cfg))
	assert.True(t, cfg.Telegram.Enabled())
}

func TestValidate_NoUnits(t *testing.T) {
	assert.Error(t, Validate(validConfig()))
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := &Config{
		NeatQueue: NeatQueueConfig{BaseURL: "http://example.test/"},
		Units:     []UnitConfig{{ID: "u1", TierMode: " Binary "}},
	}
	Normalize(cfg)

	assert.Equal(t, "http://example.test", cfg.NeatQueue.BaseURL)
	assert.Equal(t, DefaultTimeoutMs, cfg.NeatQueue.TimeoutMs)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)

	u := cfg.Units[0]
	assert.Equal(t, DefaultCapacity, u.Capacity)
	assert.Equal(t, "binary", u.TierMode)
	assert.Equal(t, DefaultNicknameMode, u.NicknameStyle)
	assert.Equal(t, DefaultIntervalMs, u.Poll.IntervalMs)
}
