// internal/config/load_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
logging:
  level: debug
neatqueue:
  api_key: literal-key
telegram:
  token_env: TG_TOKEN
  chat_id: 99
units:
  - id: tdm
    queue_id: "1461474834725732385"
    match_id: "1381807913563324466"
    capacity: 16
    tier_mode: count
    nickname_style: count
    poll:
      interval_ms: 10000
    discord:
      token_env: DISCORD_TOKEN_BOT6
      guild_id: "1381807913563324466"
      log_channel_id: "1437635073179517019"
`

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParse_EnvOverridesSecrets(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML), envOf(map[string]string{
		"NEATQUEUE_API_KEY":  "env-key",
		"DISCORD_TOKEN_BOT6": "bot6",
		"TG_TOKEN":           "tg",
	}))
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.NeatQueue.APIKey)
	assert.Equal(t, "tg", cfg.Telegram.Token)
	require.Len(t, cfg.Units, 1)
	assert.Equal(t, "bot6", cfg.Units[0].Discord.Token)
	assert.Equal(t, "1461474834725732385", cfg.Units[0].QueueID)
	assert.Equal(t, 16, cfg.Units[0].Capacity)
}

func TestParse_LiteralWhenEnvUnset(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML), envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, "literal-key", cfg.NeatQueue.APIKey)
	assert.Empty(t, cfg.Units[0].Discord.Token)
	assert.False(t, cfg.Telegram.Enabled())
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("units: [\n"), envOf(nil))
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	t.Setenv("DISCORD_TOKEN_BOT6", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	Normalize(cfg)
	require.NoError(t, Validate(cfg))
	assert.Equal(t, "from-env", cfg.Units[0].Discord.Token)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
