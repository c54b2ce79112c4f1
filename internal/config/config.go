// internal/config/config.go
package config

type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	NeatQueue NeatQueueConfig `yaml:"neatqueue"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Units     []UnitConfig    `yaml:"units"`
}

// ---- LOGGING ----

type LoggingConfig struct {
	Level        string `yaml:"level"`  // debug | info | warn | error
	Format       string `yaml:"format"` // text | json
	ReportCaller bool   `yaml:"report_caller"`
}

// ---- UPSTREAM ----

type NeatQueueConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	APIKeyEnv string `yaml:"api_key_env"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- MIRROR (optional) ----

type TelegramConfig struct {
	Token    string `yaml:"token"`
	TokenEnv string `yaml:"token_env"`
	ChatID   int64  `yaml:"chat_id"`
}

// Enabled reports whether the Telegram mirror should be built.
func (t TelegramConfig) Enabled() bool {
	return t.Token != "" && t.ChatID != 0
}

// ---- UNIT ----

// UnitConfig is one bot bound to one queue.
type UnitConfig struct {
	ID            string        `yaml:"id"`
	QueueID       string        `yaml:"queue_id"`
	MatchID       string        `yaml:"match_id"`
	Capacity      int           `yaml:"capacity"`
	TierMode      string        `yaml:"tier_mode"`      // binary | count
	NicknameStyle string        `yaml:"nickname_style"` // dash | count
	Poll          PollConfig    `yaml:"poll"`
	Discord       DiscordConfig `yaml:"discord"`
}

type DiscordConfig struct {
	Token        string `yaml:"token"`
	TokenEnv     string `yaml:"token_env"`
	GuildID      string `yaml:"guild_id"`
	LogChannelID string `yaml:"log_channel_id"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}
