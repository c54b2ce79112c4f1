// internal/config/validate.go
package config

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil")
	}

	// ------------------------------------------------------------
	// GLOBAL
	// ------------------------------------------------------------

	if _, err := logrus.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging: unknown format %q (want text or json)", cfg.Logging.Format)
	}

	if cfg.NeatQueue.APIKey == "" {
		return errors.New("neatqueue: api key is empty (set api_key or the api_key_env variable)")
	}

	if cfg.Telegram.Token != "" && cfg.Telegram.ChatID == 0 {
		return errors.New("telegram: token is set but chat_id is missing")
	}

	if len(cfg.Units) == 0 {
		return errors.New("at least one unit is required")
	}

	// ------------------------------------------------------------
	// UNITS
	// ------------------------------------------------------------

	seen := make(map[string]struct{})

	for _, u := range cfg.Units {
		if u.ID == "" {
			return errors.New("unit: id is required")
		}
		if _, dup := seen[u.ID]; dup {
			return fmt.Errorf("unit %q: duplicate id", u.ID)
		}
		seen[u.ID] = struct{}{}

		if u.QueueID == "" {
			return fmt.Errorf("unit %q: queue_id is required", u.ID)
		}
		if u.MatchID == "" {
			return fmt.Errorf("unit %q: match_id is required", u.ID)
		}

		// the progress bar has 8 slots, each slot is capacity/8 players
		if u.Capacity <= 0 || u.Capacity%8 != 0 {
			return fmt.Errorf("unit %q: capacity %d must be a positive multiple of 8", u.ID, u.Capacity)
		}

		switch u.TierMode {
		case "binary", "count":
		default:
			return fmt.Errorf("unit %q: unknown tier_mode %q (want binary or count)", u.ID, u.TierMode)
		}
		switch u.NicknameStyle {
		case "dash", "count":
		default:
			return fmt.Errorf("unit %q: unknown nickname_style %q (want dash or count)", u.ID, u.NicknameStyle)
		}

		if u.Poll.IntervalMs <= 0 {
			return fmt.Errorf("unit %q: poll.interval_ms must be > 0", u.ID)
		}

		if u.Discord.Token == "" {
			return fmt.Errorf("unit %q: discord token is empty (set token or token_env)", u.ID)
		}
		if u.Discord.GuildID == "" {
			return fmt.Errorf("unit %q: discord.guild_id is required", u.ID)
		}
		if u.Discord.LogChannelID == "" {
			return fmt.Errorf("unit %q: discord.log_channel_id is required", u.ID)
		}
	}

	return nil
}
