// internal/config/normalize.go
package config

import "strings"

const (
	DefaultBaseURL      = "https://api.neatqueue.com"
	DefaultAPIKeyEnv    = "NEATQUEUE_API_KEY"
	DefaultTimeoutMs    = 5000
	DefaultIntervalMs   = 10000
	DefaultCapacity     = 8
	DefaultTierMode     = "count"
	DefaultNicknameMode = "count"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// Normalize fills defaults.
// It is allowed to mutate configuration.
// It MUST be called before Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}

	cfg.NeatQueue.BaseURL = strings.TrimRight(cfg.NeatQueue.BaseURL, "/")
	if cfg.NeatQueue.BaseURL == "" {
		cfg.NeatQueue.BaseURL = DefaultBaseURL
	}
	if cfg.NeatQueue.TimeoutMs <= 0 {
		cfg.NeatQueue.TimeoutMs = DefaultTimeoutMs
	}

	for ui := range cfg.Units {
		u := &cfg.Units[ui]

		u.TierMode = strings.ToLower(strings.TrimSpace(u.TierMode))
		u.NicknameStyle = strings.ToLower(strings.TrimSpace(u.NicknameStyle))

		if u.Capacity == 0 {
			u.Capacity = DefaultCapacity
		}
		if u.TierMode == "" {
			u.TierMode = DefaultTierMode
		}
		if u.NicknameStyle == "" {
			u.NicknameStyle = DefaultNicknameMode
		}
		if u.Poll.IntervalMs <= 0 {
			u.Poll.IntervalMs = DefaultIntervalMs
		}
	}
}
