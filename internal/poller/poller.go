// internal/poller/poller.go
package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/queue-presence/internal/logging"
	"github.com/tamzrod/queue-presence/internal/status"
)

// Client abstracts the two read-only NeatQueue queries the poller needs.
// Bodies are returned raw; the poller owns interpretation.
type Client interface {
	QueuePlayers(ctx context.Context, queueID string) ([]byte, error)
	Match(ctx context.Context, matchID string) ([]byte, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	UnitID   string
	QueueID  string
	MatchID  string
	Mode     status.TierMode
	Interval time.Duration

	// Timeout bounds each outbound call. Zero means no extra bound.
	Timeout time.Duration

	Log *logrus.Entry
}

// Poller is a clock-driven observer of one queue.
type Poller struct {
	cfg    Config
	client Client
	log    *logrus.Entry

	inflight atomic.Bool
	skipped  atomic.Int64
}

// New creates a poller with immutable config.
func New(cfg Config, client Client) (*Poller, error) {
	if cfg.UnitID == "" {
		return nil, errors.New("poller: unit id required")
	}
	if cfg.QueueID == "" {
		return nil, errors.New("poller: queue id required")
	}
	if cfg.MatchID == "" {
		return nil, errors.New("poller: match id required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if client == nil {
		return nil, errors.New("poller: client required")
	}

	log := cfg.Log
	if log == nil {
		log = logging.NewLogger("poller")
	}

	return &Poller{
		cfg:    cfg,
		client: client,
		log:    log.WithField("unit", cfg.UnitID),
	}, nil
}

// PollOnce performs exactly one observation.
// A roster failure aborts the cycle; a match failure degrades to tier 0.
func (p *Poller) PollOnce(ctx context.Context) PollResult {
	res := PollResult{
		UnitID: p.cfg.UnitID,
		At:     time.Now(),
	}

	count, err := p.playerCount(ctx)
	if err != nil {
		res.Err = err
		return res
	}

	tier, err := p.activeTier(ctx)
	if err != nil {
		res.MatchErr = err
		tier = 0
	}

	res.Observation = status.Observation{
		PlayerCount: count,
		ActiveTier:  tier,
	}
	return res
}

func (p *Poller) playerCount(ctx context.Context) (int, error) {
	ctx, cancel := p.callContext(ctx)
	defer cancel()

	body, err := p.client.QueuePlayers(ctx, p.cfg.QueueID)
	if err != nil {
		return 0, err
	}
	return ParsePlayerCount(body)
}

func (p *Poller) activeTier(ctx context.Context) (int, error) {
	ctx, cancel := p.callContext(ctx)
	defer cancel()

	body, err := p.client.Match(ctx, p.cfg.MatchID)
	if err != nil {
		return 0, err
	}
	return CountActive(body, p.cfg.QueueID, p.cfg.Mode)
}

func (p *Poller) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.cfg.Timeout)
}
