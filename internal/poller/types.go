// internal/poller/types.go
package poller

import (
	"context"
	"time"

	"github.com/tamzrod/queue-presence/internal/status"
)

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	UnitID string
	At     time.Time

	Observation status.Observation

	// MatchErr is a degraded failure: the tier fell back to 0 and the cycle went on.
	MatchErr error

	Err error // non-nil means the roster query failed and the cycle must be dropped
}

// Handler consumes one poll result. Called from the runner, never concurrently.
type Handler func(ctx context.Context, res PollResult)
