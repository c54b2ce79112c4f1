// internal/poller/builder.go
package poller

import (
	"time"

	"github.com/sirupsen/logrus"

	cfg "github.com/tamzrod/queue-presence/internal/config"
	"github.com/tamzrod/queue-presence/internal/poller/neatqueue"
	"github.com/tamzrod/queue-presence/internal/status"
)

// Build constructs a Poller for one unit and wires its NeatQueue client.
// No request is made here; the first call happens on the first tick.
func Build(u cfg.UnitConfig, nq cfg.NeatQueueConfig, log *logrus.Entry) (*Poller, error) {
	timeout := time.Duration(nq.TimeoutMs) * time.Millisecond

	client, err := neatqueue.New(neatqueue.Config{
		BaseURL: nq.BaseURL,
		APIKey:  nq.APIKey,
		Timeout: timeout,
	})
	if err != nil {
		return nil, err
	}

	return New(
		Config{
			UnitID:   u.ID,
			QueueID:  u.QueueID,
			MatchID:  u.MatchID,
			Mode:     status.TierMode(u.TierMode),
			Interval: time.Duration(u.Poll.IntervalMs) * time.Millisecond,
			Timeout:  timeout,
			Log:      log,
		},
		client,
	)
}
