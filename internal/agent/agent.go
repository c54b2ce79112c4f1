// internal/agent/agent.go
package agent

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/queue-presence/internal/logging"
	"github.com/tamzrod/queue-presence/internal/poller"
	"github.com/tamzrod/queue-presence/internal/status"
	"github.com/tamzrod/queue-presence/internal/writer"
)

// Outcome is what one cycle ended up doing.
type Outcome int

const (
	// OutcomeSkipped: the roster query failed; nothing changed.
	OutcomeSkipped Outcome = iota
	// OutcomeUnchanged: the facts match the stored state.
	OutcomeUnchanged
	// OutcomePublished: state was committed and the sinks were attempted.
	OutcomePublished
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomePublished:
		return "published"
	}
	return "unknown"
}

// Agent owns one unit's state and turns poll results into published updates.
type Agent struct {
	unitID  string
	tracker *status.Tracker
	pub     writer.Publisher
	log     *logrus.Entry
}

// New creates an agent with empty state.
func New(unitID string, layout status.Layout, pub writer.Publisher, log *logrus.Entry) *Agent {
	if log == nil {
		log = logging.NewLogger("agent")
	}
	return &Agent{
		unitID:  unitID,
		tracker: status.NewTracker(layout),
		pub:     pub,
		log:     log.WithField("unit", unitID),
	}
}

// Tracker exposes the unit's state (tests, status reporting).
func (a *Agent) Tracker() *status.Tracker {
	return a.tracker
}

// Handle runs diff, render, commit and publish for one poll result.
// It matches poller.Handler.
func (a *Agent) Handle(ctx context.Context, res poller.PollResult) {
	a.HandleResult(ctx, res)
}

// HandleResult is Handle returning what happened.
func (a *Agent) HandleResult(ctx context.Context, res poller.PollResult) Outcome {
	if res.Err != nil {
		a.log.WithError(res.Err).Warn("queue unavailable, skipping cycle")
		return OutcomeSkipped
	}
	if res.MatchErr != nil {
		a.log.WithError(res.MatchErr).Warn("match query failed, assuming no active match")
	}

	cur := res.Observation
	prev, hadPrev := a.tracker.Previous()

	rendered, changed := a.tracker.Evaluate(cur)
	if !changed {
		a.log.WithField("observation", cur.String()).Debug("no changes")
		return OutcomeUnchanged
	}

	fields := logrus.Fields{
		"players": cur.PlayerCount,
		"tier":    cur.ActiveTier,
	}
	if hadPrev {
		fields["prev_players"] = prev.PlayerCount
		fields["prev_tier"] = prev.ActiveTier
	}
	a.log.WithFields(fields).Info("change detected")

	layout := a.tracker.Layout()
	rep := a.pub.Publish(ctx, writer.Update{
		Observation: cur,
		Rendered:    rendered,
		Message:     status.LogMessage(layout, cur, rendered),
	})

	entry := a.log.WithFields(logrus.Fields{
		"nickname": rendered.Nickname,
		"bar":      rendered.ProgressBar,
		"online":   rendered.ShouldBeOnline,
	})
	if err := rep.Err(); err != nil {
		entry.WithError(err).Warn("update published with failures")
	} else {
		entry.Info("update published")
	}

	return OutcomePublished
}
