// internal/writer/writer.go
package writer

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/queue-presence/internal/logging"
)

type publisherImpl struct {
	plan   Plan
	chat   ChatClient
	mirror MirrorClient
	log    *logrus.Entry
}

// New builds a publisher. mirror may be nil.
func New(plan Plan, chat ChatClient, mirror MirrorClient, log *logrus.Entry) Publisher {
	if log == nil {
		log = logging.NewLogger("writer")
	}
	return &publisherImpl{
		plan:   plan,
		chat:   chat,
		mirror: mirror,
		log:    log.WithField("unit", plan.UnitID),
	}
}

// Publish fans out to every sink in order. No sink failure stops the others.
func (w *publisherImpl) Publish(ctx context.Context, u Update) Report {
	var rep Report

	// ------------------------------------------------------------
	// PRESENCE (status + custom activity)
	// ------------------------------------------------------------

	rep.Results = append(rep.Results, w.run(SinkPresence, func() error {
		return w.chat.SetPresence(ctx, u.Rendered.ShouldBeOnline, u.Rendered.ProgressBar)
	}))

	// ------------------------------------------------------------
	// NICKNAME
	// ------------------------------------------------------------

	rep.Results = append(rep.Results, w.run(SinkNickname, func() error {
		return w.chat.SetNickname(ctx, w.plan.GuildID, u.Rendered.Nickname)
	}))

	// ------------------------------------------------------------
	// LOG CHANNEL
	// ------------------------------------------------------------

	rep.Results = append(rep.Results, w.run(SinkLog, func() error {
		return w.chat.SendLog(ctx, w.plan.LogChannelID, u.Message)
	}))

	// ------------------------------------------------------------
	// MIRROR (optional)
	// ------------------------------------------------------------

	if w.mirror != nil {
		rep.Results = append(rep.Results, w.run(SinkMirror, func() error {
			return w.mirror.Send(ctx, fmt.Sprintf("[%s]\n%s", w.plan.UnitID, u.Message))
		}))
	}

	return rep
}

// run calls one sink, turning a panic into an error.
func (w *publisherImpl) run(sink string, fn func() error) (res SinkResult) {
	res.Sink = sink
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("panic: %v", r)
		}
		if res.Err != nil {
			w.log.WithField("sink", sink).WithError(res.Err).Warn("publish failed")
			return
		}
		w.log.WithField("sink", sink).Debug("published")
	}()

	if w.chat == nil && sink != SinkMirror {
		return SinkResult{Sink: sink, Err: fmt.Errorf("no chat client")}
	}

	res.Err = fn()
	return res
}
