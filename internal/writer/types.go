// internal/writer/types.go
package writer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/queue-presence/internal/status"
)

// Sink names, used in results and logs.
const (
	SinkPresence = "presence"
	SinkNickname = "nickname"
	SinkLog      = "log"
	SinkMirror   = "telegram"
)

// ChatClient is the chat-platform contract the publisher uses.
// Each call is independently failable.
type ChatClient interface {
	SetPresence(ctx context.Context, online bool, activity string) error
	SetNickname(ctx context.Context, guildID, nickname string) error
	SendLog(ctx context.Context, channelID, message string) error
}

// MirrorClient receives a copy of every log message (optional).
type MirrorClient interface {
	Send(ctx context.Context, message string) error
}

// Plan is the fully-built publish plan for one unit.
type Plan struct {
	UnitID       string
	GuildID      string
	LogChannelID string
}

// Update is one emitted change, already rendered.
type Update struct {
	Observation status.Observation
	Rendered    status.Rendered
	Message     string
}

// SinkResult is the outcome of one sink call.
type SinkResult struct {
	Sink string
	Err  error
}

// Report aggregates every sink attempted for one update.
type Report struct {
	Results []SinkResult
}

// Failed returns the results that carry an error.
func (r Report) Failed() []SinkResult {
	var out []SinkResult
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Err joins every sink failure, or returns nil.
func (r Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	errs := make([]string, 0, len(failed))
	for _, f := range failed {
		errs = append(errs, fmt.Sprintf("%s: %v", f.Sink, f.Err))
	}
	return errors.New(strings.Join(errs, " | "))
}

// Publisher applies rendered state to every sink.
type Publisher interface {
	Publish(ctx context.Context, u Update) Report
}
