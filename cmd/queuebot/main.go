// cmd/queuebot/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/tamzrod/queue-presence/internal/agent"
	"github.com/tamzrod/queue-presence/internal/config"
	"github.com/tamzrod/queue-presence/internal/logging"
	"github.com/tamzrod/queue-presence/internal/poller"
	"github.com/tamzrod/queue-presence/internal/status"
	"github.com/tamzrod/queue-presence/internal/writer"
)

func main() {
	cfgPath := flag.StringP("config", "c", "config.yaml", "path to the YAML config")
	logLevel := flag.String("log-level", "", "override logging.level")
	flag.Parse()

	log := logging.NewLogger("main")

	if err := run(*cfgPath, *logLevel, log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// closers releases resources in reverse order of acquisition.
type closers []func() error

func (c *closers) add(fn func() error) { *c = append(*c, fn) }

func (c *closers) closeAll() {
	for i := len(*c) - 1; i >= 0; i-- {
		_ = (*c)[i]()
	}
	*c = nil
}

func run(cfgPath, logLevel string, log *logrus.Entry) error {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	config.Normalize(cfg)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if err := logging.Setup(logging.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		ReportCaller: cfg.Logging.ReportCaller,
	}, os.Stderr); err != nil {
		return fmt.Errorf("logging setup failed: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// every opened chat session is closed on any return path
	var open closers
	defer open.closeAll()

	// --------------------
	// Shared mirror (optional)
	// --------------------

	mirror, err := writer.BuildMirror(cfg.Telegram)
	if err != nil {
		return fmt.Errorf("telegram mirror failed: %w", err)
	}

	// --------------------
	// Build per-unit pipelines
	// --------------------

	var wg sync.WaitGroup

	for _, unit := range cfg.Units {
		unitLog := logging.NewLogger("unit").WithField("unit", unit.ID)

		// ---- poller ----
		p, err := poller.Build(unit, cfg.NeatQueue, logging.NewLogger("poller"))
		if err != nil {
			return fmt.Errorf("poller build failed (unit=%s): %w", unit.ID, err)
		}

		// ---- publish plan ----
		plan, err := writer.BuildPlan(unit)
		if err != nil {
			return fmt.Errorf("writer plan failed (unit=%s): %w", unit.ID, err)
		}

		// ---- chat client ----
		chat, closeChat, err := writer.BuildChatClient(ctx, unit)
		if err != nil {
			return fmt.Errorf("discord login failed (unit=%s): %w", unit.ID, err)
		}
		open.add(closeChat)

		pub := writer.New(plan, chat, mirror, logging.NewLogger("writer"))

		a := agent.New(unit.ID, status.Layout{
			Capacity: unit.Capacity,
			Mode:     status.TierMode(unit.TierMode),
			Style:    status.NicknameStyle(unit.NicknameStyle),
		}, pub, logging.NewLogger("agent"))

		unitLog.WithFields(logrus.Fields{
			"bot":         chat.Tag(),
			"queue":       unit.QueueID,
			"capacity":    unit.Capacity,
			"tier_mode":   unit.TierMode,
			"interval_ms": unit.Poll.IntervalMs,
		}).Info("logged in, checking queue (updates only on change)")

		// ---- runner ----
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Run(ctx, a.Handle)
		}()
	}

	<-ctx.Done()
	log.Info("shutting down")
	wg.Wait()
	return nil
}
