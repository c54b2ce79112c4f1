// internal/logging/logger.go
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// EnvLevel overrides the configured level when set.
const EnvLevel = "QUEUEBOT_LOG_LEVEL"

// Config is the subset of logging settings the agent understands.
type Config struct {
	Level        string
	Format       string // "text" (default) or "json"
	ReportCaller bool
}

var (
	root   = logrus.New()
	rootMu sync.Mutex
)

// Setup configures the shared root logger. Safe to call more than once.
func Setup(cfg Config, out io.Writer) error {
	rootMu.Lock()
	defer rootMu.Unlock()

	levelStr := cfg.Level
	if v := os.Getenv(EnvLevel); v != "" {
		levelStr = v
	}
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	root.SetLevel(level)
	root.SetReportCaller(cfg.ReportCaller)

	switch cfg.Format {
	case "json":
		root.SetFormatter(&logrus.JSONFormatter{})
	default:
		root.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if out == nil {
		out = os.Stderr
	}
	root.SetOutput(out)
	return nil
}

// NewLogger returns an entry tagged with the component name.
func NewLogger(component string) *logrus.Entry {
	return root.WithField("component", component)
}
