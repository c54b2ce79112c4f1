// cmd/queuebot/main_test.go
package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/queue-presence/internal/logging"
)

func TestClosers_CloseAllReverseOrder(t *testing.T) {
	var order []int
	var c closers
	c.add(func() error { order = append(order, 1); return nil })
	c.add(func() error { order = append(order, 2); return errors.New("already closed") })
	c.add(func() error { order = append(order, 3); return nil })

	c.closeAll()
	assert.Equal(t, []int{3, 2, 1}, order)

	// second call is a no-op
	c.closeAll()
	assert.Len(t, order, 3)
}

func TestRun_StartupFailureReturnsError(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "missing.yaml"), "", logging.NewLogger("main"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config load failed")
}
