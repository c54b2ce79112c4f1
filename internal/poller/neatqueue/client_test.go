// internal/poller/neatqueue/client_test.go
package neatqueue

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL + "/", APIKey: "secret", Timeout: time.Second})
	require.NoError(t, err)
	return c
}

func TestQueuePlayers_PathAndHeaders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/queue/123/players", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"players":[{},{}]}`))
	})

	body, err := c.QueuePlayers(context.Background(), "123")
	require.NoError(t, err)
	assert.JSONEq(t, `{"players":[{},{}]}`, string(body))
}

func TestMatch_Path(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/matches/777", r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	})

	body, err := c.Match(context.Background(), "777")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(body))
}

func TestGet_NonSuccessIsStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	})

	_, err := c.QueuePlayers(context.Background(), "1")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Equal(t, "players", se.Op)
}

func TestGet_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Match(ctx, "1")
	assert.Error(t, err)
}

func TestNew_RequiresFields(t *testing.T) {
	_, err := New(Config{APIKey: "k"})
	assert.Error(t, err)

	_, err = New(Config{BaseURL: "http://x"})
	assert.Error(t, err)
}
