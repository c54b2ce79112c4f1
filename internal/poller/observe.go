// internal/poller/observe.go
package poller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/queue-presence/internal/status"
)

// ParsePlayerCount returns the roster size.
// A missing or non-array "players" field counts as 0, and so does a body that is
// not an object. Undecodable JSON or a null body is an error.
func ParsePlayerCount(body []byte) (int, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return 0, fmt.Errorf("players payload: %w", err)
	}
	if doc == nil {
		return 0, errors.New("players payload: null body")
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return 0, nil
	}

	players, ok := obj["players"].([]any)
	if !ok {
		return 0, nil
	}
	return len(players), nil
}

// CountActive derives the active tier from a match payload.
//
// The tier is the number of times queueID occurs in the compacted body (count mode)
// or whether it occurs at all (binary mode). This matches the payload as text, not by
// schema: it is fragile if the id also appears in unrelated fields.
func CountActive(body []byte, queueID string, mode status.TierMode) (int, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return 0, fmt.Errorf("match payload: %w", err)
	}
	if isEmpty(doc) || queueID == "" {
		return 0, nil
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, body); err != nil {
		return 0, fmt.Errorf("match payload: %w", err)
	}

	n := strings.Count(compact.String(), queueID)
	if mode == status.TierBinary && n > 0 {
		return 1, nil
	}
	return n, nil
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case string:
		return t == ""
	default:
		// null, numbers and booleans have no fields
		return true
	}
}
