// internal/status/snapshot.go
package status

import "fmt"

// Observation is what one successful poll cycle saw upstream.
// A failed roster query never produces an Observation.
type Observation struct {
	PlayerCount int
	ActiveTier  int
}

func (o Observation) String() string {
	return fmt.Sprintf("players=%d tier=%d", o.PlayerCount, o.ActiveTier)
}

// Rendered is exactly what the publisher is allowed to deliver.
// It is derived from an Observation and never stored.
type Rendered struct {
	Nickname       string
	ProgressBar    string
	ShouldBeOnline bool
}

// TierMode selects how active matches are counted.
type TierMode string

const (
	// TierBinary collapses the tier to 0 or 1.
	TierBinary TierMode = "binary"
	// TierCount keeps the number of active matches.
	TierCount TierMode = "count"
)

// NicknameStyle selects the tier 1 nickname wording.
type NicknameStyle string

const (
	// StyleDash renders "Active - 3/8 Next".
	StyleDash NicknameStyle = "dash"
	// StyleCount renders "1 Active (3/8 Next)".
	StyleCount NicknameStyle = "count"
)

// Layout parametrizes rendering for one queue.
type Layout struct {
	Capacity int
	Mode     TierMode
	Style    NicknameStyle
}

// PlayersPerSlot is how many players one bar glyph stands for.
func (l Layout) PlayersPerSlot() int {
	if l.Capacity < BarSlots {
		return 1
	}
	return l.Capacity / BarSlots
}
