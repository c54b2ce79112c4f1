// internal/status/render.go
package status

import (
	"fmt"
	"strings"
)

// Render converts an Observation into display state.
// Pure: no IO, no side effects.
func Render(l Layout, o Observation) Rendered {
	return Rendered{
		Nickname:       Nickname(l, o),
		ProgressBar:    ProgressBar(l, o),
		ShouldBeOnline: o.ActiveTier > 0 || o.PlayerCount > 0,
	}
}

// Nickname picks the display name for the current tier.
func Nickname(l Layout, o Observation) string {
	n, c := o.PlayerCount, l.Capacity

	switch {
	case o.ActiveTier <= TierIdle:
		return fmt.Sprintf("%d/%d In Queue", n, c)
	case o.ActiveTier == TierOne && l.Style == StyleDash:
		return fmt.Sprintf("Active - %d/%d Next", n, c)
	default:
		return fmt.Sprintf("%d Active (%d/%d Next)", o.ActiveTier, n, c)
	}
}

// FilledSlots returns how many of the BarSlots glyphs are filled, clamped to [0, BarSlots].
func FilledSlots(l Layout, playerCount int) int {
	filled := playerCount / l.PlayersPerSlot()
	if filled < 0 {
		return 0
	}
	if filled > BarSlots {
		return BarSlots
	}
	return filled
}

// ProgressBar renders the BarSlots-glyph congestion bar.
// Filled glyphs are the players waiting; the colour pair escalates with the tier.
func ProgressBar(l Layout, o Observation) string {
	filled := FilledSlots(l, o.PlayerCount)
	fill, rest := barColours(l.Mode, o.ActiveTier)
	return strings.Repeat(fill, filled) + strings.Repeat(rest, BarSlots-filled)
}

func barColours(mode TierMode, tier int) (fill, rest string) {
	// binary queues only ever show the idle palette
	if mode == TierBinary {
		return GlyphGreen, GlyphGray
	}

	switch {
	case tier <= TierIdle:
		return GlyphGreen, GlyphGray
	case tier == TierOne:
		return GlyphYellow, GlyphGreen
	case tier == TierTwo:
		return GlyphOrange, GlyphYellow
	default:
		return GlyphRed, GlyphOrange
	}
}

// LogMessage formats the log channel entry for one emitted update.
func LogMessage(l Layout, o Observation, r Rendered) string {
	online := offlineLabel
	if r.ShouldBeOnline {
		online = onlineLabel
	}

	var active string
	if l.Mode == TierBinary {
		label := activeNo
		if o.ActiveTier > 0 {
			label = activeYes
		}
		active = "- Active Queue: " + label
	} else {
		active = fmt.Sprintf("- Active Queues: %d", o.ActiveTier)
	}

	return strings.Join([]string{
		"📊 **Queue Update:**",
		fmt.Sprintf("- Players in Queue: %d/%d", o.PlayerCount, l.Capacity),
		"- Progress: " + r.ProgressBar,
		active,
		"- Bot Status: " + online,
	}, "\n")
}
