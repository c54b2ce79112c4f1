// internal/status/constants.go
package status

// Progress bar layout constants.
// These values define the display and MUST NOT be configurable.

// ---- BAR GEOMETRY ----

// BarSlots is the fixed number of glyphs in a progress bar.
const BarSlots = 8

// ---- GLYPHS ----

const (
	GlyphGreen  = "🟩"
	GlyphGray   = "⬜"
	GlyphYellow = "🟨"
	GlyphOrange = "🟧"
	GlyphRed    = "🟥"
)

// ---- TIERS ----

// TierIdle means no active match references the queue.
const TierIdle = 0

// TierOne is a single active match; the queue is filling the next one.
const TierOne = 1

// TierTwo is two concurrent active matches.
const TierTwo = 2

// ---- LOG LINES ----

const (
	onlineLabel  = "Online 🟢"
	offlineLabel = "Offline ⚫"
	activeYes    = "Yes ✅"
	activeNo     = "No ❌"
)
