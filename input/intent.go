package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Ctrl+C, Ctrl+Q, Esc
	IntentResize // Terminal resize event

	// Cannon control
	IntentRotateLeft  // Left arrow, h
	IntentRotateRight // Right arrow, l
	IntentFire        // Space
	IntentReload      // r

	// Menu and end screen
	IntentSelectTier  // 1..3
	IntentAcknowledge // c
)

// Intent is one edge-triggered action decoded from a single key press
type Intent struct {
	Type IntentType
	Tier int // zero-based tier index for IntentSelectTier
}

var intentNames = map[IntentType]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentResize:      "resize",
	IntentRotateLeft:  "rotate_left",
	IntentRotateRight: "rotate_right",
	IntentFire:        "fire",
	IntentReload:      "reload",
	IntentSelectTier:  "select_tier",
	IntentAcknowledge: "acknowledge",
}

// String returns the intent name used in logs
func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}
