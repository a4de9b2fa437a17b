package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cannon-defense/constants"
)

// KeyTable maps keys to intents for all screens
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlQ:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyLeft:   {Type: IntentRotateLeft},
			tcell.KeyRight:  {Type: IntentRotateRight},
		},
		Runes: map[rune]Intent{
			'h': {Type: IntentRotateLeft},
			'l': {Type: IntentRotateRight},
			' ': {Type: IntentFire},
			'r': {Type: IntentReload},
			'R': {Type: IntentReload},
		},
	}
	kt.Runes[constants.AcknowledgeKey] = Intent{Type: IntentAcknowledge}
	kt.Runes[unicode.ToUpper(constants.AcknowledgeKey)] = Intent{Type: IntentAcknowledge}
	for i := 0; i < constants.MaxTiers; i++ {
		kt.Runes[rune('1'+i)] = Intent{Type: IntentSelectTier, Tier: i}
	}
	return kt
}

// Resolve decodes a terminal event, unbound keys and other events yield IntentNone
func (kt *KeyTable) Resolve(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.resolveKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (kt *KeyTable) resolveKey(key tcell.Key, r rune) Intent {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.SpecialKeys[key]
}
