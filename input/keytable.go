package input

import "github.com/gdamore/tcell/v2"

// Action is what a bound key does
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
	ActionJump
	ActionFire
	ActionLookLeft
	ActionLookRight
	ActionLookUp
	ActionLookDown
	ActionQuit
)

// actionKeys maps held actions to their key bit
var actionKeys = map[Action]Keys{
	ActionForward: KeyForward,
	ActionBack:    KeyBack,
	ActionLeft:    KeyLeft,
	ActionRight:   KeyRight,
	ActionJump:    KeyJump,
}

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, escape)
	SpecialKeys map[tcell.Key]Action

	// Rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
// WASD moves, space jumps, arrows look, f or enter fires
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyEnter:  ActionFire,
			tcell.KeyLeft:   ActionLookLeft,
			tcell.KeyRight:  ActionLookRight,
			tcell.KeyUp:     ActionLookUp,
			tcell.KeyDown:   ActionLookDown,
		},
		Runes: map[rune]Action{
			'w': ActionForward,
			's': ActionBack,
			'a': ActionLeft,
			'd': ActionRight,
			' ': ActionJump,
			'f': ActionFire,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event to its action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
