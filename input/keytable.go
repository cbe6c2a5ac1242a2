package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to actions for one game state
type KeyTable struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultPlayTable returns the in-game bindings
// Digits 1-9 are reserved for inventory slots and never looked up here
func DefaultPlayTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionMoveUp,
			tcell.KeyDown:   ActionMoveDown,
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyEscape: ActionMenu,
			tcell.KeyF1:     ActionDebug,
			tcell.KeyF2:     ActionSave,
			tcell.KeyF12:    ActionScreenshot,
		},
		Runes: map[rune]Action{
			'w': ActionMoveUp,
			's': ActionMoveDown,
			'a': ActionMoveLeft,
			'd': ActionMoveRight,
			' ': ActionAttack,
			'q': ActionQuest,
			'p': ActionPause,
			'm': ActionMute,
		},
	}
}

// Apply overlays bindings from o; ActionNone entries unbind
func (t *KeyTable) Apply(o *KeyTable) {
	if o == nil {
		return
	}
	for k, a := range o.Keys {
		if a == ActionNone {
			delete(t.Keys, k)
			continue
		}
		t.Keys[k] = a
	}
	for r, a := range o.Runes {
		if a == ActionNone {
			delete(t.Runes, r)
			continue
		}
		t.Runes[r] = a
	}
}

// menuKeys are fixed; every printable rune on the menu is form input
var menuKeys = map[tcell.Key]Action{
	tcell.KeyEnter:      ActionConfirm,
	tcell.KeyBackspace:  ActionBackspace,
	tcell.KeyBackspace2: ActionBackspace,
	tcell.KeyUp:         ActionRolePrev,
	tcell.KeyDown:       ActionRoleNext,
	tcell.KeyTab:        ActionRoleNext,
	tcell.KeyBacktab:    ActionRolePrev,
	tcell.KeyF1:         ActionDebug,
	tcell.KeyF3:         ActionContinue,
	tcell.KeyF12:        ActionScreenshot,
	tcell.KeyEscape:     ActionQuit,
	tcell.KeyCtrlC:      ActionQuit,
}

var gameOverKeys = map[tcell.Key]Action{
	tcell.KeyEnter:  ActionMenu,
	tcell.KeyEscape: ActionMenu,
	tcell.KeyCtrlC:  ActionQuit,
	tcell.KeyF12:    ActionScreenshot,
}
