package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pixel-survivor/core"
)

// Mapper translates terminal events into actions for the current game state
// Held controls are recorded into State as a side effect
type Mapper struct {
	play  *KeyTable
	state *State
}

// NewMapper creates a mapper with default play bindings overlaid by overrides
func NewMapper(state *State, overrides *KeyTable) *Mapper {
	play := DefaultPlayTable()
	play.Apply(overrides)
	return &Mapper{play: play, state: state}
}

// Translate maps one event; unrecognized input yields ActionNone
func (m *Mapper) Translate(ev tcell.Event, gs core.GameState) Event {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Event{Action: ActionResize}
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && unicode.ToLower(ev.Rune()) == 'c' {
			return Event{Action: ActionQuit}
		}
		switch gs {
		case core.StateMenu:
			return m.menuKey(ev)
		case core.StateGameOver:
			return Event{Action: gameOverKeys[ev.Key()]}
		default:
			return m.playKey(ev, gs == core.StatePaused)
		}
	}
	return Event{}
}

func (m *Mapper) playKey(ev *tcell.EventKey, paused bool) Event {
	var a Action
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= '1' && r <= '9' {
			return Event{Action: ActionUseItem, Slot: int(r - '1')}
		}
		a = m.play.Runes[unicode.ToLower(r)]
	} else {
		a = m.play.Keys[ev.Key()]
	}

	if a.Held() {
		if paused {
			return Event{}
		}
		m.state.Press(a)
	}
	return Event{Action: a}
}

func (m *Mapper) menuKey(ev *tcell.EventKey) Event {
	if ev.Key() != tcell.KeyRune {
		return Event{Action: menuKeys[ev.Key()]}
	}
	r := ev.Rune()
	if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
		return Event{Action: ActionChar, Rune: unicode.ToUpper(r)}
	}
	return Event{}
}
