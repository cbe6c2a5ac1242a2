package input

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/engine"
)

func newTestMapper(overrides *KeyTable) (*Mapper, *State, *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	st := NewState(clock, 150*time.Millisecond)
	return NewMapper(st, overrides), st, clock
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestPlayBindings(t *testing.T) {
	m, _, _ := newTestMapper(nil)

	tests := []struct {
		name string
		ev   tcell.Event
		want Event
	}{
		{"w", runeKey('w'), Event{Action: ActionMoveUp}},
		{"upper W", runeKey('W'), Event{Action: ActionMoveUp}},
		{"arrow", key(tcell.KeyLeft), Event{Action: ActionMoveLeft}},
		{"space", runeKey(' '), Event{Action: ActionAttack}},
		{"slot 1", runeKey('1'), Event{Action: ActionUseItem, Slot: 0}},
		{"slot 9", runeKey('9'), Event{Action: ActionUseItem, Slot: 8}},
		{"quest", runeKey('q'), Event{Action: ActionQuest}},
		{"pause", runeKey('p'), Event{Action: ActionPause}},
		{"mute", runeKey('m'), Event{Action: ActionMute}},
		{"save", key(tcell.KeyF2), Event{Action: ActionSave}},
		{"menu", key(tcell.KeyEscape), Event{Action: ActionMenu}},
		{"quit", key(tcell.KeyCtrlC), Event{Action: ActionQuit}},
		{"screenshot", key(tcell.KeyF12), Event{Action: ActionScreenshot}},
		{"unbound", runeKey('z'), Event{}},
		{"zero", runeKey('0'), Event{}},
		{"resize", tcell.NewEventResize(80, 24), Event{Action: ActionResize}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Translate(tt.ev, core.StatePlaying); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestMenuBindings(t *testing.T) {
	m, st, _ := newTestMapper(nil)

	tests := []struct {
		name string
		ev   tcell.Event
		want Event
	}{
		{"letter uppercased", runeKey('k'), Event{Action: ActionChar, Rune: 'K'}},
		{"digit", runeKey('7'), Event{Action: ActionChar, Rune: '7'}},
		{"w is text", runeKey('w'), Event{Action: ActionChar, Rune: 'W'}},
		{"punctuation ignored", runeKey('!'), Event{}},
		{"non ascii ignored", runeKey('é'), Event{}},
		{"enter", key(tcell.KeyEnter), Event{Action: ActionConfirm}},
		{"backspace", key(tcell.KeyBackspace2), Event{Action: ActionBackspace}},
		{"down", key(tcell.KeyDown), Event{Action: ActionRoleNext}},
		{"up", key(tcell.KeyUp), Event{Action: ActionRolePrev}},
		{"continue", key(tcell.KeyF3), Event{Action: ActionContinue}},
		{"esc quits", key(tcell.KeyEscape), Event{Action: ActionQuit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Translate(tt.ev, core.StateMenu); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}

	if st.Snapshot().Moving(0) {
		t.Error("Expected menu typing to leave controls untouched")
	}
}

func TestGameOverBindings(t *testing.T) {
	m, _, _ := newTestMapper(nil)
	if got := m.Translate(key(tcell.KeyEnter), core.StateGameOver); got.Action != ActionMenu {
		t.Errorf("Expected menu, got %v", got.Action)
	}
	if got := m.Translate(runeKey('w'), core.StateGameOver); got.Action != ActionNone {
		t.Errorf("Expected no action, got %v", got.Action)
	}
}

func TestHoldWindow(t *testing.T) {
	m, st, clock := newTestMapper(nil)

	m.Translate(runeKey('d'), core.StatePlaying)
	if in := st.Snapshot(); in.Move.X != 1 || in.Move.Y != 0 {
		t.Errorf("Expected move right, got %+v", in.Move)
	}

	clock.Advance(100 * time.Millisecond)
	if in := st.Snapshot(); in.Move.X != 1 {
		t.Errorf("Expected key still held inside window, got %+v", in.Move)
	}

	// Auto-repeat extends the hold
	m.Translate(runeKey('d'), core.StatePlaying)
	clock.Advance(100 * time.Millisecond)
	if in := st.Snapshot(); in.Move.X != 1 {
		t.Errorf("Expected repeat to extend hold, got %+v", in.Move)
	}

	clock.Advance(50 * time.Millisecond)
	if in := st.Snapshot(); !in.Move.IsZero() {
		t.Errorf("Expected release after window, got %+v", in.Move)
	}
}

func TestDiagonalNormalized(t *testing.T) {
	m, st, _ := newTestMapper(nil)
	m.Translate(runeKey('w'), core.StatePlaying)
	m.Translate(runeKey('d'), core.StatePlaying)

	in := st.Snapshot()
	if math.Abs(in.Move.Len()-1) > 1e-9 {
		t.Errorf("Expected unit diagonal, got length %v", in.Move.Len())
	}
	if in.Move.X <= 0 || in.Move.Y >= 0 {
		t.Errorf("Expected up-right, got %+v", in.Move)
	}
}

func TestOppositeDirectionReleases(t *testing.T) {
	m, st, _ := newTestMapper(nil)
	m.Translate(runeKey('a'), core.StatePlaying)
	m.Translate(runeKey('d'), core.StatePlaying)

	if in := st.Snapshot(); in.Move.X != 1 {
		t.Errorf("Expected latest direction to win, got %+v", in.Move)
	}
}

func TestAttackHeld(t *testing.T) {
	m, st, clock := newTestMapper(nil)
	m.Translate(runeKey(' '), core.StatePlaying)
	if !st.Snapshot().Attacking {
		t.Error("Expected attacking while held")
	}
	clock.Advance(time.Second)
	if st.Snapshot().Attacking {
		t.Error("Expected attack released")
	}
}

func TestPausedIgnoresControls(t *testing.T) {
	m, st, _ := newTestMapper(nil)
	if got := m.Translate(runeKey('w'), core.StatePaused); got.Action != ActionNone {
		t.Errorf("Expected held control dropped while paused, got %v", got.Action)
	}
	if got := m.Translate(runeKey('p'), core.StatePaused); got.Action != ActionPause {
		t.Errorf("Expected pause toggle while paused, got %v", got.Action)
	}
	if st.Snapshot().Moving(0) {
		t.Error("Expected no movement recorded while paused")
	}
}

func TestRelease(t *testing.T) {
	m, st, _ := newTestMapper(nil)
	m.Translate(runeKey('w'), core.StatePlaying)
	m.Translate(runeKey(' '), core.StatePlaying)
	st.Release()
	if in := st.Snapshot(); in.Moving(0) || in.Attacking {
		t.Errorf("Expected all controls released, got %+v", in)
	}
}

func TestLoadBindings(t *testing.T) {
	kt, err := LoadBindings(map[string]string{
		"space": "none",
		"j":     "attack",
		"F5":    "save",
		"x":     "quit",
	})
	if err != nil {
		t.Fatalf("LoadBindings failed: %v", err)
	}

	m, _, _ := newTestMapper(kt)
	if got := m.Translate(runeKey(' '), core.StatePlaying); got.Action != ActionNone {
		t.Errorf("Expected space unbound, got %v", got.Action)
	}
	if got := m.Translate(runeKey('j'), core.StatePlaying); got.Action != ActionAttack {
		t.Errorf("Expected j to attack, got %v", got.Action)
	}
	if got := m.Translate(key(tcell.KeyF5), core.StatePlaying); got.Action != ActionSave {
		t.Errorf("Expected F5 to save, got %v", got.Action)
	}
	// Defaults not overridden survive
	if got := m.Translate(key(tcell.KeyF2), core.StatePlaying); got.Action != ActionSave {
		t.Errorf("Expected F2 to still save, got %v", got.Action)
	}
}

func TestLoadBindingsErrors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
	}{
		{"unknown action", map[string]string{"x": "fly"}},
		{"unknown key", map[string]string{"hyper": "quit"}},
		{"reserved digit", map[string]string{"3": "quit"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadBindings(tt.bindings); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestActionName(t *testing.T) {
	if got := ActionName(ActionQuest); got != "quest" {
		t.Errorf("Expected quest, got %q", got)
	}
	if got := ActionName(ActionChar); got != "" {
		t.Errorf("Expected no name for menu input, got %q", got)
	}
}
