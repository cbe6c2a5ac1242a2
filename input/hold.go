package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/engine"
)

const heldCount = int(ActionAttack-ActionMoveUp) + 1

// State emulates held keys for terminals that never report key release
// A control stays down for the hold window after its last press or auto-repeat
type State struct {
	mu    sync.Mutex
	clock engine.Clock
	hold  time.Duration
	last  [heldCount]time.Time
}

// NewState creates a hold tracker; hold <= 0 selects the default window
func NewState(clock engine.Clock, hold time.Duration) *State {
	if clock == nil {
		clock = engine.NewTimeProvider()
	}
	if hold <= 0 {
		hold = constants.InputHoldTimeout
	}
	return &State{clock: clock, hold: hold}
}

// Press marks a held control as down; pressing a direction releases its opposite
func (s *State) Press(a Action) {
	if !a.Held() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.last[a-ActionMoveUp] = now
	if opp, ok := opposite(a); ok {
		s.last[opp-ActionMoveUp] = time.Time{}
	}
}

// Release drops every held control
func (s *State) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = [heldCount]time.Time{}
}

// Snapshot implements engine.InputSource
func (s *State) Snapshot() engine.Input {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	down := func(a Action) bool {
		t := s.last[a-ActionMoveUp]
		return !t.IsZero() && now.Sub(t) < s.hold
	}

	var move core.Vec2
	if down(ActionMoveLeft) {
		move.X--
	}
	if down(ActionMoveRight) {
		move.X++
	}
	if down(ActionMoveUp) {
		move.Y--
	}
	if down(ActionMoveDown) {
		move.Y++
	}

	return engine.Input{Move: move, Attacking: down(ActionAttack)}.Normalized()
}

func opposite(a Action) (Action, bool) {
	switch a {
	case ActionMoveUp:
		return ActionMoveDown, true
	case ActionMoveDown:
		return ActionMoveUp, true
	case ActionMoveLeft:
		return ActionMoveRight, true
	case ActionMoveRight:
		return ActionMoveLeft, true
	}
	return ActionNone, false
}
