package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/engine"
)

func TestMoveSpeedByRole(t *testing.T) {
	tests := []struct {
		role core.Role
		want float64
	}{
		{core.RoleSoldier, 3},
		{core.RoleScout, 5},
		{core.RoleMedic, 3},
		{core.RoleTank, 2},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			w, _ := newTestWorld(tt.role)
			w.Step(engine.Input{Move: core.V(1, 0)}, frame)

			if got := w.Player.Pos.X; got != tt.want {
				t.Errorf("Expected x %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFacing(t *testing.T) {
	w, _ := newTestWorld(core.RoleSoldier)

	w.Step(engine.Input{Move: core.V(-1, 0)}, frame)
	if w.Player.Direction != core.FacingLeft {
		t.Fatalf("Expected facing left, got %v", w.Player.Direction)
	}

	w.Step(engine.Input{Move: core.V(0, 1)}, frame)
	if w.Player.Direction != core.FacingLeft {
		t.Errorf("Expected vertical input to keep facing left, got %v", w.Player.Direction)
	}

	w.Step(engine.Input{Move: core.V(0.2, 0)}, frame)
	if w.Player.Direction != core.FacingRight {
		t.Errorf("Expected facing right, got %v", w.Player.Direction)
	}
}

func TestCameraTracksAfterMove(t *testing.T) {
	w, _ := newTestWorld(core.RoleScout)
	w.Step(engine.Input{Move: core.V(0, -1)}, frame)

	if got := w.Camera.WorldToView(w.Player.Pos); got != core.V(400, 300) {
		t.Errorf("Expected player at viewport centre, got %v", got)
	}
	if w.Player.Pos != core.V(0, -5) {
		t.Errorf("Expected (0,-5), got %v", w.Player.Pos)
	}
}

func TestAttackCueOnRisingEdge(t *testing.T) {
	w, cues := newTestWorld(core.RoleSoldier)

	w.Step(engine.Input{Attacking: true}, frame)
	w.Step(engine.Input{Attacking: true}, frame)
	w.Step(engine.Input{}, frame)
	w.Step(engine.Input{Attacking: true}, frame)

	if got := cues.count(core.CueAttack); got != 2 {
		t.Errorf("Expected 2 attack cues, got %d", got)
	}
	if !w.Player.Attacking {
		t.Error("Expected player attacking flag to mirror input")
	}
}

func TestWalkCueGating(t *testing.T) {
	tests := []struct {
		name    string
		rand    float64
		move    core.Vec2
		elapsed time.Duration
		want    int
	}{
		{"even window lucky roll", 0.05, core.V(1, 0), 0, 1},
		{"odd window", 0.05, core.V(1, 0), 300 * time.Millisecond, 0},
		{"unlucky roll", 0.5, core.V(1, 0), 0, 0},
		{"below threshold", 0.05, core.V(0.05, 0.05), 0, 0},
		{"vertical counts", 0.05, core.V(0, -1), 600 * time.Millisecond, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, cues := newTestWorld(core.RoleSoldier)
			w.Rand = constRand(tt.rand)
			w.Elapsed = tt.elapsed
			w.Step(engine.Input{Move: tt.move}, 0)

			if got := cues.count(core.CueWalkStep); got != tt.want {
				t.Errorf("Expected %d walk cues, got %d", tt.want, got)
			}
		})
	}
}
