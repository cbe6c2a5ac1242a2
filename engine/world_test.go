package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/pixel-survivor/components"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/status"
	"github.com/lixenwraith/pixel-survivor/worldgen"
)

const frame = 16 * time.Millisecond

type recordingObserver struct {
	snapshots []components.Player
	gameOvers int
}

func (r *recordingObserver) OnSnapshot(p components.Player) { r.snapshots = append(r.snapshots, p) }
func (r *recordingObserver) OnGameOver()                    { r.gameOvers++ }

type funcSystem struct {
	priority int
	fn       func(w *World)
}

func (s funcSystem) Priority() int   { return s.priority }
func (s funcSystem) Update(w *World) { s.fn(w) }

func newTestWorld() (*World, *recordingObserver) {
	w := NewWorld(worldgen.Layout{Seed: "TEST01"}, components.NewPlayer(core.RoleSoldier))
	obs := &recordingObserver{}
	w.Observer = obs
	return w, obs
}

func TestCameraFollowsPlayer(t *testing.T) {
	w, _ := newTestWorld()
	w.Player.Pos = core.V(100, -50)
	w.Camera.Follow(w.Player.Pos)

	if w.Camera.Offset != core.V(300, 350) {
		t.Errorf("Expected offset (300,350), got %v", w.Camera.Offset)
	}
	if got := w.Camera.WorldToView(w.Player.Pos); got != core.V(400, 300) {
		t.Errorf("Expected player at viewport centre, got %v", got)
	}
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w, _ := newTestWorld()
	var order []int
	for _, p := range []int{30, 10, 20, 10} {
		p := p
		w.AddSystem(funcSystem{priority: p, fn: func(*World) { order = append(order, p) }})
	}

	w.Step(Input{}, frame)

	want := []int{10, 10, 20, 30}
	if len(order) != len(want) {
		t.Fatalf("Expected %d updates, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expected order %v, got %v", want, order)
			break
		}
	}
}

func TestCommandsApplyBeforeSystems(t *testing.T) {
	w, _ := newTestWorld()
	w.Player.HP = 100
	w.Player.AddItem(components.Apple)

	var seenHP float64
	w.AddSystem(funcSystem{priority: 0, fn: func(w *World) { seenHP = w.Player.HP }})

	w.Enqueue(ConsumeItem(1))
	w.Step(Input{}, frame)

	if seenHP != 120 {
		t.Errorf("Expected systems to observe healed hp 120, got %v", seenHP)
	}
	if len(w.Player.Inventory) != 1 {
		t.Errorf("Expected apple removed, got %d items", len(w.Player.Inventory))
	}
}

func TestHealClampedAcrossFrames(t *testing.T) {
	w, _ := newTestWorld()
	w.Player.HP = w.Player.MaxHP - 5
	for i := 0; i < 3; i++ {
		w.Player.AddItem(components.Medkit)
	}

	for i := 0; i < 3; i++ {
		w.Enqueue(ConsumeItem(1))
		w.Step(Input{}, frame)
		if w.Player.HP < 0 || w.Player.HP > w.Player.MaxHP {
			t.Fatalf("Expected 0 <= hp <= max, got %v/%v", w.Player.HP, w.Player.MaxHP)
		}
	}
}

func TestSnapshotEverySixtyFrames(t *testing.T) {
	w, obs := newTestWorld()

	for i := 0; i < 59; i++ {
		w.Step(Input{}, frame)
	}
	if len(obs.snapshots) != 0 {
		t.Fatalf("Expected no snapshot before frame 60, got %d", len(obs.snapshots))
	}

	w.Step(Input{}, frame)
	if len(obs.snapshots) != 1 {
		t.Fatalf("Expected 1 snapshot at frame 60, got %d", len(obs.snapshots))
	}

	for i := 0; i < 60; i++ {
		w.Step(Input{}, frame)
	}
	if len(obs.snapshots) != 2 {
		t.Errorf("Expected 2 snapshots at frame 120, got %d", len(obs.snapshots))
	}
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	w, obs := newTestWorld()
	for i := 0; i < 60; i++ {
		w.Step(Input{}, frame)
	}
	w.Player.AddItem(components.Apple)

	if len(obs.snapshots[0].Inventory) != 1 {
		t.Errorf("Expected snapshot inventory to stay at 1, got %d", len(obs.snapshots[0].Inventory))
	}
}

func TestGameOverFiresOnceAndFreezes(t *testing.T) {
	w, obs := newTestWorld()
	w.Player.HP = 3
	updates := 0
	w.AddSystem(funcSystem{priority: 0, fn: func(w *World) {
		updates++
		w.Player.HP -= 2
	}})

	if !w.Step(Input{}, frame) {
		t.Fatal("Expected first frame to continue at hp 1")
	}
	if w.Step(Input{}, frame) {
		t.Fatal("Expected second frame to end the game")
	}
	if obs.gameOvers != 1 {
		t.Fatalf("Expected 1 game over, got %d", obs.gameOvers)
	}

	hp, frameCount := w.Player.HP, w.Frame
	for i := 0; i < 10; i++ {
		w.Enqueue(ConsumeItem(0))
		w.Step(Input{Move: core.V(1, 0)}, frame)
	}

	if obs.gameOvers != 1 {
		t.Errorf("Expected game over exactly once, got %d", obs.gameOvers)
	}
	if updates != 2 || w.Player.HP != hp || w.Frame != frameCount {
		t.Errorf("Expected frozen world, got updates=%d hp=%v frame=%d", updates, w.Player.HP, w.Frame)
	}
	if len(obs.snapshots) != 0 {
		t.Errorf("Expected no snapshot on the game over frame, got %d", len(obs.snapshots))
	}
}

func TestInputNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   core.Vec2
		want float64
	}{
		{"idle", core.V(0, 0), 0},
		{"axis", core.V(1, 0), 1},
		{"diagonal", core.V(1, 1), 1},
		{"overdriven", core.V(5, -3), 1},
		{"half", core.V(0.5, 0), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Input{Move: tt.in}.Normalized().Move.Len()
			if got-tt.want > 1e-9 || tt.want-got > 1e-9 {
				t.Errorf("Expected magnitude %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWorldMetrics(t *testing.T) {
	w, _ := newTestWorld()
	reg := status.NewRegistry()
	w.SetMetrics(reg)
	w.Particles = append(w.Particles, components.Particle{Life: 1})

	w.Step(Input{}, frame)

	if got := reg.Ints.Get("engine.frames").Load(); got != 1 {
		t.Errorf("Expected 1 frame recorded, got %d", got)
	}
	if got := reg.Ints.Get("world.particles").Load(); got != 1 {
		t.Errorf("Expected 1 particle recorded, got %d", got)
	}
}
