package engine

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/pixel-survivor/components"
	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/status"
	"github.com/lixenwraith/pixel-survivor/vmath"
	"github.com/lixenwraith/pixel-survivor/worldgen"
)

// Camera maps world coordinates into the logical viewport
// Offset is added to world positions before drawing
type Camera struct {
	Offset core.Vec2
	Width  float64
	Height float64
}

// Follow centres the viewport on p
func (c *Camera) Follow(p core.Vec2) {
	c.Offset = core.V(c.Width/2-p.X, c.Height/2-p.Y)
}

// WorldToView converts a world position to logical viewport coordinates
func (c Camera) WorldToView(p core.Vec2) core.Vec2 {
	return p.Add(c.Offset)
}

// World holds all per-session simulation state
// Owned by the loop goroutine; other goroutines interact through Enqueue and Observer
type World struct {
	Seed       string
	Player     *components.Player
	Enemies    []components.Enemy
	Particles  []components.Particle
	Structures []components.Structure
	Camera     Camera

	// Input is the snapshot for the current frame, PrevInput the one before
	Input     Input
	PrevInput Input

	Frame     uint64
	Elapsed   time.Duration
	DeltaTime time.Duration

	Rand     vmath.Random
	Audio    AudioPlayer
	Observer Observer

	systems  []System
	commands commandQueue
	snapshot SnapshotThrottle
	gameOver bool

	statFrames    *atomic.Int64
	statEnemies   *atomic.Int64
	statParticles *atomic.Int64
}

// NewWorld builds a world from a generated layout and a player
func NewWorld(layout worldgen.Layout, player *components.Player) *World {
	w := &World{
		Seed:       layout.Seed,
		Player:     player,
		Enemies:    append([]components.Enemy(nil), layout.Enemies...),
		Structures: append([]components.Structure(nil), layout.Structures...),
		Particles:  make([]components.Particle, 0, 64),
		Camera: Camera{
			Width:  constants.ViewportWidth,
			Height: constants.ViewportHeight,
		},
		Rand:     vmath.NewFastRand(uint64(time.Now().UnixNano())),
		Audio:    NopAudio{},
		Observer: NopObserver{},
		snapshot: NewSnapshotThrottle(constants.SnapshotInterval),
	}
	w.Camera.Follow(player.Pos)
	return w
}

// SetMetrics caches metric pointers, nil disables metrics
func (w *World) SetMetrics(reg *status.Registry) {
	if reg == nil {
		w.statFrames, w.statEnemies, w.statParticles = nil, nil, nil
		return
	}
	w.statFrames = reg.Ints.Get("engine.frames")
	w.statEnemies = reg.Ints.Get("world.enemies")
	w.statParticles = reg.Ints.Get("world.particles")
}

// AddSystem registers a system, keeping update order sorted by priority
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns registered systems in update order
func (w *World) Systems() []System {
	return w.systems
}

// Enqueue schedules a mutation to run at the start of the next frame
// Safe to call from any goroutine
func (w *World) Enqueue(cmd Command) {
	w.commands.push(cmd)
}

// PlayCue forwards a cue to the audio sink
func (w *World) PlayCue(c core.Cue) {
	if w.Audio != nil {
		w.Audio.Play(c)
	}
}

// GameOver reports whether the player has died; once set the world never changes again
func (w *World) GameOver() bool {
	return w.gameOver
}

// Step advances the simulation by one frame
// Returns false once the game is over
func (w *World) Step(in Input, dt time.Duration) bool {
	if w.gameOver {
		return false
	}

	w.DeltaTime = dt
	w.Elapsed += dt
	w.PrevInput = w.Input
	w.Input = in.Normalized()

	w.commands.drain(w)

	for _, s := range w.systems {
		s.Update(w)
	}
	w.Frame++

	if w.statFrames != nil {
		w.statFrames.Store(int64(w.Frame))
		w.statEnemies.Store(int64(len(w.Enemies)))
		w.statParticles.Store(int64(len(w.Particles)))
	}

	if w.Player.Dead() {
		w.gameOver = true
		w.Observer.OnGameOver()
		return false
	}

	if w.snapshot.Tick() {
		w.Observer.OnSnapshot(w.Player.Clone())
	}
	return true
}
