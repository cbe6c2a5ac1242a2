package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/status"
)

// Renderer draws the world after each update
type Renderer interface {
	RenderWorld(w *World, paused bool)
}

// Loop drives one world at a fixed frame interval on its own goroutine
// Stop must not be called from inside a frame (observer or renderer)
type Loop struct {
	world    *World
	input    InputSource
	renderer Renderer
	clock    Clock
	interval time.Duration

	paused atomic.Bool
	mu     sync.Mutex // serializes Frame
	last   time.Time

	life     sync.Mutex // guards Start and Stop transitions
	stopped  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  atomic.Bool

	statFrameUS *status.AtomicFloat
}

// NewLoop creates an idle loop; fps <= 0 selects the default rate
func NewLoop(world *World, input InputSource, renderer Renderer, clock Clock, fps int) *Loop {
	if fps <= 0 {
		fps = constants.DefaultFPS
	}
	if clock == nil {
		clock = NewTimeProvider()
	}
	return &Loop{
		world:    world,
		input:    input,
		renderer: renderer,
		clock:    clock,
		interval: time.Second / time.Duration(fps),
		stopChan: make(chan struct{}),
	}
}

// SetMetrics records frame cost into the registry
func (l *Loop) SetMetrics(reg *status.Registry) {
	if reg != nil {
		l.statFrameUS = reg.Floats.Get("engine.frame_us")
	}
}

// World returns the driven world
func (l *Loop) World() *World {
	return l.world
}

// Interval returns the frame period
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// SetPaused toggles update suspension; rendering continues while paused
func (l *Loop) SetPaused(p bool) {
	l.paused.Store(p)
}

func (l *Loop) Paused() bool {
	return l.paused.Load()
}

// Running reports whether the frame goroutine is active
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Start launches the frame goroutine and the background music
// Returns false when already running or once stopped; a stopped loop cannot restart
func (l *Loop) Start() bool {
	l.life.Lock()
	defer l.life.Unlock()
	if l.stopped || l.running.Load() {
		return false
	}
	l.running.Store(true)
	l.world.PlayCue(core.CueBackgroundStart)
	l.wg.Add(1)
	core.Go(l.run)
	return true
}

// Stop halts the frame goroutine and waits for the current frame to finish
// No frame runs after Stop returns. Idempotent, and final even before Start
func (l *Loop) Stop() {
	l.life.Lock()
	if l.stopped {
		l.life.Unlock()
		return
	}
	l.stopped = true
	wasRunning := l.running.Swap(false)
	close(l.stopChan)
	l.life.Unlock()

	if wasRunning {
		l.wg.Wait()
		l.world.PlayCue(core.CueBackgroundStop)
	}
}

func (l *Loop) run() {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-ticker.C:
			// Stop may race with a pending tick
			select {
			case <-l.stopChan:
				return
			default:
			}
			l.Frame()
		}
	}
}

// Frame runs one update and render
// Returns false when the game is over; updates and rendering are skipped from then on
func (l *Loop) Frame() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()
	now := l.clock.Now()
	var dt time.Duration
	if !l.last.IsZero() {
		dt = now.Sub(l.last)
		if dt < 0 {
			dt = 0
		}
		if dt > constants.MaxFrameDelta {
			dt = constants.MaxFrameDelta
		}
	}
	l.last = now

	if l.world.GameOver() {
		return false
	}

	paused := l.paused.Load()
	if !paused {
		var in Input
		if l.input != nil {
			in = l.input.Snapshot()
		}
		if !l.world.Step(in, dt) {
			return false
		}
	}

	if l.renderer != nil {
		l.renderer.RenderWorld(l.world, paused)
	}

	if l.statFrameUS != nil {
		l.statFrameUS.Set(float64(time.Since(start).Microseconds()))
	}
	return true
}
