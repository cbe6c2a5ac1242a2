package engine

import (
	"github.com/lixenwraith/pixel-survivor/components"
	"github.com/lixenwraith/pixel-survivor/core"
)

// Observer receives throttled player snapshots and the one-shot game over signal
// Called from the loop goroutine; implementations must not block or stop the loop
type Observer interface {
	OnSnapshot(p components.Player)
	OnGameOver()
}

// NopObserver discards all notifications
type NopObserver struct{}

func (NopObserver) OnSnapshot(components.Player) {}
func (NopObserver) OnGameOver()                  {}

// ObserverFuncs adapts callbacks to Observer, nil fields are skipped
type ObserverFuncs struct {
	Snapshot func(p components.Player)
	GameOver func()
}

func (o ObserverFuncs) OnSnapshot(p components.Player) {
	if o.Snapshot != nil {
		o.Snapshot(p)
	}
}

func (o ObserverFuncs) OnGameOver() {
	if o.GameOver != nil {
		o.GameOver()
	}
}

// AudioPlayer consumes cues; Play must not block
type AudioPlayer interface {
	Play(c core.Cue)
}

// NopAudio is the silent sink
type NopAudio struct{}

func (NopAudio) Play(core.Cue) {}
