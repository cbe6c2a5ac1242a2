package engine

import (
	"math"

	"github.com/lixenwraith/pixel-survivor/core"
)

// Input is the per-frame control snapshot
// Move components lie in [-1,1] with magnitude at most 1; zero means idle
type Input struct {
	Move      core.Vec2
	Attacking bool
}

// Normalized clamps the move vector to the unit disc
func (in Input) Normalized() Input {
	m := core.V(clampUnit(in.Move.X), clampUnit(in.Move.Y))
	if m.Len() > 1 {
		m = m.Normalize()
	}
	return Input{Move: m, Attacking: in.Attacking}
}

// Moving reports whether either axis exceeds threshold
func (in Input) Moving(threshold float64) bool {
	return math.Abs(in.Move.X) > threshold || math.Abs(in.Move.Y) > threshold
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

// InputSource supplies the frame-start input snapshot
type InputSource interface {
	Snapshot() Input
}

// InputFunc adapts a function to InputSource
type InputFunc func() Input

func (f InputFunc) Snapshot() Input {
	return f()
}
