package render

import (
	"math"
	"time"

	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// World is nil outside of play (menu, game over)
	World *engine.World
	State core.GameState

	// Elapsed drives animation; frozen while paused
	Elapsed time.Duration
	Paused  bool

	// Canvas dimensions in device pixels
	Width  int
	Height int

	// Logical viewport to device mapping
	Scale   float64
	OriginX float64
	OriginY float64
}

// NewRenderContext fits the logical viewport into the canvas, magnified by zoom
func NewRenderContext(w *engine.World, state core.GameState, width, height int, zoom float64) RenderContext {
	if zoom <= 0 {
		zoom = 1
	}
	scale := math.Min(float64(width)/constants.ViewportWidth, float64(height)/constants.ViewportHeight) * zoom

	rc := RenderContext{
		World:   w,
		State:   state,
		Paused:  state == core.StatePaused,
		Width:   width,
		Height:  height,
		Scale:   scale,
		OriginX: (float64(width) - constants.ViewportWidth*scale) / 2,
		OriginY: (float64(height) - constants.ViewportHeight*scale) / 2,
	}
	if w != nil {
		rc.Elapsed = w.Elapsed
	}
	return rc
}

// TimeMS returns the animation clock in milliseconds
func (rc RenderContext) TimeMS() float64 {
	return float64(rc.Elapsed) / float64(time.Millisecond)
}

// ApplyViewport maps logical viewport coordinates onto the canvas
func (rc RenderContext) ApplyViewport(c *Canvas) {
	c.Translate(rc.OriginX, rc.OriginY)
	c.Scale(rc.Scale, rc.Scale)
}

// ApplyCamera maps world coordinates onto the canvas
func (rc RenderContext) ApplyCamera(c *Canvas) {
	rc.ApplyViewport(c)
	if rc.World != nil {
		off := rc.World.Camera.Offset
		c.Translate(off.X, off.Y)
	}
}
