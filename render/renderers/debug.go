package renderers

import (
	"sync/atomic"

	"github.com/lixenwraith/pixel-survivor/render"
	"github.com/lixenwraith/pixel-survivor/status"
)

// DebugRenderer lists registry metrics, hidden until toggled
type DebugRenderer struct {
	registry *status.Registry
	visible  atomic.Bool
}

func NewDebugRenderer(reg *status.Registry) *DebugRenderer {
	return &DebugRenderer{registry: reg}
}

// Toggle flips visibility and returns the new state
func (r *DebugRenderer) Toggle() bool {
	for {
		v := r.visible.Load()
		if r.visible.CompareAndSwap(v, !v) {
			return !v
		}
	}
}

func (r *DebugRenderer) IsVisible() bool {
	return r.visible.Load() && r.registry != nil
}

func (r *DebugRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	ctx.ApplyViewport(c)
	y := 110.0
	for _, m := range r.registry.Snapshot() {
		c.FillText(m.Key+" "+m.Value, hudMargin, y, render.AlignLeft, hudMuted)
		y += hudLineHeight
	}
}
