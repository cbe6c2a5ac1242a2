package renderers

import (
	"github.com/lixenwraith/pixel-survivor/render"
)

const particleRadius = 3

// ParticleRenderer draws particles faded by remaining life
type ParticleRenderer struct{}

func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

func (r *ParticleRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	w := ctx.World
	if w == nil || len(w.Particles) == 0 {
		return
	}
	ctx.ApplyCamera(c)
	for i := range w.Particles {
		pt := &w.Particles[i]
		c.SetAlpha(pt.Life)
		c.FillCircle(pt.Pos.X, pt.Pos.Y, particleRadius, render.ParseColor(pt.Color))
	}
	c.SetAlpha(1)
}
