package renderers

import (
	"math"

	"github.com/lixenwraith/pixel-survivor/render"
)

// EnemyRenderer draws hopping enemies with their health bars
type EnemyRenderer struct{}

func NewEnemyRenderer() *EnemyRenderer {
	return &EnemyRenderer{}
}

func (r *EnemyRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	w := ctx.World
	if w == nil {
		return
	}
	ctx.ApplyCamera(c)
	minX, minY, maxX, maxY := c.UserBounds()

	hop := math.Abs(math.Sin(ctx.TimeMS()/150)) * 5

	for i := range w.Enemies {
		e := &w.Enemies[i]
		x, y := e.Pos.X, e.Pos.Y
		if x+40 < minX || x-40 > maxX || y+40 < minY || y-40 > maxY {
			continue
		}
		half := e.Size / 2

		c.FillEllipse(x, y+10, 10, 4, enemyShadow)
		c.FillRect(x-half, y-half-hop, e.Size, e.Size, render.ParseColor(e.Color))

		c.FillRect(x-5, y-5-hop, 3, 3, white)
		c.FillRect(x+2, y-5-hop, 3, 3, white)

		c.FillRect(x-15, y-30-hop, 30, 4, hpTrack)
		c.FillRect(x-15, y-30-hop, e.HealthFraction()*30, 4, hpFill)
	}
}
