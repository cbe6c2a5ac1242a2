package renderers

import (
	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/render"
)

// StructureRenderer draws buildings and marks the one the player is sheltering in
type StructureRenderer struct{}

func NewStructureRenderer() *StructureRenderer {
	return &StructureRenderer{}
}

func (r *StructureRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	w := ctx.World
	if w == nil {
		return
	}
	ctx.ApplyCamera(c)
	minX, minY, maxX, maxY := c.UserBounds()

	const size = constants.StructureSize
	for i := range w.Structures {
		s := &w.Structures[i]
		x, y := s.Pos.X, s.Pos.Y

		// Bounds include the roof and label above, shadow below
		if x+size+20 < minX || x-20 > maxX || y+size+20 < minY || y-70 > maxY {
			continue
		}

		c.FillRect(x+10, y+10, size+20, size+20, structureShadow)
		c.FillRect(x, y, size, size, structureWall)
		c.StrokeLine(x, y+20, x+size, y+20, 2, structureBeam)
		c.StrokeLine(x, y+40, x+size, y+40, 2, structureBeam)
		c.FillPolygon(structureRoof,
			core.V(x-10, y),
			core.V(x+size/2, y-size/2),
			core.V(x+size+10, y),
		)
		c.FillRect(x+35, y+60, 30, 40, structureDoor)

		if w.Player != nil && s.IsSafe(w.Player.Pos) {
			c.FillText("SAFE", x+20, y-60, render.AlignLeft, white)
		}
	}
}
