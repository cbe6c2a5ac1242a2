package renderers

import (
	"math"

	"github.com/lixenwraith/pixel-survivor/asset"
	"github.com/lixenwraith/pixel-survivor/render"
)

const groundTile = 100

// GroundRenderer paints the terrain under the visible area
// A loaded ground texture repeats from the world origin, otherwise a checkered grid is drawn
type GroundRenderer struct {
	assets *asset.Store
}

func NewGroundRenderer(assets *asset.Store) *GroundRenderer {
	return &GroundRenderer{assets: assets}
}

func (r *GroundRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	if ctx.World == nil {
		return
	}
	ctx.ApplyCamera(c)
	minX, minY, maxX, maxY := c.UserBounds()

	if tex := r.assets.Image(asset.SlotGround); tex != nil {
		c.FillPattern(tex, minX, minY, maxX-minX, maxY-minY)
		return
	}

	x0 := int(math.Floor(minX/groundTile)) * groundTile
	y0 := int(math.Floor(minY/groundTile)) * groundTile
	for y := y0; float64(y) < maxY; y += groundTile {
		for x := x0; float64(x) < maxX; x += groundTile {
			p := groundDark
			if (x+y)%(2*groundTile) == 0 {
				p = groundLight
			}
			c.FillRect(float64(x), float64(y), groundTile, groundTile, p)
		}
	}
}
