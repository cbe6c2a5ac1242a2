package renderers

import (
	"fmt"

	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/render"
)

// GameOverRenderer dims the frozen world and shows the final tally
type GameOverRenderer struct{}

func NewGameOverRenderer() *GameOverRenderer {
	return &GameOverRenderer{}
}

func (r *GameOverRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	if ctx.State != core.StateGameOver {
		return
	}
	ctx.ApplyViewport(c)
	const cx, cy = constants.ViewportWidth / 2, constants.ViewportHeight / 2

	c.FillRect(0, 0, constants.ViewportWidth, constants.ViewportHeight, dimOverlay)
	c.FillText("YOU DIED", cx, cy-30, render.AlignCenter, deathRed)

	if w := ctx.World; w != nil && w.Player != nil {
		p := w.Player
		c.FillText(fmt.Sprintf("%s reached level %d", p.Role, p.Level), cx, cy, render.AlignCenter, white)
		if w.Seed != "" {
			c.FillText("ROOM "+w.Seed, cx, cy+18, render.AlignCenter, hudMuted)
		}
	}
	c.FillText("ENTER menu  CTRL-C quit", cx, cy+50, render.AlignCenter, hudMuted)
}
