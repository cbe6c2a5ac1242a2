package renderers

import (
	"math"

	"github.com/lixenwraith/pixel-survivor/asset"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/render"
)

// PlayerRenderer draws the character sprite and its weapon
type PlayerRenderer struct {
	assets *asset.Store
}

func NewPlayerRenderer(assets *asset.Store) *PlayerRenderer {
	return &PlayerRenderer{assets: assets}
}

func (r *PlayerRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	w := ctx.World
	if w == nil || w.Player == nil {
		return
	}
	p := w.Player
	t := ctx.TimeMS()

	ctx.ApplyCamera(c)
	c.Translate(p.Pos.X, p.Pos.Y)
	c.FillEllipse(0, 14, 12, 5, playerShadow)

	if p.Direction == core.FacingLeft {
		c.Scale(-1, 1)
	}

	bob := 0.0
	if w.Input.Moving(0) {
		bob = math.Sin(t/100) * 2
	}
	if p.Attacking {
		c.Rotate(math.Pi / 8)
	}

	knight := r.assets.Image(asset.SlotKnight)
	if p.Role == core.RoleSoldier && knight != nil {
		c.DrawImage(knight, -24, -48+bob, 48, 48)
	} else {
		body := bodyDefault
		if p.Role == core.RoleMedic {
			body = bodyMedic
		}
		c.FillRect(-16, -32+bob, 32, 32, body)
		c.FillRect(-12, -48+bob, 24, 24, playerHead)
		c.FillRect(-10, -25+bob, 20, 10, playerPack)
	}

	if p.Attacking {
		drawSwing(c, t, bob)
	} else {
		drawIdleWeapon(c, bob)
	}
}

func drawSwing(c *render.Canvas, t, bob float64) {
	c.StrokeArc(10, -20, 40, -math.Pi/2, math.Pi/2, 4, slashArc)

	swing := -math.Pi/4 + (3*math.Pi/4)*math.Sin(t/50)
	c.Save()
	c.Translate(10, -20+bob)
	c.Rotate(swing + math.Pi/4)
	c.FillRect(0, -2, 24, 4, bladeSwing)
	c.FillRect(0, 0, 24, 2, bladeEdge)
	c.FillRect(-6, -4, 6, 8, weaponGuard)
	c.FillRect(-10, -2, 4, 4, weaponGrip)
	c.Restore()
}

func drawIdleWeapon(c *render.Canvas, bob float64) {
	c.Save()
	c.Translate(10, -20+bob)
	c.Rotate(-math.Pi/4 + bob*0.1)
	c.FillRect(0, -2, 20, 4, bladeIdle)
	c.FillRect(-5, -4, 5, 8, weaponGuard)
	c.Restore()
}
