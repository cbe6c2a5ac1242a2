package renderers

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/pixel-survivor/components"
	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/render"
)

// MenuInfo is the character creation form state
type MenuInfo struct {
	Code        string
	Role        core.Role
	CanContinue bool
	Message     string
}

// MenuSource supplies menu state
type MenuSource func() MenuInfo

// MenuRenderer draws the title screen with room code entry and role choice
type MenuRenderer struct {
	source MenuSource
}

func NewMenuRenderer(source MenuSource) *MenuRenderer {
	return &MenuRenderer{source: source}
}

func (r *MenuRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	if ctx.State != core.StateMenu {
		return
	}
	var info MenuInfo
	if r.source != nil {
		info = r.source()
	}

	ctx.ApplyViewport(c)
	const cx = constants.ViewportWidth / 2

	c.FillRect(0, 0, constants.ViewportWidth, constants.ViewportHeight, groundDark)
	c.FillRect(cx-220, 90, 440, 420, hudPanel)

	c.FillText("PIXEL SURVIVOR", cx, 140, render.AlignCenter, hudXP)
	c.FillText("Survive the wastes. Find shelter. Level up.", cx, 165, render.AlignCenter, hudMuted)

	code := info.Code + strings.Repeat("_", max(0, constants.InviteCodeLength-len(info.Code)))
	c.FillText("ROOM CODE  "+code, cx, 215, render.AlignCenter, white)
	c.FillText("(leave short for a random room)", cx, 232, render.AlignCenter, hudMuted)

	y := 275.0
	for _, role := range core.Roles {
		s := components.StatsFor(role)
		marker := "  "
		col := white
		if role == info.Role {
			marker = "> "
			col = hudAccent
		}
		line := fmt.Sprintf("%s%-8s HP %3.0f  STAMINA %3.0f", marker, role, s.HP, s.MaxStamina)
		c.FillText(line, cx, y, render.AlignCenter, col)
		y += 20
	}

	hint := "ENTER start  UP/DOWN role  CTRL-C quit"
	if info.CanContinue {
		hint = "ENTER start  UP/DOWN role  F3 continue  CTRL-C quit"
	}
	c.FillText(hint, cx, 470, render.AlignCenter, hudMuted)

	if info.Message != "" {
		c.FillText(info.Message, cx, 495, render.AlignCenter, hudHP)
	}
}
