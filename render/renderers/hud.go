package renderers

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/pixel-survivor/components"
	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/render"
)

// HUDInfo is session state shown over the world
type HUDInfo struct {
	RoomCode     string
	Quests       []components.Quest // newest first
	QuestPending bool
	Muted        bool
	Message      string
}

// HUDSource supplies HUD state, called on the render goroutine
type HUDSource func() HUDInfo

const (
	hudMargin      = 20
	hudBarWidth    = 200
	hudMaxQuests   = 3
	hudMaxSlots    = 9
	hudLineHeight  = 16
	hudControlHint = "WASD move  SPACE attack  1-9 use  Q quest  F2 save  M mute  P pause  ESC menu"
)

// HUDRenderer draws vitals, quests, inventory and hints in viewport space
type HUDRenderer struct {
	source HUDSource
}

func NewHUDRenderer(source HUDSource) *HUDRenderer {
	return &HUDRenderer{source: source}
}

func (r *HUDRenderer) Render(ctx render.RenderContext, c *render.Canvas) {
	w := ctx.World
	if w == nil || w.Player == nil || ctx.State == core.StateGameOver {
		return
	}
	var info HUDInfo
	if r.source != nil {
		info = r.source()
	}
	p := w.Player

	ctx.ApplyViewport(c)

	// Vitals
	c.FillRect(hudMargin-6, hudMargin-6, hudBarWidth+12, 62, hudPanel)
	c.FillRect(hudMargin, hudMargin, hudBarWidth, 14, hudTrack)
	c.FillRect(hudMargin, hudMargin, hudBarWidth*fraction(p.HP, p.MaxHP), 14, hudHP)
	c.FillText(fmt.Sprintf("HP %.0f/%.0f", max(p.HP, 0), p.MaxHP), hudMargin+4, hudMargin+11, render.AlignLeft, white)

	c.FillText(fmt.Sprintf("LVL %d  %s", p.Level, strings.ToUpper(p.Role.String())), hudMargin, hudMargin+32, render.AlignLeft, white)
	c.FillRect(hudMargin, hudMargin+40, hudBarWidth, 6, hudTrack)
	c.FillRect(hudMargin, hudMargin+40, hudBarWidth*fraction(float64(p.XP), float64(p.XPToNextLevel())), 6, hudXP)

	// Room and quests
	right := float64(constants.ViewportWidth - hudMargin)
	if info.RoomCode != "" {
		c.FillText("ROOM "+info.RoomCode, right, hudMargin+11, render.AlignRight, white)
	}
	y := float64(hudMargin + 11 + 2*hudLineHeight)
	if info.QuestPending {
		c.FillText("Contacting HQ...", right, y, render.AlignRight, hudMuted)
		y += hudLineHeight
	}
	for i, q := range info.Quests {
		if i == hudMaxQuests {
			break
		}
		c.FillText(q.Title, right, y, render.AlignRight, hudAccent)
		c.FillText(q.Target+" / "+q.Reward, right, y+hudLineHeight, render.AlignRight, white)
		y += 2.5 * hudLineHeight
	}

	// Inventory
	slotY := float64(constants.ViewportHeight - hudMargin - hudLineHeight)
	x := float64(hudMargin)
	for i, it := range p.Inventory {
		if i == hudMaxSlots {
			c.FillText(fmt.Sprintf("+%d", len(p.Inventory)-hudMaxSlots), x, slotY, render.AlignLeft, hudMuted)
			break
		}
		label := fmt.Sprintf("[%d] %s", i+1, it.Name)
		col := white
		if !it.Consumable() {
			col = hudMuted
		}
		c.FillText(label, x, slotY, render.AlignLeft, col)
		x += float64(len(label)+2) * 7
	}

	hint := hudControlHint
	if info.Muted {
		hint += "  [MUTED]"
	}
	c.FillText(hint, constants.ViewportWidth/2, constants.ViewportHeight-6, render.AlignCenter, hudMuted)

	if info.Message != "" {
		c.FillText(info.Message, constants.ViewportWidth/2, hudMargin+11, render.AlignCenter, hudAccent)
	}

	if ctx.Paused {
		c.FillRect(0, 0, constants.ViewportWidth, constants.ViewportHeight, dimOverlay)
		c.FillText("PAUSED", constants.ViewportWidth/2, constants.ViewportHeight/2, render.AlignCenter, white)
		c.FillText("P resume  ESC menu", constants.ViewportWidth/2, constants.ViewportHeight/2+hudLineHeight, render.AlignCenter, hudMuted)
	}
}

func fraction(v, total float64) float64 {
	if total <= 0 || v <= 0 {
		return 0
	}
	if v >= total {
		return 1
	}
	return v / total
}
