package renderers

import (
	"github.com/lixenwraith/pixel-survivor/asset"
	"github.com/lixenwraith/pixel-survivor/render"
	"github.com/lixenwraith/pixel-survivor/status"
)

// Sources wires session state into the interface layers
type Sources struct {
	HUD  HUDSource
	Menu MenuSource
}

// RegisterAll installs the full layer stack and returns the debug layer for toggling
func RegisterAll(o *render.RenderOrchestrator, assets *asset.Store, reg *status.Registry, src Sources) *DebugRenderer {
	o.Register(NewGroundRenderer(assets), render.PriorityBackground)
	o.Register(NewStructureRenderer(), render.PriorityStructures)
	o.Register(NewEnemyRenderer(), render.PriorityEnemies)
	o.Register(NewPlayerRenderer(assets), render.PriorityPlayer)
	o.Register(NewParticleRenderer(), render.PriorityParticles)
	o.Register(NewHUDRenderer(src.HUD), render.PriorityUI)
	o.Register(NewMenuRenderer(src.Menu), render.PriorityOverlay)
	o.Register(NewGameOverRenderer(), render.PriorityOverlay)

	debug := NewDebugRenderer(reg)
	o.Register(debug, render.PriorityDebug)
	return debug
}
