package renderers

import "github.com/lixenwraith/pixel-survivor/render"

// Ground
var (
	groundLight = render.ParseColor("#2ecc71")
	groundDark  = render.ParseColor("#27ae60")
)

// Structures
var (
	structureShadow = render.ParseColor("rgba(0,0,0,0.5)")
	structureWall   = render.ParseColor("#5d4037")
	structureBeam   = render.ParseColor("#3e2723")
	structureRoof   = render.ParseColor("#8d6e63")
	structureDoor   = render.ParseColor("#212121")
)

// Actors
var (
	enemyShadow  = render.ParseColor("rgba(0,0,0,0.3)")
	playerShadow = render.ParseColor("rgba(0,0,0,0.4)")
	bodyDefault  = render.ParseColor("#3498db")
	bodyMedic    = render.ParseColor("#ecf0f1")
	playerHead   = render.ParseColor("#f1c40f")
	playerPack   = render.ParseColor("#2c3e50")
)

// Weapon
var (
	slashArc    = render.ParseColor("rgba(255,255,255,0.8)")
	bladeSwing  = render.ParseColor("#95a5a6")
	bladeEdge   = render.ParseColor("#7f8c8d")
	bladeIdle   = render.ParseColor("#bdc3c7")
	weaponGuard = render.ParseColor("#e67e22")
	weaponGrip  = render.ParseColor("#d35400")
)

// Interface
var (
	white      = render.ParseColor("white")
	hpTrack    = render.ParseColor("red")
	hpFill     = render.ParseColor("#00ff00")
	hudPanel   = render.ParseColor("rgba(0,0,0,0.55)")
	hudHP      = render.ParseColor("#e74c3c")
	hudXP      = render.ParseColor("#f1c40f")
	hudTrack   = render.ParseColor("#333333")
	hudMuted   = render.ParseColor("#95a5a6")
	hudAccent  = render.ParseColor("#f39c12")
	dimOverlay = render.ParseColor("rgba(0,0,0,0.5)")
	deathRed   = render.ParseColor("#c0392b")
)
