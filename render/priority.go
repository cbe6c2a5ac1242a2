package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityStructures
	PriorityEnemies
	PriorityPlayer
	PriorityParticles
	PriorityUI
	PriorityOverlay
	PriorityDebug
)
