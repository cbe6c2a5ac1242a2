package constants

// System priorities, lower values run first
const (
	PriorityMovement    = 10
	PriorityEnemy       = 20
	PriorityCull        = 30
	PriorityParticle    = 40
	PriorityProgression = 50
)
