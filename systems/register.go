package systems

import "github.com/lixenwraith/pixel-survivor/engine"

// RegisterAll installs the gameplay systems in their frame order
func RegisterAll(w *engine.World) {
	w.AddSystem(NewMovementSystem())
	w.AddSystem(NewEnemySystem())
	w.AddSystem(NewCullSystem())
	w.AddSystem(NewParticleSystem())
	w.AddSystem(NewProgressionSystem())
}
