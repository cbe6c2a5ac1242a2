package systems

import (
	"github.com/lixenwraith/pixel-survivor/components"
	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/engine"
)

// CullSystem removes enemies whose HP reached zero during the enemy pass
type CullSystem struct{}

func NewCullSystem() *CullSystem {
	return &CullSystem{}
}

func (s *CullSystem) Priority() int {
	return constants.PriorityCull
}

func (s *CullSystem) Update(w *engine.World) {
	alive := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Alive() {
			alive = append(alive, e)
		}
	}
	for i := len(alive); i < len(w.Enemies); i++ {
		w.Enemies[i] = components.Enemy{}
	}
	w.Enemies = alive
}
