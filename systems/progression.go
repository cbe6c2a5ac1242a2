package systems

import (
	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/engine"
)

// ProgressionSystem grants at most one level per frame
type ProgressionSystem struct{}

func NewProgressionSystem() *ProgressionSystem {
	return &ProgressionSystem{}
}

func (s *ProgressionSystem) Priority() int {
	return constants.PriorityProgression
}

func (s *ProgressionSystem) Update(w *engine.World) {
	p := w.Player
	if p.XP < p.XPToNextLevel() {
		return
	}
	p.Level++
	p.XP = 0
	p.MaxHP += constants.LevelHPBonus
	p.HP = p.MaxHP
}
