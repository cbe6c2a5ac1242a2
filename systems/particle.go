package systems

import (
	"github.com/lixenwraith/pixel-survivor/components"
	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/engine"
	"github.com/lixenwraith/pixel-survivor/vmath"
)

// ParticleSystem integrates particle motion and decay
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (s *ParticleSystem) Priority() int {
	return constants.PriorityParticle
}

func (s *ParticleSystem) Update(w *engine.World) {
	alive := w.Particles[:0]
	for _, pt := range w.Particles {
		pt.Pos = pt.Pos.Add(pt.Vel)
		pt.Life -= constants.ParticleDecay
		if pt.Life > 0 {
			alive = append(alive, pt)
		}
	}
	// Clear the tail so dropped particles are not retained
	for i := len(alive); i < len(w.Particles); i++ {
		w.Particles[i] = components.Particle{}
	}
	w.Particles = alive
}

// SpawnBurst emits n particles at pos with per-axis velocity uniform in [-spread/2, spread/2)
func SpawnBurst(w *engine.World, pos core.Vec2, n int, spread, life float64, color string) {
	for i := 0; i < n; i++ {
		w.Particles = append(w.Particles, components.Particle{
			Pos:   pos,
			Vel:   core.V(vmath.Spread(w.Rand, spread), vmath.Spread(w.Rand, spread)),
			Life:  life,
			Color: color,
		})
	}
}
