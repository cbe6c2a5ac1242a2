package systems

import (
	"github.com/lixenwraith/pixel-survivor/components"
	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/engine"
)

// EnemySystem resolves chase, contact damage and melee hits for every enemy
type EnemySystem struct{}

func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

func (s *EnemySystem) Priority() int {
	return constants.PriorityEnemy
}

func (s *EnemySystem) Update(w *engine.World) {
	p := w.Player

	for i := range w.Enemies {
		e := &w.Enemies[i]

		// All gates use the distance before this enemy moves
		dist := e.Pos.Dist(p.Pos)

		if dist < e.AggroRange && dist > constants.ChaseMinDistance {
			dir := p.Pos.Sub(e.Pos).Normalize()
			e.Pos = e.Pos.Add(dir.Scale(e.Speed))
		}

		if dist < constants.ContactRange && w.Rand.Float64() < constants.ContactChance {
			p.HP -= e.Damage
			w.PlayCue(core.CueHit)
			SpawnBurst(w, p.Pos, constants.HitParticleCount, constants.HitParticleSpread,
				constants.HitParticleLife, constants.HitParticleColor)
		}

		if p.Attacking && dist < constants.AttackRange && facingToward(p, e) {
			s.strike(w, e)
		}
	}
}

// facingToward is a coarse left/right test, vertical offset is ignored
func facingToward(p *components.Player, e *components.Enemy) bool {
	side := core.FacingLeft
	if e.Pos.X > p.Pos.X {
		side = core.FacingRight
	}
	return side == p.Direction
}

func (s *EnemySystem) strike(w *engine.World, e *components.Enemy) {
	p := w.Player
	wasAlive := e.Alive()

	e.HP -= constants.AttackDamage
	e.Pos = e.Pos.Add(e.Pos.Sub(p.Pos).Scale(constants.KnockbackFactor))
	SpawnBurst(w, e.Pos, 1, constants.StrikeParticleSpread,
		constants.StrikeParticleLife, constants.StrikeParticleColor)

	if wasAlive && !e.Alive() {
		p.XP += constants.KillXP
		if w.Rand.Float64() < constants.LootChance {
			p.AddItem(components.Apple)
		}
	}
}
