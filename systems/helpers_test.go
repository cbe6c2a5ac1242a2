package systems

import (
	"time"

	"github.com/lixenwraith/pixel-survivor/components"
	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/engine"
	"github.com/lixenwraith/pixel-survivor/worldgen"
)

const frame = 16 * time.Millisecond

// constRand always returns the same value
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

type cueLog struct {
	cues []core.Cue
}

func (c *cueLog) Play(cue core.Cue) { c.cues = append(c.cues, cue) }

func (c *cueLog) count(cue core.Cue) int {
	n := 0
	for _, x := range c.cues {
		if x == cue {
			n++
		}
	}
	return n
}

// newTestWorld builds a world with the player at the origin and all systems registered
func newTestWorld(role core.Role, enemies ...components.Enemy) (*engine.World, *cueLog) {
	w := engine.NewWorld(worldgen.Layout{Seed: "SYS001", Enemies: enemies}, components.NewPlayer(role))
	w.Rand = constRand(0.5)
	cues := &cueLog{}
	w.Audio = cues
	RegisterAll(w)
	return w, cues
}

func enemyAt(x, y, hp float64) components.Enemy {
	return components.Enemy{
		Entity: components.Entity{
			ID:    "e",
			Pos:   core.V(x, y),
			Size:  constants.EnemySize,
			Speed: 2,
		},
		HP:         hp,
		Kind:       components.EnemyZombie,
		AggroRange: constants.EnemyAggroRange,
		Damage:     constants.EnemyDamage,
	}
}
