// Package worldgen places enemies and buildings from a room seed
package worldgen

import (
	"fmt"
	"time"

	"github.com/lixenwraith/pixel-survivor/components"
	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/vmath"
)

// Layout is the initial world population for one session
type Layout struct {
	Seed       string
	Enemies    []components.Enemy
	Structures []components.Structure
}

// Options tunes placement randomness
type Options struct {
	// Random overrides the placement source when set
	Random vmath.Random
	// Deterministic seeds placement from the seed string; otherwise the wall clock is used
	Deterministic bool
}

// DefaultOptions reproduces identical worlds for identical seeds
func DefaultOptions() Options {
	return Options{Deterministic: true}
}

// EnemyCount returns the number of enemies spawned for seed, always in [15,24]
func EnemyCount(seed string) int {
	return constants.BaseEnemyCount + vmath.CharCodeSum(seed)%constants.EnemyCountSpread
}

// BuildingCount returns the number of buildings placed for seed, always in [5,9]
func BuildingCount(seed string) int {
	return constants.BaseBuildingCount + vmath.CharCodeSum(seed)%constants.BuildingCountSpread
}

// Generate builds the layout for seed. Any string is accepted
func Generate(seed string, opts Options) Layout {
	rng := opts.Random
	if rng == nil {
		if opts.Deterministic {
			rng = vmath.NewFastRand(vmath.SeedHash(seed))
		} else {
			rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
		}
	}

	n := EnemyCount(seed)
	enemies := make([]components.Enemy, 0, n)
	for i := 0; i < n; i++ {
		enemies = append(enemies, newEnemy(i, rng))
	}

	m := BuildingCount(seed)
	structures := make([]components.Structure, 0, m)
	for i := 0; i < m; i++ {
		structures = append(structures, components.Structure{
			Pos: core.V(
				vmath.Spread(rng, 2*constants.BuildingSpawnExtent),
				vmath.Spread(rng, 2*constants.BuildingSpawnExtent),
			),
		})
	}

	return Layout{Seed: seed, Enemies: enemies, Structures: structures}
}

func newEnemy(i int, rng vmath.Random) components.Enemy {
	pos := core.V(
		vmath.Spread(rng, 2*constants.EnemySpawnExtent),
		vmath.Spread(rng, 2*constants.EnemySpawnExtent),
	)
	speed := vmath.Range(rng, constants.EnemyBaseSpeed, constants.EnemyBaseSpeed+constants.EnemySpeedSpread)

	kind := components.EnemyZombie
	if rng.Float64() < constants.RaiderChance {
		kind = components.EnemyRaider
	}

	return components.Enemy{
		Entity: components.Entity{
			ID:    fmt.Sprintf("enemy_%d", i),
			Pos:   pos,
			Size:  constants.EnemySize,
			Color: constants.EnemyColor,
			Speed: speed,
		},
		HP:         constants.EnemyMaxHP,
		Kind:       kind,
		AggroRange: constants.EnemyAggroRange,
		Damage:     constants.EnemyDamage,
	}
}
