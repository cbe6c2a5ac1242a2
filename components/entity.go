package components

import (
	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
)

// Entity holds the fields shared by everything that moves in the world
type Entity struct {
	ID    string    `json:"id"`
	Pos   core.Vec2 `json:"pos"`
	Size  float64   `json:"size"`
	Color string    `json:"color"`
	Speed float64   `json:"speed"`
}

// EnemyKind is the enemy archetype, cosmetic only
type EnemyKind string

const (
	EnemyZombie EnemyKind = "zombie"
	EnemyRaider EnemyKind = "raider"
	EnemyWolf   EnemyKind = "wolf"
)

// Enemy is a hostile actor; it leaves the active set the frame its HP drops to 0
type Enemy struct {
	Entity
	HP         float64   `json:"hp"`
	Kind       EnemyKind `json:"kind"`
	AggroRange float64   `json:"aggroRange"`
	Damage     float64   `json:"damage"`
}

// Alive reports whether the enemy still has hit points
func (e *Enemy) Alive() bool {
	return e.HP > 0
}

// HealthFraction returns HP relative to the spawn maximum, clamped to [0,1]
func (e *Enemy) HealthFraction() float64 {
	f := e.HP / constants.EnemyMaxHP
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Particle is a short-lived visual dot
type Particle struct {
	Pos   core.Vec2 `json:"pos"`
	Vel   core.Vec2 `json:"vel"`
	Life  float64   `json:"life"`
	Color string    `json:"color"`
}

// Structure is a decorative building anchored at its top-left corner
type Structure struct {
	Pos core.Vec2 `json:"pos"`
}

// Center returns the point used for the safe-zone check
func (s Structure) Center() core.Vec2 {
	return s.Pos.Add(core.V(constants.SafeZoneCenterDX, constants.SafeZoneCenterDY))
}

// IsSafe reports whether p lies within the building's safe radius
func (s Structure) IsSafe(p core.Vec2) bool {
	return s.Center().Dist(p) < constants.SafeZoneRadius
}

// Quest is a narrative task returned by the quest service
type Quest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Target      string `json:"target"`
	Reward      string `json:"reward"`
	Completed   bool   `json:"completed"`
}
