package constants

import "time"

// Logical viewport, the area the camera keeps the player centred in
const (
	ViewportWidth  = 800
	ViewportHeight = 600
	TileSize       = 32
)

// InviteCodeLength is the number of characters in a room code
const InviteCodeLength = 6

// World generation
const (
	BaseEnemyCount      = 15
	EnemyCountSpread    = 10
	BaseBuildingCount   = 5
	BuildingCountSpread = 5

	EnemySpawnExtent    = 1000.0
	BuildingSpawnExtent = 900.0
)

// Enemy defaults
const (
	EnemySize        = 24.0
	EnemyColor       = "#8b0000"
	EnemyBaseSpeed   = 1.5
	EnemySpeedSpread = 1.0
	EnemyMaxHP       = 30.0
	EnemyDamage      = 5.0
	EnemyAggroRange  = 300.0
	RaiderChance     = 0.3
)

// Player defaults
const (
	PlayerID    = "p1"
	PlayerSize  = 32.0
	PlayerColor = "blue"
)

// Combat
const (
	// ChaseMinDistance stops enemies from stacking on the player
	ChaseMinDistance = 20.0

	ContactRange  = 30.0
	ContactChance = 0.02

	AttackRange  = 70.0
	AttackDamage = 2.0
	// KnockbackFactor is the fraction of the separation vector added to a struck enemy
	KnockbackFactor = 0.2

	KillXP     = 10
	LootChance = 0.3
)

// Progression
const (
	XPPerLevel   = 100
	LevelHPBonus = 10.0
)

// Movement speeds by role, independent of the stat table
const (
	DefaultMoveSpeed = 3.0
	ScoutMoveSpeed   = 5.0
	TankMoveSpeed    = 2.0
)

// Particles
const (
	ParticleDecay = 0.05

	HitParticleCount  = 5
	HitParticleSpread = 5.0
	HitParticleLife   = 1.0
	HitParticleColor  = "red"

	StrikeParticleSpread = 10.0
	StrikeParticleLife   = 0.5
	StrikeParticleColor  = "white"
)

// Walk cue gating
const (
	WalkCueWindow    = 300 * time.Millisecond
	WalkCueChance    = 0.1
	WalkCueThreshold = 0.1
)

// SnapshotInterval is the number of frames between player snapshots
const SnapshotInterval = 60

// Structures
const (
	StructureSize    = 100.0
	SafeZoneRadius   = 80.0
	SafeZoneCenterDX = 50.0
	SafeZoneCenterDY = 50.0
)

// Loop timing
const (
	DefaultFPS       = 60
	MaxFrameDelta    = 250 * time.Millisecond
	InputHoldTimeout = 150 * time.Millisecond
)
