package systems

import (
	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/engine"
)

// MovementSystem applies player input, facing, camera follow and the player's audio cues
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

// MoveSpeed returns units per frame at full input for a role
// Only Scout and Tank deviate; the stat-table speed is not consulted
func MoveSpeed(r core.Role) float64 {
	switch r {
	case core.RoleScout:
		return constants.ScoutMoveSpeed
	case core.RoleTank:
		return constants.TankMoveSpeed
	default:
		return constants.DefaultMoveSpeed
	}
}

func (s *MovementSystem) Update(w *engine.World) {
	p := w.Player
	in := w.Input

	p.Pos = p.Pos.Add(in.Move.Scale(MoveSpeed(p.Role)))

	// Vertical-only input keeps the previous facing
	if in.Move.X > 0 {
		p.Direction = core.FacingRight
	} else if in.Move.X < 0 {
		p.Direction = core.FacingLeft
	}

	w.Camera.Follow(p.Pos)

	p.Attacking = in.Attacking
	if in.Attacking && !w.PrevInput.Attacking {
		w.PlayCue(core.CueAttack)
	}

	if in.Moving(constants.WalkCueThreshold) &&
		(w.Elapsed/constants.WalkCueWindow)%2 == 0 &&
		w.Rand.Float64() < constants.WalkCueChance {
		w.PlayCue(core.CueWalkStep)
	}
}
