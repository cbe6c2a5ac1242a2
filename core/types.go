package core

import "strings"

// Role is the player's class, resolved once at character creation
type Role int

const (
	RoleSoldier Role = iota
	RoleScout
	RoleMedic
	RoleTank
)

// Roles lists all roles in menu order
var Roles = []Role{RoleSoldier, RoleScout, RoleMedic, RoleTank}

var roleNames = [...]string{"Soldier", "Scout", "Medic", "Tank"}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "Unknown"
	}
	return roleNames[r]
}

// ParseRole resolves a role name case-insensitively
func ParseRole(s string) (Role, bool) {
	for i, name := range roleNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Role(i), true
		}
	}
	return RoleSoldier, false
}

// MarshalText encodes the role by name for save files
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a role name, unknown names fall back to Soldier
func (r *Role) UnmarshalText(b []byte) error {
	role, _ := ParseRole(string(b))
	*r = role
	return nil
}

// Direction is the horizontal facing of the player
type Direction int

const (
	FacingRight Direction = iota
	FacingLeft
)

func (d Direction) String() string {
	if d == FacingLeft {
		return "left"
	}
	return "right"
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	if string(b) == "left" {
		*d = FacingLeft
	} else {
		*d = FacingRight
	}
	return nil
}

// Cue is a fire-and-forget audio event emitted by the simulation
type Cue int

const (
	CueWalkStep Cue = iota
	CueAttack
	CueHit
	CueBackgroundStart
	CueBackgroundStop
	CueCount
)

var cueNames = [...]string{"walk", "attack", "hit", "bgm_start", "bgm_stop"}

func (c Cue) String() string {
	if c < 0 || c >= CueCount {
		return "unknown"
	}
	return cueNames[c]
}

// GameState is the application-level phase
type GameState int32

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StatePlaying:
		return "PLAYING"
	case StatePaused:
		return "PAUSED"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}
