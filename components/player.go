package components

import (
	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
)

// RoleStats is the base stat line applied at character creation
type RoleStats struct {
	HP         float64
	Speed      float64
	MaxStamina float64
}

var roleStats = map[core.Role]RoleStats{
	core.RoleSoldier: {HP: 150, Speed: 3, MaxStamina: 100},
	core.RoleScout:   {HP: 80, Speed: 5, MaxStamina: 150},
	core.RoleMedic:   {HP: 100, Speed: 4, MaxStamina: 100},
	core.RoleTank:    {HP: 200, Speed: 2, MaxStamina: 80},
}

// StatsFor returns the base stats of a role, unknown roles get Soldier stats
func StatsFor(r core.Role) RoleStats {
	if s, ok := roleStats[r]; ok {
		return s
	}
	return roleStats[core.RoleSoldier]
}

// Player is the controlled character
type Player struct {
	Entity
	HP         float64        `json:"hp"`
	MaxHP      float64        `json:"maxHp"`
	Stamina    float64        `json:"stamina"`
	MaxStamina float64        `json:"maxStamina"`
	Role       core.Role      `json:"role"`
	Inventory  []Item         `json:"inventory"`
	XP         int            `json:"xp"`
	Level      int            `json:"level"`
	Attacking  bool           `json:"isAttacking"`
	Direction  core.Direction `json:"direction"`
}

// NewPlayer creates a level 1 character at the origin carrying a sword
func NewPlayer(role core.Role) *Player {
	stats := StatsFor(role)
	return &Player{
		Entity: Entity{
			ID:    constants.PlayerID,
			Size:  constants.PlayerSize,
			Color: constants.PlayerColor,
			Speed: stats.Speed,
		},
		HP:         stats.HP,
		MaxHP:      stats.HP,
		Stamina:    stats.MaxStamina,
		MaxStamina: stats.MaxStamina,
		Role:       role,
		Inventory:  []Item{Sword},
		Level:      1,
		Direction:  core.FacingRight,
	}
}

// Clone returns a deep copy safe to hand to another goroutine
func (p *Player) Clone() Player {
	c := *p
	c.Inventory = append([]Item(nil), p.Inventory...)
	return c
}

// AddItem appends to the inventory
func (p *Player) AddItem(it Item) {
	p.Inventory = append(p.Inventory, it)
}

// RemoveItem deletes the item at index preserving order
func (p *Player) RemoveItem(index int) (Item, bool) {
	if index < 0 || index >= len(p.Inventory) {
		return Item{}, false
	}
	it := p.Inventory[index]
	p.Inventory = append(p.Inventory[:index], p.Inventory[index+1:]...)
	return it, true
}

// Heal raises HP by amount, never above MaxHP
func (p *Player) Heal(amount float64) {
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// Consume uses the item at index: food heals and is removed, anything else is kept
func (p *Player) Consume(index int) bool {
	if index < 0 || index >= len(p.Inventory) {
		return false
	}
	it := p.Inventory[index]
	if !it.Consumable() {
		return false
	}
	p.Heal(it.Value)
	p.RemoveItem(index)
	return true
}

// XPToNextLevel returns the XP threshold for the current level
func (p *Player) XPToNextLevel() int {
	return constants.XPPerLevel * p.Level
}

// Dead reports whether HP has reached zero
func (p *Player) Dead() bool {
	return p.HP <= 0
}
