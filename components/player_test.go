package components

import (
	"testing"

	"github.com/lixenwraith/pixel-survivor/core"
)

func TestNewPlayerRoleStats(t *testing.T) {
	tests := []struct {
		role    core.Role
		hp      float64
		speed   float64
		stamina float64
	}{
		{core.RoleSoldier, 150, 3, 100},
		{core.RoleScout, 80, 5, 150},
		{core.RoleMedic, 100, 4, 100},
		{core.RoleTank, 200, 2, 80},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			p := NewPlayer(tt.role)
			if p.HP != tt.hp || p.MaxHP != tt.hp {
				t.Errorf("Expected hp %v/%v, got %v/%v", tt.hp, tt.hp, p.HP, p.MaxHP)
			}
			if p.Speed != tt.speed {
				t.Errorf("Expected speed %v, got %v", tt.speed, p.Speed)
			}
			if p.MaxStamina != tt.stamina {
				t.Errorf("Expected stamina %v, got %v", tt.stamina, p.MaxStamina)
			}
			if p.Level != 1 || p.XP != 0 {
				t.Errorf("Expected level 1 xp 0, got level %d xp %d", p.Level, p.XP)
			}
			if len(p.Inventory) != 1 || p.Inventory[0] != Sword {
				t.Errorf("Expected starting sword, got %v", p.Inventory)
			}
		})
	}
}

func TestConsumeClampsToMaxHP(t *testing.T) {
	p := NewPlayer(core.RoleMedic)
	p.HP = 90
	p.AddItem(Medkit)

	if !p.Consume(1) {
		t.Fatal("Expected medkit to be consumed")
	}
	if p.HP != p.MaxHP {
		t.Errorf("Expected hp clamped to %v, got %v", p.MaxHP, p.HP)
	}
	if len(p.Inventory) != 1 {
		t.Errorf("Expected 1 item left, got %d", len(p.Inventory))
	}
}

func TestConsumeKeepsWeapons(t *testing.T) {
	p := NewPlayer(core.RoleSoldier)
	p.HP = 10

	if p.Consume(0) {
		t.Error("Expected weapon not to be consumed")
	}
	if p.HP != 10 || len(p.Inventory) != 1 {
		t.Errorf("Expected unchanged player, got hp %v inventory %d", p.HP, len(p.Inventory))
	}
	if p.Consume(5) || p.Consume(-1) {
		t.Error("Expected out-of-range consume to fail")
	}
}

func TestRemoveItemPreservesOrder(t *testing.T) {
	p := NewPlayer(core.RoleScout)
	p.AddItem(Apple)
	p.AddItem(Medkit)

	it, ok := p.RemoveItem(1)
	if !ok || it != Apple {
		t.Fatalf("Expected apple removed, got %v %v", it, ok)
	}
	if p.Inventory[0] != Sword || p.Inventory[1] != Medkit {
		t.Errorf("Expected [sword medkit], got %v", p.Inventory)
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := NewPlayer(core.RoleTank)
	c := p.Clone()

	p.AddItem(Apple)
	p.HP = 1

	if len(c.Inventory) != 1 {
		t.Errorf("Expected clone inventory untouched, got %d items", len(c.Inventory))
	}
	if c.HP != 200 {
		t.Errorf("Expected clone hp 200, got %v", c.HP)
	}
}

func TestStructureSafeZone(t *testing.T) {
	s := Structure{Pos: core.V(100, 100)}

	if !s.IsSafe(core.V(150, 150)) {
		t.Error("Expected centre to be safe")
	}
	if !s.IsSafe(core.V(150, 229)) {
		t.Error("Expected 79 units from centre to be safe")
	}
	if s.IsSafe(core.V(150, 230)) {
		t.Error("Expected 80 units from centre to be unsafe")
	}
}
