package core

import (
	"math"
	"testing"
)

func TestVec2Operations(t *testing.T) {
	a := V(3, 4)
	b := V(1, 1)

	if got := a.Len(); got != 5 {
		t.Errorf("Expected length 5, got %v", got)
	}
	if got := a.Add(b); got != V(4, 5) {
		t.Errorf("Expected (4,5), got %v", got)
	}
	if got := a.Sub(b); got != V(2, 3) {
		t.Errorf("Expected (2,3), got %v", got)
	}
	if got := a.Scale(0.5); got != V(1.5, 2) {
		t.Errorf("Expected (1.5,2), got %v", got)
	}
	if got := V(0, 0).Dist(a); got != 5 {
		t.Errorf("Expected distance 5, got %v", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want float64
	}{
		{"zero stays zero", V(0, 0), 0},
		{"axis", V(0, -7), 1},
		{"diagonal", V(1, 1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize().Len()
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Expected length %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"Soldier", RoleSoldier, true},
		{"scout", RoleScout, true},
		{" MEDIC ", RoleMedic, true},
		{"tank", RoleTank, true},
		{"wizard", RoleSoldier, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRole(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Expected (%v,%v), got (%v,%v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}
