package solver

import "testing"

func TestCanDisplay(t *testing.T) {
	deck := NewDeck([]Role{RoleConfessor, RoleLover, RoleDrunk, RoleMinion})
	tests := []struct {
		role, shown Role
		want        bool
	}{
		{RoleConfessor, RoleConfessor, true},
		{RoleConfessor, RoleLover, false},
		{RoleMinion, RoleConfessor, true},  // evil disguises as any deck role
		{RoleMinion, RoleHunter, false},    // but not one outside the deck
		{RoleDrunk, RoleLover, true},       // drunk believes it is a villager
		{RoleDrunk, RoleMinion, false},     // never an evil role
		{RoleDoppelganger, RoleLover, true},
		{RoleDoppelganger, RoleMinion, false},
	}
	for _, tt := range tests {
		if got := canDisplay(deck, tt.role, tt.shown); got != tt.want {
			t.Errorf("canDisplay(%s shows %s) = %v, want %v", tt.role, tt.shown, got, tt.want)
		}
	}
}

func TestAssignmentsAreDistinctAndComplete(t *testing.T) {
	p := &Puzzle{
		Deck:   NewDeck([]Role{RoleConfessor, RoleConfessor, RoleGemcrafter, RoleMinion}),
		Counts: Counts{Villagers: 3, Minions: 1},
		Cards:  make([]Card, 4),
	}
	seen := make(map[string]bool)
	for _, first := range firstSeatCandidates(p) {
		forEachAssignment(p, first, func(roles []Role) bool {
			key := assignmentKey(roles)
			if seen[key] {
				t.Fatalf("assignment %v emitted twice", roles)
			}
			seen[key] = true
			return true
		})
	}
	// Multiset permutations of {C,C,G,M} over 4 seats: 4!/2! = 12.
	if len(seen) != 12 {
		t.Fatalf("got %d distinct assignments, want 12", len(seen))
	}
}

func TestConfirmedPrunesDuringGeneration(t *testing.T) {
	p := &Puzzle{
		Deck:   NewDeck([]Role{RoleConfessor, RoleGemcrafter, RoleMinion}),
		Counts: Counts{Villagers: 2, Minions: 1},
		Cards: []Card{
			{Confirmed: RoleGemcrafter},
			{},
			{},
		},
	}
	for _, first := range firstSeatCandidates(p) {
		forEachAssignment(p, first, func(roles []Role) bool {
			if roles[0] != RoleGemcrafter {
				t.Fatalf("assignment %v violates confirmed seat", roles)
			}
			return true
		})
	}
}

func TestDoppelgangerCopiesGoodRole(t *testing.T) {
	p := &Puzzle{
		Deck:   NewDeck([]Role{RoleHunter, RoleDoppelganger, RoleMinion}),
		Counts: Counts{Villagers: 1, Outcasts: 1, Minions: 1},
		Cards:  make([]Card, 3),
	}
	roles := []Role{RoleDoppelganger, RoleHunter, RoleMinion}
	sawCopy := false
	forEachResolution(p, roles, func(w *World) bool {
		if w.Display[0] != RoleHunter {
			t.Fatalf("doppelganger displayed %s, want the copied Hunter", w.Display[0])
		}
		sawCopy = true
		return true
	})
	if !sawCopy {
		t.Fatal("no resolution emitted for the doppelganger")
	}
}

func TestCatalogCoversAllRoles(t *testing.T) {
	for _, r := range AllRoles() {
		if !Known(r) {
			t.Errorf("role %s missing catalog entry", r)
		}
		if r.Category() == CategoryNone {
			t.Errorf("role %s has no category", r)
		}
	}
	if Known(RoleNone) {
		t.Error("RoleNone should not be in the catalog")
	}
}
