package render

import (
	"strings"
	"testing"

	"demondeduce/internal/solver"
)

func sampleResult() *solver.Result {
	return &solver.Result{
		Status: solver.StatusExhaustive,
		Worlds: 3,
		Assignments: []solver.Assignment{
			{Roles: []solver.Role{solver.RoleConfessor, solver.RoleMinion}, Support: 2},
			{Roles: []solver.Role{solver.RoleMinion, solver.RoleConfessor}, Support: 1},
		},
		Possible: [][]solver.PossibleRole{
			{
				{Role: solver.RoleConfessor, Category: solver.CategoryVillager},
				{Role: solver.RoleMinion, Category: solver.CategoryMinion},
			},
			{
				{Role: solver.RoleConfessor, Category: solver.CategoryVillager},
				{Role: solver.RoleMinion, Category: solver.CategoryMinion},
			},
		},
		Caveats: []string{"seat 1: statement not understood"},
	}
}

func TestResultPlain(t *testing.T) {
	out := New(false).Result(sampleResult())

	for _, want := range []string{
		"Exhaustive", "3 worlds", "2 assignments",
		"seat 0: Confessor, Minion",
		"Confessor, Minion  (x2)",
		"caveat: seat 1: statement not understood",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain renderer emitted ANSI escapes")
	}
}

func TestPuzzlePlain(t *testing.T) {
	p := &solver.Puzzle{
		Deck:   solver.NewDeck([]solver.Role{solver.RoleConfessor, solver.RoleMinion}),
		Counts: solver.Counts{Villagers: 1, Minions: 1},
		Cards: []solver.Card{
			{Shown: solver.RoleConfessor, Statement: solver.SelfStatusClaim{}},
			{},
		},
	}
	out := New(false).Puzzle(p)

	for _, want := range []string{
		"Deck: Confessor, Minion",
		"1 Villagers, 0 Outcasts, 1 Minions, 0 Demons",
		`seat 0: shown Confessor says "I am Good"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
