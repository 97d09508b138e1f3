package table

import (
	"testing"

	"demondeduce/internal/solver"
)

func smallPuzzle() *solver.Puzzle {
	return &solver.Puzzle{
		Deck:   solver.NewDeck([]solver.Role{solver.RoleConfessor, solver.RoleMinion}),
		Counts: solver.Counts{Villagers: 1, Minions: 1},
		Cards:  make([]solver.Card, 2),
	}
}

func TestSetScenarioBumpsVersion(t *testing.T) {
	tbl := NewTable("abcd1234")

	v1, err := tbl.SetScenario(smallPuzzle())
	if err != nil {
		t.Fatal(err)
	}
	v2, err := tbl.SetScenario(smallPuzzle())
	if err != nil {
		t.Fatal(err)
	}
	if v2 <= v1 {
		t.Errorf("version did not advance: %d then %d", v1, v2)
	}

	if _, err := tbl.SetScenario(&solver.Puzzle{}); err == nil {
		t.Error("invalid scenario should be rejected")
	}
}

func TestObserve(t *testing.T) {
	tbl := NewTable("abcd1234")

	if _, err := tbl.Observe(0, solver.Card{}); err == nil {
		t.Error("observe before SetScenario should fail")
	}

	if _, err := tbl.SetScenario(smallPuzzle()); err != nil {
		t.Fatal(err)
	}
	v, err := tbl.Observe(1, solver.Card{Confirmed: solver.RoleMinion})
	if err != nil {
		t.Fatal(err)
	}

	p, pv := tbl.Snapshot()
	if pv != v {
		t.Errorf("snapshot version = %d, want %d", pv, v)
	}
	if p.Cards[1].Confirmed != solver.RoleMinion {
		t.Errorf("observation not recorded: %+v", p.Cards[1])
	}

	if _, err := tbl.Observe(5, solver.Card{}); err == nil {
		t.Error("out-of-range seat should fail")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	tbl := NewTable("abcd1234")
	if _, err := tbl.SetScenario(smallPuzzle()); err != nil {
		t.Fatal(err)
	}

	p, _ := tbl.Snapshot()
	p.Cards[0].Confirmed = solver.RoleDemon

	fresh, _ := tbl.Snapshot()
	if fresh.Cards[0].Confirmed == solver.RoleDemon {
		t.Error("mutating a snapshot leaked into the table")
	}
}

func TestStaleResultDropped(t *testing.T) {
	tbl := NewTable("abcd1234")
	v, err := tbl.SetScenario(smallPuzzle())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := tbl.Observe(0, solver.Card{Shown: solver.RoleConfessor}); err != nil {
		t.Fatal(err)
	}

	if tbl.SetResult(v, &solver.Result{}) {
		t.Error("stale result should be dropped")
	}
	if res, _ := tbl.Result(); res != nil {
		t.Error("stale result leaked into the table")
	}

	_, cur := tbl.Snapshot()
	if !tbl.SetResult(cur, &solver.Result{Status: solver.StatusExhaustive}) {
		t.Error("current result should be kept")
	}
	if res, _ := tbl.Result(); res == nil || res.Status != solver.StatusExhaustive {
		t.Error("result not stored")
	}
}

func TestManager(t *testing.T) {
	m := NewManager()

	id := m.Create()
	if len(id) != 8 {
		t.Errorf("id %q should be 8 hex chars", id)
	}
	if m.Get(id) == nil {
		t.Error("created table not found")
	}
	if m.Get("missing") != nil {
		t.Error("unknown id should return nil")
	}
	if other := m.Create(); other == id {
		t.Error("ids should be unique")
	}
}
