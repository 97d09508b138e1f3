package solver

import "testing"

// worldOf builds a world where every seat shows its true role and nothing
// is poisoned. Good enough for pure evaluation tests.
func worldOf(roles ...Role) *World {
	return &World{
		Roles:    roles,
		Display:  roles,
		Poisoned: make([]bool, len(roles)),
	}
}

func puzzleFor(w *World) *Puzzle {
	return &Puzzle{Cards: make([]Card, len(w.Roles))}
}

func TestGroupEvilClaimGrid(t *testing.T) {
	// Two targets, every evil-count combination, exact vs at-least.
	worlds := map[int]*World{
		0: worldOf(RoleJester, RoleConfessor, RoleGemcrafter, RoleMinion),
		1: worldOf(RoleJester, RoleMinion, RoleGemcrafter, RoleConfessor),
		2: worldOf(RoleJester, RoleMinion, RoleDemon, RoleConfessor),
	}
	tests := []struct {
		evils   int
		count   int
		atLeast bool
		want    bool
	}{
		{evils: 0, count: 1, atLeast: false, want: false},
		{evils: 1, count: 1, atLeast: false, want: true},
		{evils: 2, count: 1, atLeast: false, want: false},
		{evils: 0, count: 1, atLeast: true, want: false},
		{evils: 1, count: 1, atLeast: true, want: true},
		{evils: 2, count: 1, atLeast: true, want: true},
	}
	for _, tt := range tests {
		w := worlds[tt.evils]
		claim := GroupEvilClaim{Targets: []int{1, 2}, Count: tt.count, AtLeast: tt.atLeast}
		if got := Evaluate(w, puzzleFor(w), 0, claim); got != tt.want {
			t.Errorf("%d evils, atLeast=%v: got %v, want %v", tt.evils, tt.atLeast, got, tt.want)
		}
	}
}

func TestNeighborEvilClaim(t *testing.T) {
	w := worldOf(RoleLover, RoleMinion, RoleConfessor, RoleGemcrafter)
	p := puzzleFor(w)
	// Seat 0's neighbors are 3 and 1; seat 1 is evil.
	if !Evaluate(w, p, 0, NeighborEvilClaim{Count: 1}) {
		t.Error("count 1 should hold")
	}
	if Evaluate(w, p, 0, NeighborEvilClaim{Count: 0}) {
		t.Error("count 0 should not hold")
	}
}

func TestEvilDistanceClaim(t *testing.T) {
	// Six seats, evil at seat 3: distance 3 from seat 0, none closer.
	w := worldOf(RoleHunter, RoleConfessor, RoleGemcrafter, RoleMinion, RoleLover, RoleJester)
	p := puzzleFor(w)
	if !Evaluate(w, p, 0, EvilDistanceClaim{Distance: 3}) {
		t.Error("distance 3 should hold")
	}
	for _, d := range []int{1, 2, 4} {
		if Evaluate(w, p, 0, EvilDistanceClaim{Distance: d}) {
			t.Errorf("distance %d should not hold", d)
		}
	}
}

func TestRoleDistanceClaim(t *testing.T) {
	w := worldOf(RoleScout, RoleConfessor, RoleWitch, RoleLover)
	p := puzzleFor(w)
	if !Evaluate(w, p, 0, RoleDistanceClaim{Role: RoleWitch, Distance: 2}) {
		t.Error("witch at distance 2 should hold")
	}
	if Evaluate(w, p, 0, RoleDistanceClaim{Role: RoleWitch, Distance: 1}) {
		t.Error("witch at distance 1 should not hold")
	}
	// No Demon in play: every distance claim about it is false.
	if Evaluate(w, p, 0, RoleDistanceClaim{Role: RoleDemon, Distance: 2}) {
		t.Error("absent role should never match")
	}
}

func TestEvilGapClaim(t *testing.T) {
	w := worldOf(RoleBard, RoleMinion, RoleConfessor, RoleTwin, RoleLover)
	p := puzzleFor(w)
	// Evils at seats 1 and 3, two apart.
	if !Evaluate(w, p, 0, EvilGapClaim{Distance: 2}) {
		t.Error("gap 2 should hold")
	}
	if Evaluate(w, p, 0, EvilGapClaim{None: true}) {
		t.Error("two evils in play, None should not hold")
	}

	single := worldOf(RoleBard, RoleMinion, RoleConfessor)
	if !Evaluate(single, puzzleFor(single), 0, EvilGapClaim{None: true}) {
		t.Error("one evil in play, None should hold")
	}
}

func TestDirectionalClaim(t *testing.T) {
	// Five seats, evil at seat 1: strictly clockwise of seat 0.
	w := worldOf(RoleEnlightened, RoleMinion, RoleConfessor, RoleGemcrafter, RoleLover)
	p := puzzleFor(w)
	if !Evaluate(w, p, 0, DirectionalClaim{Dir: DirClockwise}) {
		t.Error("clockwise should hold")
	}
	if Evaluate(w, p, 0, DirectionalClaim{Dir: DirCounterClockwise}) {
		t.Error("counterclockwise should not hold")
	}

	// Evils equidistant both ways.
	eq := worldOf(RoleEnlightened, RoleMinion, RoleConfessor, RoleTwin, RoleLover)
	if !Evaluate(eq, puzzleFor(eq), 0, DirectionalClaim{Dir: DirEquidistant}) {
		t.Error("equidistant should hold")
	}
}

func TestWretchReadsEvil(t *testing.T) {
	w := worldOf(RoleGemcrafter, RoleWretch, RoleConfessor)
	p := puzzleFor(w)
	if Evaluate(w, p, 0, GoodSeatClaim{Target: 1}) {
		t.Error("the Wretch reads evil to claims despite being good-aligned")
	}
	if !Evaluate(w, p, 0, AlignmentClaim{Target: 1, Evil: true}) {
		t.Error("alignment claim should see the Wretch as evil")
	}
	if !w.Reliable(1) {
		t.Error("the Wretch itself is still a reliable speaker")
	}
}

func TestRoleIdentityClaim(t *testing.T) {
	w := worldOf(RoleMedium, RoleDrunk, RoleConfessor)
	p := puzzleFor(w)
	// The Medium sees true roles: the Drunk is a Drunk no matter what it shows.
	if !Evaluate(w, p, 0, RoleIdentityClaim{Target: 1, Role: RoleDrunk}) {
		t.Error("true-role identity should hold")
	}
	if Evaluate(w, p, 0, RoleIdentityClaim{Target: 1, Role: RoleConfessor}) {
		t.Error("shown role should not satisfy an identity claim")
	}
}

func TestHonestyClaim(t *testing.T) {
	w := worldOf(RoleJudge, RoleConfessor, RoleMinion)
	p := puzzleFor(w)
	p.Cards[1].Statement = SelfStatusClaim{}

	if !Evaluate(w, p, 0, HonestyClaim{Target: 1}) {
		t.Error("truthful confessor should judge truthy")
	}
	if Evaluate(w, p, 0, HonestyClaim{Target: 1, Lying: true}) {
		t.Error("truthful confessor should not judge lying")
	}
	// No statement to judge: neither reading holds.
	if Evaluate(w, p, 0, HonestyClaim{Target: 2}) || Evaluate(w, p, 0, HonestyClaim{Target: 2, Lying: true}) {
		t.Error("silent seat cannot be judged")
	}
}

func TestHonestyClaimCycle(t *testing.T) {
	w := worldOf(RoleJudge, RoleJudge, RoleMinion)
	p := puzzleFor(w)
	p.Cards[0].Statement = HonestyClaim{Target: 1}
	p.Cards[1].Statement = HonestyClaim{Target: 0}

	// Mutually referential judges cannot ground out; the claim is false
	// rather than looping forever.
	if Evaluate(w, p, 0, HonestyClaim{Target: 1}) {
		t.Error("cyclic judgment should evaluate false")
	}
}

func TestSelfStatusImpairment(t *testing.T) {
	w := worldOf(RoleConfessor, RoleWitch, RoleKnight)
	w.Poisoned[0] = true
	p := puzzleFor(w)

	if Evaluate(w, p, 0, SelfStatusClaim{}) {
		t.Error("poisoned confessor cannot truthfully claim good")
	}
	if !Evaluate(w, p, 0, SelfStatusClaim{Dizzy: true}) {
		t.Error("poisoned confessor is dizzy")
	}
	if w.Reliable(0) {
		t.Error("poisoned seat should not be reliable")
	}
}

// Truth-consistency regression: in every kept world of a generated search,
// every reliable seat's statement must evaluate true.
func TestTruthConsistencyProperty(t *testing.T) {
	p := &Puzzle{
		Deck:   NewDeck([]Role{RoleConfessor, RoleLover, RoleHunter, RoleWretch, RoleWitch, RoleMinion}),
		Counts: Counts{Villagers: 3, Outcasts: 1, Minions: 2},
		Cards: []Card{
			{Shown: RoleConfessor, Statement: SelfStatusClaim{}},
			{Shown: RoleLover, Statement: NeighborEvilClaim{Count: 1}},
			{Shown: RoleHunter, Statement: EvilDistanceClaim{Distance: 2}},
			{},
			{},
			{},
		},
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	_, enforce, err := auditObservations(p, false)
	if err != nil {
		t.Fatalf("audit: %v", err)
	}

	checked := 0
	for _, first := range firstSeatCandidates(p) {
		forEachAssignment(p, first, func(roles []Role) bool {
			forEachResolution(p, roles, func(w *World) bool {
				if !p.Consistent(w, enforce) {
					return true
				}
				checked++
				for seat, card := range p.Cards {
					if card.Statement == nil || !w.Reliable(seat) {
						continue
					}
					if !Evaluate(w, p, seat, card.Statement) {
						t.Fatalf("kept world %v: reliable seat %d statement is false", w.Roles, seat)
					}
				}
				return true
			})
			return true
		})
	}
	if checked == 0 {
		t.Fatal("property exercised no kept worlds")
	}
}
