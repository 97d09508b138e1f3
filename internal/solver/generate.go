package solver

// Candidate assignment enumeration: all ways to seat the deck's roles such
// that category counts match the request exactly. Illegal partial
// assignments are pruned as early as possible: a category already at its
// count, a confirmed-role mismatch, or a shown role the candidate could
// never display all fail before the branch deepens.

type generator struct {
	puzzle *Puzzle
	remain multiset
	counts Counts
	roles  []Role
}

// forEachAssignment enumerates complete assignments that fix the first
// seat to the given role, calling yield with a fresh copy of each. A false
// return from yield stops the enumeration.
func forEachAssignment(p *Puzzle, first Role, yield func([]Role) bool) bool {
	g := &generator{
		puzzle: p,
		remain: p.Deck.multiset(),
		counts: p.Counts,
		roles:  make([]Role, p.Seats()),
	}
	if !g.place(0, first) {
		return true
	}
	defer g.unplace(0, first)
	return g.descend(1, yield)
}

// firstSeatCandidates returns the distinct roles legal at seat 0. These
// are the top-level branches the solver partitions across workers.
func firstSeatCandidates(p *Puzzle) []Role {
	var out []Role
	for _, r := range p.Deck.Distinct() {
		if p.seatAllows(0, r) && p.Counts.Of(r.Category()) > 0 {
			out = append(out, r)
		}
	}
	return out
}

func (g *generator) descend(seat int, yield func([]Role) bool) bool {
	if seat == len(g.roles) {
		out := make([]Role, len(g.roles))
		copy(out, g.roles)
		return yield(out)
	}
	for r, left := range g.remain {
		if left == 0 {
			continue
		}
		if !g.place(seat, r) {
			continue
		}
		ok := g.descend(seat+1, yield)
		g.unplace(seat, r)
		if !ok {
			return false
		}
	}
	return true
}

// place claims one copy of the role for the seat, failing fast on any
// constraint the partial assignment already violates.
func (g *generator) place(seat int, r Role) bool {
	if g.remain[r] == 0 {
		return false
	}
	if !g.puzzle.seatAllows(seat, r) {
		return false
	}
	if !g.counts.dec(r.Category()) {
		return false
	}
	g.remain[r]--
	g.roles[seat] = r
	return true
}

func (g *generator) unplace(seat int, r Role) {
	g.remain[r]++
	g.counts.inc(r.Category())
	g.roles[seat] = RoleNone
}

// seatAllows checks the seat's hard observations against a candidate true
// role: the confirmed role is exact, and the shown role must be one the
// candidate could display through some resolution.
func (p *Puzzle) seatAllows(seat int, r Role) bool {
	card := p.Cards[seat]
	if card.Confirmed != RoleNone && card.Confirmed != r {
		return false
	}
	if card.Shown == RoleNone {
		return true
	}
	return canDisplay(p.Deck, r, card.Shown)
}

// canDisplay reports whether a seat truly holding r could show the given
// role: undisguised roles show themselves, evil seats show any deck role,
// the Drunk shows a villager role from the deck, and the Doppelganger
// shows whatever good role it copies.
func canDisplay(d Deck, r, shown Role) bool {
	switch {
	case r == shown:
		return true
	case r.Alignment() == AlignmentEvil:
		return d.Contains(shown)
	case r == RoleDrunk:
		return shown.Category() == CategoryVillager && d.Contains(shown)
	case r == RoleDoppelganger:
		return shown.Alignment() == AlignmentGood && shown != RoleDoppelganger && d.Contains(shown)
	}
	return false
}
