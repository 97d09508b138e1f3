package solver

// Ability resolution: for a fixed role assignment, enumerate every way the
// abilities in play could have resolved: which role each evil seat shows,
// which villager the Drunk believes it is, which seat the Doppelganger
// copies, which seat the Witch poisons. Structurally illegal combinations
// are pruned before a World is emitted.

// seatOption is one resolution branch for a single seat.
type seatOption struct {
	display Role
	poison  int // seat poisoned by this seat's ability, -1 if none
}

// forEachResolution emits every World for the assignment, calling yield for
// each. It stops early and returns false when yield returns false.
// Returns true if the assignment admits at least one structurally legal
// resolution and every emitted World was accepted by yield.
func forEachResolution(p *Puzzle, roles []Role, yield func(*World) bool) bool {
	n := len(roles)
	choices := make([][]seatOption, n)

	for i, r := range roles {
		card := p.Cards[i]
		switch {
		case r.Alignment() == AlignmentEvil:
			choices[i] = disguiseOptions(p, card.Shown)
		case r == RoleDrunk:
			choices[i] = drunkOptions(p, card.Shown)
		case r == RoleDoppelganger:
			choices[i] = copyOptions(roles, i, card.Shown)
		default:
			if card.Shown != RoleNone && card.Shown != r {
				return true // shown contradicts an undisguised role
			}
			choices[i] = []seatOption{{display: r, poison: -1}}
		}
		if len(choices[i]) == 0 {
			return true // no legal resolution for this seat
		}
		if r == RoleWitch {
			choices[i] = poisonOptions(roles, choices[i])
			if len(choices[i]) == 0 {
				return true
			}
		}
	}

	// Odometer over the per-seat choice lists.
	idx := make([]int, n)
	for {
		w := &World{
			Roles:    roles,
			Display:  make([]Role, n),
			Poisoned: make([]bool, n),
		}
		for i := range idx {
			opt := choices[i][idx[i]]
			w.Display[i] = opt.display
			if opt.poison >= 0 {
				w.Poisoned[opt.poison] = true
			}
		}
		if !yield(w) {
			return false
		}

		i := n - 1
		for i >= 0 {
			idx[i]++
			if idx[i] < len(choices[i]) {
				break
			}
			idx[i] = 0
			i--
		}
		if i < 0 {
			return true
		}
	}
}

// disguiseOptions enumerates what an evil seat can show: any distinct role
// present in the deck, or exactly the observed shown role when one exists.
func disguiseOptions(p *Puzzle, shown Role) []seatOption {
	if shown != RoleNone {
		if !p.Deck.Contains(shown) {
			return nil
		}
		return []seatOption{{display: shown, poison: -1}}
	}
	var opts []seatOption
	for _, r := range p.Deck.Distinct() {
		opts = append(opts, seatOption{display: r, poison: -1})
	}
	return opts
}

// drunkOptions enumerates the villager role the Drunk believes it is.
func drunkOptions(p *Puzzle, shown Role) []seatOption {
	if shown != RoleNone {
		if shown.Category() != CategoryVillager || !p.Deck.Contains(shown) {
			return nil
		}
		return []seatOption{{display: shown, poison: -1}}
	}
	var opts []seatOption
	for _, r := range p.Deck.DistinctOf(CategoryVillager) {
		opts = append(opts, seatOption{display: r, poison: -1})
	}
	return opts
}

// copyOptions enumerates the seats a Doppelganger can copy: any other seat
// holding a good-aligned role. The copied role becomes its display.
func copyOptions(roles []Role, seat int, shown Role) []seatOption {
	var opts []seatOption
	seen := make(map[Role]bool)
	for t, r := range roles {
		if t == seat || r.Alignment() != AlignmentGood || r == RoleDoppelganger {
			continue
		}
		if shown != RoleNone && r != shown {
			continue
		}
		if seen[r] {
			continue // copying either of two identical roles yields the same world
		}
		seen[r] = true
		opts = append(opts, seatOption{display: r, poison: -1})
	}
	return opts
}

// poisonOptions crosses a Witch seat's display choices with its poison
// targets: every good-aligned seat is a legal target.
func poisonOptions(roles []Role, displays []seatOption) []seatOption {
	var targets []int
	for t, r := range roles {
		if r.Alignment() == AlignmentGood {
			targets = append(targets, t)
		}
	}
	var opts []seatOption
	for _, d := range displays {
		for _, t := range targets {
			opts = append(opts, seatOption{display: d.display, poison: t})
		}
	}
	return opts
}
