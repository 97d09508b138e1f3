package solver

// Truth evaluation of statements against a concrete world. Every claim is
// a pure predicate over the world's role assignment and seat geometry.

// Evaluate computes the truth value of a statement made by the given seat
// under the given world. The puzzle supplies other seats' observed
// statements for honesty claims.
func Evaluate(w *World, p *Puzzle, speaker int, st Statement) bool {
	return eval(w, p, speaker, st, make([]bool, len(w.Roles)))
}

// visiting guards honesty-claim recursion: a cycle of judges vouching for
// each other cannot ground out, so a claim about a seat already under
// evaluation counts as false.
func eval(w *World, p *Puzzle, speaker int, st Statement, visiting []bool) bool {
	n := len(w.Roles)

	switch c := st.(type) {
	case SelfStatusClaim:
		impaired := Info(w.Roles[speaker]).Impaired || w.Poisoned[speaker]
		if c.Dizzy {
			return impaired
		}
		return w.Roles[speaker].Alignment() == AlignmentGood && !impaired

	case DirectionalClaim:
		cw, ccw := nearestEvilEachWay(w, speaker)
		switch c.Dir {
		case DirClockwise:
			return cw > 0 && (ccw == 0 || cw < ccw)
		case DirCounterClockwise:
			return ccw > 0 && (cw == 0 || ccw < cw)
		default:
			return cw > 0 && cw == ccw
		}

	case GoodSeatClaim:
		return validSeat(n, c.Target) && !w.readsEvil(c.Target)

	case AlignmentClaim:
		return validSeat(n, c.Target) && w.readsEvil(c.Target) == c.Evil

	case HonestyClaim:
		if !validSeat(n, c.Target) || visiting[c.Target] {
			return false
		}
		target := p.Cards[c.Target].Statement
		if target == nil {
			// No statement to judge: neither "truthy" nor "lying" holds.
			return false
		}
		visiting[c.Target] = true
		truth := eval(w, p, c.Target, target, visiting)
		visiting[c.Target] = false
		if c.Lying {
			return !truth
		}
		return truth

	case NeighborEvilClaim:
		count := 0
		for _, t := range neighbors(n, speaker) {
			if w.readsEvil(t) {
				count++
			}
		}
		return count == c.Count

	case GroupEvilClaim:
		count := 0
		for _, t := range c.Targets {
			if !validSeat(n, t) {
				return false
			}
			if w.readsEvil(t) {
				count++
			}
		}
		if c.AtLeast {
			return count >= c.Count
		}
		return count == c.Count

	case RoleIdentityClaim:
		return validSeat(n, c.Target) && w.Roles[c.Target] == c.Role

	case RoleDistanceClaim:
		best := 0
		for t := 0; t < n; t++ {
			if t == speaker || w.Roles[t] != c.Role {
				continue
			}
			if d := seatDistance(n, speaker, t); best == 0 || d < best {
				best = d
			}
		}
		return best > 0 && best == c.Distance

	case EvilDistanceClaim:
		best := 0
		for t := 0; t < n; t++ {
			if t == speaker || !w.readsEvil(t) {
				continue
			}
			if d := seatDistance(n, speaker, t); best == 0 || d < best {
				best = d
			}
		}
		return best > 0 && best == c.Distance

	case EvilGapClaim:
		var evils []int
		for t := 0; t < n; t++ {
			if w.readsEvil(t) {
				evils = append(evils, t)
			}
		}
		if len(evils) < 2 {
			return c.None
		}
		best := n
		for i := 0; i < len(evils); i++ {
			for j := i + 1; j < len(evils); j++ {
				if d := seatDistance(n, evils[i], evils[j]); d < best {
					best = d
				}
			}
		}
		return !c.None && best == c.Distance

	default:
		// Unknown statement kinds are unenforceable; the solver reports
		// them as caveats before the search, never here.
		return false
	}
}

// nearestEvilEachWay returns the step count to the nearest evil seat going
// clockwise and counterclockwise from s, 0 meaning none in that scan.
func nearestEvilEachWay(w *World, s int) (cw, ccw int) {
	n := len(w.Roles)
	for k := 1; k < n; k++ {
		if cw == 0 && w.readsEvil((s+k)%n) {
			cw = k
		}
		if ccw == 0 && w.readsEvil((s-k+n)%n) {
			ccw = k
		}
		if cw != 0 && ccw != 0 {
			break
		}
	}
	return cw, ccw
}

func validSeat(n, s int) bool {
	return s >= 0 && s < n
}
