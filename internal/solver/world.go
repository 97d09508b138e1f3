package solver

// World is one fully resolved hypothesis: a secret role per seat plus a
// resolution of every ability in play. Worlds are generated, evaluated,
// and kept or discarded; never mutated after construction.
type World struct {
	// Roles maps seat -> true secret role.
	Roles []Role
	// Display maps seat -> publicly shown role. Good seats show their true
	// role; evil seats show their disguise, the Drunk its mistaken role,
	// the Doppelganger its copied role.
	Display []Role
	// Poisoned marks seats impaired by a Witch resolution.
	Poisoned []bool
}

// Reliable reports whether the seat's statement is obligated to be true:
// good alignment and no impairment from any source. Any impairment source
// is sufficient to make a seat unreliable.
func (w *World) Reliable(seat int) bool {
	r := w.Roles[seat]
	if r.Alignment() == AlignmentEvil {
		return false
	}
	if Info(r).Impaired || w.Poisoned[seat] {
		return false
	}
	return true
}

// readsEvil reports whether evil-detection claims register this seat as
// evil. The Wretch reads evil despite being good-aligned.
func (w *World) readsEvil(seat int) bool {
	r := w.Roles[seat]
	return r.Alignment() == AlignmentEvil || Info(r).ReadsEvil
}

// seatDistance is the minimum of clockwise and counterclockwise step
// counts around the circular seating of n seats.
func seatDistance(n, a, b int) int {
	cw := (b - a + n) % n
	ccw := (a - b + n) % n
	if cw < ccw {
		return cw
	}
	return ccw
}

// neighbors returns the distinct adjacent seats of s.
func neighbors(n, s int) []int {
	if n <= 1 {
		return nil
	}
	left := (s - 1 + n) % n
	right := (s + 1) % n
	if left == right {
		return []int{left}
	}
	return []int{left, right}
}
