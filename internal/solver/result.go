package solver

import "sort"

// Assignment is one distinct secret-role placement, with the number of
// ability resolutions that support it.
type Assignment struct {
	Roles   []Role `json:"roles"`
	Support int    `json:"support"`
}

// PossibleRole is a per-seat candidate role tagged with its category for
// downstream color-coding.
type PossibleRole struct {
	Role     Role     `json:"role"`
	Category Category `json:"category"`
}

// Result is the aggregator's output.
type Result struct {
	Status RunStatus `json:"status"`
	// Worlds counts kept (assignment, resolution) pairs.
	Worlds int `json:"worlds"`
	// Assignments holds the distinct kept role assignments.
	Assignments []Assignment `json:"assignments"`
	// Possible holds, per seat, every role appearing in a kept world.
	Possible [][]PossibleRole `json:"possible"`
	// Caveats lists observations the solver could not enforce.
	Caveats []string `json:"caveats,omitempty"`
}

// roleSet is a bitset over the role enumeration.
type roleSet uint32

func (s roleSet) has(r Role) bool { return s&(1<<uint(r)) != 0 }
func (s *roleSet) add(r Role)     { *s |= 1 << uint(r) }

// partial is one worker's accumulation. Partials merge associatively and
// commutatively, so workers need no shared state until the final reduce.
type partial struct {
	worlds      int
	assignments map[string]*Assignment
	possible    []roleSet
}

func newPartial(seats int) *partial {
	return &partial{
		assignments: make(map[string]*Assignment),
		possible:    make([]roleSet, seats),
	}
}

func (a *partial) keep(roles []Role, worlds int) {
	a.worlds += worlds
	key := assignmentKey(roles)
	if entry, ok := a.assignments[key]; ok {
		entry.Support += worlds
	} else {
		a.assignments[key] = &Assignment{Roles: roles, Support: worlds}
	}
	for i, r := range roles {
		a.possible[i].add(r)
	}
}

func (a *partial) merge(b *partial) {
	a.worlds += b.worlds
	for key, entry := range b.assignments {
		if mine, ok := a.assignments[key]; ok {
			mine.Support += entry.Support
		} else {
			a.assignments[key] = entry
		}
	}
	for i := range a.possible {
		a.possible[i] |= b.possible[i]
	}
}

func assignmentKey(roles []Role) string {
	b := make([]byte, len(roles))
	for i, r := range roles {
		b[i] = byte(r)
	}
	return string(b)
}

// result finalizes the accumulation into a deterministic Result.
func (a *partial) result(status RunStatus, caveats []string) *Result {
	res := &Result{
		Status:   status,
		Worlds:   a.worlds,
		Caveats:  caveats,
		Possible: make([][]PossibleRole, len(a.possible)),
	}
	keys := make([]string, 0, len(a.assignments))
	for k := range a.assignments {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		res.Assignments = append(res.Assignments, *a.assignments[k])
	}
	for i, set := range a.possible {
		for _, r := range AllRoles() {
			if set.has(r) {
				res.Possible[i] = append(res.Possible[i], PossibleRole{Role: r, Category: r.Category()})
			}
		}
	}
	return res
}

// PossibleAt returns the seat's possible roles as a plain role slice.
func (r *Result) PossibleAt(seat int) []Role {
	if seat < 0 || seat >= len(r.Possible) {
		return nil
	}
	out := make([]Role, len(r.Possible[seat]))
	for i, pr := range r.Possible[seat] {
		out[i] = pr.Role
	}
	return out
}
