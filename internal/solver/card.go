package solver

// Card is one seat in play: the caller-observed fields for a position.
// These are constraints, not truth: a seat's real role may differ from
// Shown, but must equal Confirmed when present.
type Card struct {
	// Shown is the publicly face-up role, RoleNone if unrevealed.
	Shown Role `json:"shown,omitempty"`
	// Confirmed is a role proven true by some other mechanic, RoleNone if
	// not confirmed.
	Confirmed Role `json:"confirmed,omitempty"`
	// Statement is the seat's parsed claim, nil if none was made.
	Statement Statement `json:"-"`
}

// Puzzle is the full structured input: the deck, the requested category
// counts, and one observation record per seat.
type Puzzle struct {
	Deck   Deck
	Counts Counts
	Cards  []Card
}

// Seats returns the number of positions in play.
func (p *Puzzle) Seats() int {
	return len(p.Cards)
}

// Validate checks the puzzle before any search begins.
func (p *Puzzle) Validate() error {
	if len(p.Cards) == 0 {
		return ErrNoSeats
	}
	if p.Counts.Villagers < 0 || p.Counts.Outcasts < 0 || p.Counts.Minions < 0 || p.Counts.Demons < 0 {
		return ErrBadCounts
	}
	if p.Counts.Total() != len(p.Cards) {
		return ErrCountMismatch
	}
	for _, c := range []Category{CategoryVillager, CategoryOutcast, CategoryMinion, CategoryDemon} {
		if p.Deck.Supply(c) < p.Counts.Of(c) {
			return ErrDeckShort
		}
	}
	return nil
}
