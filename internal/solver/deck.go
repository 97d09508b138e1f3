package solver

// Deck is the multiset of roles declared in play. Immutable once
// constructed.
type Deck struct {
	roles []Role
}

// NewDeck creates a deck from the given roles.
func NewDeck(roles []Role) Deck {
	d := Deck{roles: make([]Role, len(roles))}
	copy(d.roles, roles)
	return d
}

// Len returns the number of role cards in the deck.
func (d Deck) Len() int {
	return len(d.roles)
}

// Roles returns a copy of the deck contents.
func (d Deck) Roles() []Role {
	out := make([]Role, len(d.roles))
	copy(out, d.roles)
	return out
}

// Supply counts how many deck roles belong to the given category.
func (d Deck) Supply(c Category) int {
	n := 0
	for _, r := range d.roles {
		if r.Category() == c {
			n++
		}
	}
	return n
}

// Contains reports whether the deck holds at least one copy of the role.
func (d Deck) Contains(r Role) bool {
	for _, dr := range d.roles {
		if dr == r {
			return true
		}
	}
	return false
}

// Distinct returns the deck's distinct roles in first-seen order.
func (d Deck) Distinct() []Role {
	seen := make(map[Role]bool, len(d.roles))
	var out []Role
	for _, r := range d.roles {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

// DistinctOf returns the deck's distinct roles of one category.
func (d Deck) DistinctOf(c Category) []Role {
	var out []Role
	for _, r := range d.Distinct() {
		if r.Category() == c {
			out = append(out, r)
		}
	}
	return out
}

// multiset is the mutable working copy the generator draws from.
type multiset map[Role]int

func (d Deck) multiset() multiset {
	m := make(multiset, len(d.roles))
	for _, r := range d.roles {
		m[r]++
	}
	return m
}

// Counts is the requested number of in-play roles per category.
type Counts struct {
	Villagers int `json:"villagers" yaml:"villagers"`
	Outcasts  int `json:"outcasts" yaml:"outcasts"`
	Minions   int `json:"minions" yaml:"minions"`
	Demons    int `json:"demons" yaml:"demons"`
}

// Total sums the per-category counts.
func (c Counts) Total() int {
	return c.Villagers + c.Outcasts + c.Minions + c.Demons
}

// Of returns the requested count for one category.
func (c Counts) Of(cat Category) int {
	switch cat {
	case CategoryVillager:
		return c.Villagers
	case CategoryOutcast:
		return c.Outcasts
	case CategoryMinion:
		return c.Minions
	case CategoryDemon:
		return c.Demons
	}
	return 0
}

func (c *Counts) dec(cat Category) bool {
	switch cat {
	case CategoryVillager:
		if c.Villagers == 0 {
			return false
		}
		c.Villagers--
	case CategoryOutcast:
		if c.Outcasts == 0 {
			return false
		}
		c.Outcasts--
	case CategoryMinion:
		if c.Minions == 0 {
			return false
		}
		c.Minions--
	case CategoryDemon:
		if c.Demons == 0 {
			return false
		}
		c.Demons--
	default:
		return false
	}
	return true
}

func (c *Counts) inc(cat Category) {
	switch cat {
	case CategoryVillager:
		c.Villagers++
	case CategoryOutcast:
		c.Outcasts++
	case CategoryMinion:
		c.Minions++
	case CategoryDemon:
		c.Demons++
	}
}
