package solver

import "strings"

// Role identifies one of the implemented deck roles.
type Role int

const (
	RoleNone Role = iota // zero value, "no role" / unknown

	// Villagers
	RoleConfessor
	RoleGemcrafter
	RoleLover
	RoleEmpress
	RoleHunter
	RoleEnlightened
	RoleJudge
	RoleMedium
	RoleScout
	RoleJester
	RoleBard
	RoleSlayer
	RoleKnight

	// Outcasts
	RoleWretch
	RoleDrunk
	RoleDoppelganger
	RoleAlchemist

	// Minions
	RoleMinion
	RoleTwin
	RoleWitch

	// Demons
	RoleDemon
)

var roleNames = map[Role]string{
	RoleConfessor:    "Confessor",
	RoleGemcrafter:   "Gemcrafter",
	RoleLover:        "Lover",
	RoleEmpress:      "Empress",
	RoleHunter:       "Hunter",
	RoleEnlightened:  "Enlightened",
	RoleJudge:        "Judge",
	RoleMedium:       "Medium",
	RoleScout:        "Scout",
	RoleJester:       "Jester",
	RoleBard:         "Bard",
	RoleSlayer:       "Slayer",
	RoleKnight:       "Knight",
	RoleWretch:       "Wretch",
	RoleDrunk:        "Drunk",
	RoleDoppelganger: "Doppelganger",
	RoleAlchemist:    "Alchemist",
	RoleMinion:       "Minion",
	RoleTwin:         "Twin",
	RoleWitch:        "Witch",
	RoleDemon:        "Demon",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "Unknown"
}

// ParseRole resolves a role by case-insensitive name.
func ParseRole(s string) (Role, bool) {
	for r, name := range roleNames {
		if strings.EqualFold(name, s) {
			return r, true
		}
	}
	return RoleNone, false
}

// Category groups roles for count constraints and display coloring.
type Category int

const (
	CategoryNone Category = iota
	CategoryVillager
	CategoryOutcast
	CategoryMinion
	CategoryDemon
)

var categoryNames = map[Category]string{
	CategoryVillager: "Villager",
	CategoryOutcast:  "Outcast",
	CategoryMinion:   "Minion",
	CategoryDemon:    "Demon",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "Unknown"
}

// Alignment governs default lying behavior.
type Alignment int

const (
	AlignmentGood Alignment = iota
	AlignmentEvil
)

func (a Alignment) String() string {
	if a == AlignmentEvil {
		return "Evil"
	}
	return "Good"
}

// Category returns the role's category in O(1).
func (r Role) Category() Category {
	return catalog[r].Category
}

// Alignment derives from category unless the catalog overrides it.
func (r Role) Alignment() Alignment {
	if catalog[r].Category == CategoryMinion || catalog[r].Category == CategoryDemon {
		return AlignmentEvil
	}
	return AlignmentGood
}

// AllRoles returns every implemented role in catalog order.
func AllRoles() []Role {
	out := make([]Role, 0, len(catalog))
	for r := RoleConfessor; r <= RoleDemon; r++ {
		out = append(out, r)
	}
	return out
}
