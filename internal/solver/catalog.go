package solver

// AbilityKind is the closed set of ability shapes a role can have.
type AbilityKind int

const (
	AbilityNone           AbilityKind = iota // no ability (e.g. Knight)
	AbilityPassive                           // always-on effect, no resolution branches
	AbilitySelfRandom                        // random self-effect, enumerable outcome set
	AbilityTargetedRandom                    // targets another seat, enumerable targets
	AbilityStatementOnly                     // produces a statement, nothing else
)

// StatementKind is the closed set of claim shapes a role can produce.
type StatementKind int

const (
	StatementNone         StatementKind = iota
	StatementSelfStatus                 // "I am good" / "I am dizzy"
	StatementDirectional                // nearest evil is clockwise/counterclockwise/equidistant
	StatementTargetedGood               // "seat X is good"
	StatementTargetedAny                // "seat X is good/evil"
	StatementHonesty                    // "seat X is truthy/lying"
	StatementNeighborEvil               // exact evil count among the two neighbors
	StatementGroupEvilMin               // at least one evil among named seats
	StatementGroupEvil                  // exact evil count among named seats
	StatementRoleIdentity               // "seat X is role R"
	StatementRoleDistance               // nearest holder of role R is D seats away
	StatementEvilDistance               // nearest evil is exactly D seats away
	StatementEvilGap                    // the two closest evils are D seats apart
)

// RoleInfo is one catalog entry: the static facts the solver needs about a
// role. Adding a role means adding one entry here plus, if it has a
// non-trivial ability or statement, one arm in resolve.go / eval.go.
type RoleInfo struct {
	Category  Category
	Ability   AbilityKind
	Statement StatementKind
	// ReadsEvil marks good-aligned roles that evil-detection claims see as
	// evil anyway (the Wretch).
	ReadsEvil bool
	// Impaired marks roles whose own statements are never trustworthy
	// (the Drunk), independent of external poisoning.
	Impaired bool
	// FeasibilityOnly marks roles the catalog accepts but has no statement
	// rule for; observations on them are unenforceable and reported as
	// caveats (fatal in strict mode).
	FeasibilityOnly bool
}

var catalog = map[Role]RoleInfo{
	RoleConfessor:   {Category: CategoryVillager, Ability: AbilityStatementOnly, Statement: StatementSelfStatus},
	RoleGemcrafter:  {Category: CategoryVillager, Ability: AbilityStatementOnly, Statement: StatementTargetedGood},
	RoleLover:       {Category: CategoryVillager, Ability: AbilityStatementOnly, Statement: StatementNeighborEvil},
	RoleEmpress:     {Category: CategoryVillager, Ability: AbilityStatementOnly, Statement: StatementGroupEvilMin},
	RoleHunter:      {Category: CategoryVillager, Ability: AbilityStatementOnly, Statement: StatementEvilDistance},
	RoleEnlightened: {Category: CategoryVillager, Ability: AbilityStatementOnly, Statement: StatementDirectional},
	RoleJudge:       {Category: CategoryVillager, Ability: AbilityStatementOnly, Statement: StatementHonesty},
	RoleMedium:      {Category: CategoryVillager, Ability: AbilityStatementOnly, Statement: StatementRoleIdentity},
	RoleScout:       {Category: CategoryVillager, Ability: AbilityStatementOnly, Statement: StatementRoleDistance},
	RoleJester:      {Category: CategoryVillager, Ability: AbilityStatementOnly, Statement: StatementGroupEvil},
	RoleBard:        {Category: CategoryVillager, Ability: AbilityStatementOnly, Statement: StatementEvilGap},
	RoleSlayer:      {Category: CategoryVillager, Ability: AbilityStatementOnly, Statement: StatementTargetedAny},
	RoleKnight:      {Category: CategoryVillager, Ability: AbilityNone},

	RoleWretch:       {Category: CategoryOutcast, Ability: AbilityPassive, ReadsEvil: true},
	RoleDrunk:        {Category: CategoryOutcast, Ability: AbilitySelfRandom, Impaired: true},
	RoleDoppelganger: {Category: CategoryOutcast, Ability: AbilityTargetedRandom},
	RoleAlchemist:    {Category: CategoryOutcast, Ability: AbilityNone, FeasibilityOnly: true},

	RoleMinion: {Category: CategoryMinion, Ability: AbilityNone},
	RoleTwin:   {Category: CategoryMinion, Ability: AbilityNone},
	RoleWitch:  {Category: CategoryMinion, Ability: AbilityTargetedRandom},

	RoleDemon: {Category: CategoryDemon, Ability: AbilityNone},
}

// Info returns the catalog entry for a role.
func Info(r Role) RoleInfo {
	return catalog[r]
}

// Known reports whether the role has a catalog entry.
func Known(r Role) bool {
	_, ok := catalog[r]
	return ok
}

// CanProduce reports whether a seat displaying this role could have made a
// statement of the given kind. Statements follow the displayed role: a
// disguised minion shown as Confessor makes Confessor-shaped claims.
func (ri RoleInfo) CanProduce(k StatementKind) bool {
	return ri.Statement != StatementNone && ri.Statement == k
}
