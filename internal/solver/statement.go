package solver

import (
	"fmt"
	"strings"
)

// Statement is a parsed in-game claim. Variants are pure data; truth
// evaluation against a concrete world lives in eval.go. A nil Statement
// means the seat has not spoken (or is unrevealed) and imposes no
// constraint.
type Statement interface {
	Kind() StatementKind
	String() string
}

// Direction of an Enlightened-style claim, relative to the claimant.
type Direction int

const (
	DirClockwise Direction = iota
	DirCounterClockwise
	DirEquidistant
)

func (d Direction) String() string {
	switch d {
	case DirClockwise:
		return "Clockwise"
	case DirCounterClockwise:
		return "CounterClockwise"
	default:
		return "Equidistant"
	}
}

// SelfStatusClaim is "I am good" or "I am dizzy".
type SelfStatusClaim struct {
	Dizzy bool
}

func (c SelfStatusClaim) Kind() StatementKind { return StatementSelfStatus }
func (c SelfStatusClaim) String() string {
	if c.Dizzy {
		return "I am Dizzy"
	}
	return "I am Good"
}

// DirectionalClaim asserts which way around the circle the nearest evil
// seat lies from the claimant.
type DirectionalClaim struct {
	Dir Direction
}

func (c DirectionalClaim) Kind() StatementKind { return StatementDirectional }
func (c DirectionalClaim) String() string      { return c.Dir.String() }

// GoodSeatClaim vouches for a single seat ("seat X is good").
type GoodSeatClaim struct {
	Target int
}

func (c GoodSeatClaim) Kind() StatementKind { return StatementTargetedGood }
func (c GoodSeatClaim) String() string      { return fmt.Sprintf("Seat %d is Good", c.Target) }

// AlignmentClaim asserts a seat's alignment either way.
type AlignmentClaim struct {
	Target int
	Evil   bool
}

func (c AlignmentClaim) Kind() StatementKind { return StatementTargetedAny }
func (c AlignmentClaim) String() string {
	if c.Evil {
		return fmt.Sprintf("Seat %d is Evil", c.Target)
	}
	return fmt.Sprintf("Seat %d is Good", c.Target)
}

// HonestyClaim asserts whether another seat's statement is true.
type HonestyClaim struct {
	Target int
	Lying  bool
}

func (c HonestyClaim) Kind() StatementKind { return StatementHonesty }
func (c HonestyClaim) String() string {
	if c.Lying {
		return fmt.Sprintf("Seat %d is Lying", c.Target)
	}
	return fmt.Sprintf("Seat %d is Truthy", c.Target)
}

// NeighborEvilClaim asserts the exact number of evil seats among the
// claimant's two neighbors.
type NeighborEvilClaim struct {
	Count int
}

func (c NeighborEvilClaim) Kind() StatementKind { return StatementNeighborEvil }
func (c NeighborEvilClaim) String() string {
	return fmt.Sprintf("%d Evil among my neighbors", c.Count)
}

// GroupEvilClaim asserts how many of the named seats are evil. AtLeast
// switches between exact-count and minimum-bound semantics.
type GroupEvilClaim struct {
	Targets []int
	Count   int
	AtLeast bool
}

func (c GroupEvilClaim) Kind() StatementKind {
	if c.AtLeast {
		return StatementGroupEvilMin
	}
	return StatementGroupEvil
}

func (c GroupEvilClaim) String() string {
	parts := make([]string, len(c.Targets))
	for i, t := range c.Targets {
		parts[i] = fmt.Sprintf("%d", t)
	}
	op := "exactly"
	if c.AtLeast {
		op = "at least"
	}
	return fmt.Sprintf("%s %d Evil among seats %s", op, c.Count, strings.Join(parts, ","))
}

// RoleIdentityClaim asserts a seat's true role.
type RoleIdentityClaim struct {
	Target int
	Role   Role
}

func (c RoleIdentityClaim) Kind() StatementKind { return StatementRoleIdentity }
func (c RoleIdentityClaim) String() string {
	return fmt.Sprintf("Seat %d is the %s", c.Target, c.Role)
}

// RoleDistanceClaim asserts the seat distance to the nearest holder of a
// named role.
type RoleDistanceClaim struct {
	Role     Role
	Distance int
}

func (c RoleDistanceClaim) Kind() StatementKind { return StatementRoleDistance }
func (c RoleDistanceClaim) String() string {
	return fmt.Sprintf("Nearest %s is %d seats away", c.Role, c.Distance)
}

// EvilDistanceClaim asserts the nearest evil seat is exactly this far
// away, with none closer.
type EvilDistanceClaim struct {
	Distance int
}

func (c EvilDistanceClaim) Kind() StatementKind { return StatementEvilDistance }
func (c EvilDistanceClaim) String() string {
	return fmt.Sprintf("Nearest Evil is %d seats away", c.Distance)
}

// EvilGapClaim asserts the seat distance between the two closest evil
// seats. None asserts there are fewer than two evils in play.
type EvilGapClaim struct {
	Distance int
	None     bool
}

func (c EvilGapClaim) Kind() StatementKind { return StatementEvilGap }
func (c EvilGapClaim) String() string {
	if c.None {
		return "No two Evils in play"
	}
	return fmt.Sprintf("Closest Evils are %d seats apart", c.Distance)
}

// UnknownStatement is a claim the solver has no evaluation rule for. It is
// carried through so the caller can be told the constraint was not
// enforced.
type UnknownStatement struct {
	Label string
}

func (c UnknownStatement) Kind() StatementKind { return StatementNone }
func (c UnknownStatement) String() string      { return "Unknown: " + c.Label }
