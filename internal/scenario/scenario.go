// Package scenario turns caller-supplied text (command arguments, YAML
// files, clipboard lines) into a structured solver puzzle.
package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"demondeduce/internal/solver"
)

// Parse builds a puzzle from argument words:
//
//	<deck> <villagers> <outcasts> <minions> <demons> [shown:confirmed:statement ...]
//
// The deck is a comma-separated role list. Each seat argument has up to
// three colon-separated fields; "?" (or absence) leaves a field
// unobserved.
func Parse(args []string) (*solver.Puzzle, error) {
	if len(args) < 5 {
		return nil, fmt.Errorf("need <deck> <villagers> <outcasts> <minions> <demons> [seat ...], got %d arguments", len(args))
	}

	deck, err := parseDeck(args[0])
	if err != nil {
		return nil, err
	}

	var counts solver.Counts
	for i, field := range []*int{&counts.Villagers, &counts.Outcasts, &counts.Minions, &counts.Demons} {
		n, err := strconv.Atoi(args[1+i])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("count %q must be a non-negative integer", args[1+i])
		}
		*field = n
	}

	cards := make([]solver.Card, 0, len(args)-5)
	for seat, arg := range args[5:] {
		card, err := parseCard(arg)
		if err != nil {
			return nil, fmt.Errorf("seat %d (%q): %w", seat, arg, err)
		}
		cards = append(cards, card)
	}

	return &solver.Puzzle{Deck: solver.NewDeck(deck), Counts: counts, Cards: cards}, nil
}

// ParseLine splits free-form text (e.g. clipboard content) into words and
// parses it like command arguments.
func ParseLine(text string) (*solver.Puzzle, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty scenario")
	}
	return Parse(fields)
}

func parseDeck(s string) ([]solver.Role, error) {
	var roles []solver.Role
	for _, part := range strings.Split(s, ",") {
		r, err := parseRole(part)
		if err != nil {
			return nil, fmt.Errorf("deck: %w", err)
		}
		roles = append(roles, r)
	}
	return roles, nil
}

func parseRole(s string) (solver.Role, error) {
	r, ok := solver.ParseRole(strings.TrimSpace(s))
	if !ok {
		return solver.RoleNone, fmt.Errorf("unknown role %q", strings.TrimSpace(s))
	}
	return r, nil
}

func parseCard(arg string) (solver.Card, error) {
	var card solver.Card
	parts := strings.Split(arg, ":")

	if len(parts) > 0 && !isBlank(parts[0]) {
		r, err := parseRole(parts[0])
		if err != nil {
			return card, fmt.Errorf("shown: %w", err)
		}
		card.Shown = r
	}
	if len(parts) > 1 && !isBlank(parts[1]) {
		r, err := parseRole(parts[1])
		if err != nil {
			return card, fmt.Errorf("confirmed: %w", err)
		}
		card.Confirmed = r
	}
	if len(parts) > 2 && !isBlank(parts[2]) {
		st, err := ParseStatement(parts[2])
		if err != nil {
			return card, fmt.Errorf("statement: %w", err)
		}
		card.Statement = st
	}
	return card, nil
}

func isBlank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == "?" || strings.EqualFold(s, "unrevealed")
}
