package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"demondeduce/internal/solver"
)

// ParseStatement parses one claim in the compact table notation, e.g.
// "iamgood", "clockwise", "hunter[2]", "jester[0,2,5;1]" or
// "medium[3;lover]". Heads the solver has no evaluator for come back as
// an UnknownStatement so the caller can decide how to treat them.
func ParseStatement(s string) (solver.Statement, error) {
	s = strings.TrimSpace(s)

	head, payload, bracketed := strings.Cut(s, "[")
	head = strings.ToLower(strings.TrimSpace(head))
	if bracketed {
		if !strings.HasSuffix(payload, "]") {
			return nil, fmt.Errorf("missing closing bracket in %q", s)
		}
		payload = strings.TrimSuffix(payload, "]")
	}

	switch head {
	case "iamgood":
		return solver.SelfStatusClaim{}, nil
	case "iamdizzy":
		return solver.SelfStatusClaim{Dizzy: true}, nil
	case "clockwise":
		return solver.DirectionalClaim{Dir: solver.DirClockwise}, nil
	case "counterclockwise":
		return solver.DirectionalClaim{Dir: solver.DirCounterClockwise}, nil
	case "equidistant":
		return solver.DirectionalClaim{Dir: solver.DirEquidistant}, nil
	}

	if !bracketed {
		return solver.UnknownStatement{Label: s}, nil
	}

	switch head {
	case "gemcrafter":
		t, err := parseSeat(payload)
		if err != nil {
			return nil, err
		}
		return solver.GoodSeatClaim{Target: t}, nil

	case "slayer":
		target, rest, err := splitPayload(payload)
		if err != nil {
			return nil, err
		}
		t, err := parseSeat(target)
		if err != nil {
			return nil, err
		}
		switch rest {
		case "good":
			return solver.AlignmentClaim{Target: t}, nil
		case "evil":
			return solver.AlignmentClaim{Target: t, Evil: true}, nil
		default:
			return nil, fmt.Errorf("slayer verdict must be good or evil, got %q", rest)
		}

	case "judge":
		target, rest, err := splitPayload(payload)
		if err != nil {
			return nil, err
		}
		t, err := parseSeat(target)
		if err != nil {
			return nil, err
		}
		switch rest {
		case "truthy":
			return solver.HonestyClaim{Target: t}, nil
		case "lying":
			return solver.HonestyClaim{Target: t, Lying: true}, nil
		default:
			return nil, fmt.Errorf("judge verdict must be truthy or lying, got %q", rest)
		}

	case "lover":
		n, err := parseCount(payload)
		if err != nil {
			return nil, err
		}
		return solver.NeighborEvilClaim{Count: n}, nil

	case "empress":
		targets, err := parseSeats(payload)
		if err != nil {
			return nil, err
		}
		if len(targets) != 3 {
			return nil, fmt.Errorf("empress names exactly 3 seats, got %d", len(targets))
		}
		return solver.GroupEvilClaim{Targets: targets, Count: 1, AtLeast: true}, nil

	case "jester":
		group, rest, err := splitPayload(payload)
		if err != nil {
			return nil, err
		}
		targets, err := parseSeats(group)
		if err != nil {
			return nil, err
		}
		n, err := parseCount(rest)
		if err != nil {
			return nil, err
		}
		return solver.GroupEvilClaim{Targets: targets, Count: n}, nil

	case "medium":
		target, rest, err := splitPayload(payload)
		if err != nil {
			return nil, err
		}
		t, err := parseSeat(target)
		if err != nil {
			return nil, err
		}
		r, err := parseRole(rest)
		if err != nil {
			return nil, err
		}
		return solver.RoleIdentityClaim{Target: t, Role: r}, nil

	case "scout":
		name, rest, err := splitPayload(payload)
		if err != nil {
			return nil, err
		}
		r, err := parseRole(name)
		if err != nil {
			return nil, err
		}
		d, err := parseCount(rest)
		if err != nil {
			return nil, err
		}
		return solver.RoleDistanceClaim{Role: r, Distance: d}, nil

	case "hunter":
		d, err := parseCount(payload)
		if err != nil {
			return nil, err
		}
		return solver.EvilDistanceClaim{Distance: d}, nil

	case "bard":
		if strings.EqualFold(strings.TrimSpace(payload), "none") {
			return solver.EvilGapClaim{None: true}, nil
		}
		d, err := parseCount(payload)
		if err != nil {
			return nil, err
		}
		return solver.EvilGapClaim{Distance: d}, nil
	}

	return solver.UnknownStatement{Label: s}, nil
}

func splitPayload(payload string) (string, string, error) {
	left, right, ok := strings.Cut(payload, ";")
	if !ok {
		return "", "", fmt.Errorf("expected two ;-separated fields in %q", payload)
	}
	return strings.TrimSpace(left), strings.TrimSpace(right), nil
}

func parseSeat(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("seat %q must be a non-negative integer", s)
	}
	return n, nil
}

func parseSeats(s string) ([]int, error) {
	var seats []int
	for _, part := range strings.Split(s, ",") {
		n, err := parseSeat(part)
		if err != nil {
			return nil, err
		}
		seats = append(seats, n)
	}
	return seats, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("count %q must be a non-negative integer", s)
	}
	return n, nil
}
