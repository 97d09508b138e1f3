// Package render pretty-prints solver results for terminal use.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"demondeduce/internal/solver"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	caveatStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true)
	villagerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	outcastStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	minionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	demonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

// Renderer formats results. With color disabled it emits plain text,
// which also keeps output stable under tests and pipes.
type Renderer struct {
	color bool
}

func New(color bool) *Renderer {
	return &Renderer{color: color}
}

func (rd *Renderer) styled(style lipgloss.Style, s string) string {
	if !rd.color {
		return s
	}
	return style.Render(s)
}

func (rd *Renderer) role(r solver.Role) string {
	return rd.styled(categoryStyle(r.Category()), r.String())
}

func categoryStyle(c solver.Category) lipgloss.Style {
	switch c {
	case solver.CategoryVillager:
		return villagerStyle
	case solver.CategoryOutcast:
		return outcastStyle
	case solver.CategoryMinion:
		return minionStyle
	case solver.CategoryDemon:
		return demonStyle
	default:
		return lipgloss.NewStyle()
	}
}

// Result renders the full report: status, world count, per-seat
// candidates and the distinct assignments with their support.
func (rd *Renderer) Result(res *solver.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s, %d worlds, %d assignments\n",
		rd.styled(headerStyle, "Status:"), res.Status, res.Worlds, len(res.Assignments))

	for _, caveat := range res.Caveats {
		fmt.Fprintf(&b, "%s\n", rd.styled(caveatStyle, "caveat: "+caveat))
	}

	b.WriteString(rd.styled(headerStyle, "Per seat:") + "\n")
	for seat, candidates := range res.Possible {
		names := make([]string, len(candidates))
		for i, pr := range candidates {
			names[i] = rd.role(pr.Role)
		}
		fmt.Fprintf(&b, "  seat %d: %s\n", seat, strings.Join(names, ", "))
	}

	if len(res.Assignments) > 0 {
		b.WriteString(rd.styled(headerStyle, "Assignments:") + "\n")
		for _, a := range res.Assignments {
			names := make([]string, len(a.Roles))
			for i, r := range a.Roles {
				names[i] = rd.role(r)
			}
			fmt.Fprintf(&b, "  %s  (x%d)\n", strings.Join(names, ", "), a.Support)
		}
	}

	return b.String()
}

// Puzzle renders the input scenario for confirmation before a solve.
func (rd *Renderer) Puzzle(p *solver.Puzzle) string {
	var b strings.Builder

	deck := make([]string, 0, p.Deck.Len())
	for _, r := range p.Deck.Roles() {
		deck = append(deck, rd.role(r))
	}
	fmt.Fprintf(&b, "%s %s\n", rd.styled(headerStyle, "Deck:"), strings.Join(deck, ", "))
	fmt.Fprintf(&b, "%s %d Villagers, %d Outcasts, %d Minions, %d Demons\n",
		rd.styled(headerStyle, "Counts:"),
		p.Counts.Villagers, p.Counts.Outcasts, p.Counts.Minions, p.Counts.Demons)

	for seat, card := range p.Cards {
		fmt.Fprintf(&b, "  seat %d:", seat)
		if card.Shown != solver.RoleNone {
			fmt.Fprintf(&b, " shown %s", rd.role(card.Shown))
		}
		if card.Confirmed != solver.RoleNone {
			fmt.Fprintf(&b, " confirmed %s", rd.role(card.Confirmed))
		}
		if card.Statement != nil {
			fmt.Fprintf(&b, " says %q", card.Statement)
		}
		b.WriteString("\n")
	}

	return b.String()
}
