package protocol

import (
	"demondeduce/internal/solver"
)

// Message types: Server → Client
const (
	MsgTableState = "table_state"
	MsgPending    = "pending"
	MsgResult     = "result"
	MsgError      = "error"
)

// Message types: Client → Server
const (
	MsgSetScenario = "set_scenario"
	MsgObserve     = "observe"
)

// SeatView is one seat's observations in display form.
type SeatView struct {
	Shown     string `json:"shown,omitempty"`
	Confirmed string `json:"confirmed,omitempty"`
	Statement string `json:"statement,omitempty"`
}

// TableState is sent to all clients when the scenario changes.
type TableState struct {
	TableID   string     `json:"table_id"`
	Version   int        `json:"version"`
	Deck      []string   `json:"deck"`
	Villagers int        `json:"villagers"`
	Outcasts  int        `json:"outcasts"`
	Minions   int        `json:"minions"`
	Demons    int        `json:"demons"`
	Seats     []SeatView `json:"seats"`
}

// TableStateFrom builds a TableState view of a scenario. A nil puzzle
// yields an empty table (no scenario set yet).
func TableStateFrom(tableID string, version int, p *solver.Puzzle) TableState {
	state := TableState{TableID: tableID, Version: version}
	if p == nil {
		return state
	}

	for _, r := range p.Deck.Roles() {
		state.Deck = append(state.Deck, r.String())
	}
	state.Villagers = p.Counts.Villagers
	state.Outcasts = p.Counts.Outcasts
	state.Minions = p.Counts.Minions
	state.Demons = p.Counts.Demons

	for _, card := range p.Cards {
		var seat SeatView
		if card.Shown != solver.RoleNone {
			seat.Shown = card.Shown.String()
		}
		if card.Confirmed != solver.RoleNone {
			seat.Confirmed = card.Confirmed.String()
		}
		if card.Statement != nil {
			seat.Statement = card.Statement.String()
		}
		state.Seats = append(state.Seats, seat)
	}
	return state
}

// PendingMsg announces a solve in flight for a scenario version.
type PendingMsg struct {
	Version int `json:"version"`
}

// ResultMsg carries a finished solve for a scenario version.
type ResultMsg struct {
	Version int            `json:"version"`
	Result  *solver.Result `json:"result"`
}

// SetScenarioMsg replaces the table's scenario. Line uses the same
// compact notation as the command line.
type SetScenarioMsg struct {
	Line string `json:"line"`
}

// ObserveMsg records one seat's observation. Empty fields clear the
// corresponding observation.
type ObserveMsg struct {
	Seat      int    `json:"seat"`
	Shown     string `json:"shown,omitempty"`
	Confirmed string `json:"confirmed,omitempty"`
	Statement string `json:"statement,omitempty"`
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
}
