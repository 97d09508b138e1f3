package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"demondeduce/internal/solver"
)

type fileSeat struct {
	Shown     string `yaml:"shown"`
	Confirmed string `yaml:"confirmed"`
	Statement string `yaml:"statement"`
}

type fileScenario struct {
	Deck   []string `yaml:"deck"`
	Counts struct {
		Villagers int `yaml:"villagers"`
		Outcasts  int `yaml:"outcasts"`
		Minions   int `yaml:"minions"`
		Demons    int `yaml:"demons"`
	} `yaml:"counts"`
	Seats []fileSeat `yaml:"seats"`
}

// Load decodes a YAML scenario document into a puzzle.
func Load(data []byte) (*solver.Puzzle, error) {
	var doc fileScenario
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}

	deck := make([]solver.Role, 0, len(doc.Deck))
	for _, name := range doc.Deck {
		r, err := parseRole(name)
		if err != nil {
			return nil, fmt.Errorf("deck: %w", err)
		}
		deck = append(deck, r)
	}

	cards := make([]solver.Card, 0, len(doc.Seats))
	for i, seat := range doc.Seats {
		var card solver.Card
		var err error
		if !isBlank(seat.Shown) {
			if card.Shown, err = parseRole(seat.Shown); err != nil {
				return nil, fmt.Errorf("seat %d shown: %w", i, err)
			}
		}
		if !isBlank(seat.Confirmed) {
			if card.Confirmed, err = parseRole(seat.Confirmed); err != nil {
				return nil, fmt.Errorf("seat %d confirmed: %w", i, err)
			}
		}
		if !isBlank(seat.Statement) {
			if card.Statement, err = ParseStatement(seat.Statement); err != nil {
				return nil, fmt.Errorf("seat %d statement: %w", i, err)
			}
		}
		cards = append(cards, card)
	}

	return &solver.Puzzle{
		Deck: solver.NewDeck(deck),
		Counts: solver.Counts{
			Villagers: doc.Counts.Villagers,
			Outcasts:  doc.Counts.Outcasts,
			Minions:   doc.Counts.Minions,
			Demons:    doc.Counts.Demons,
		},
		Cards: cards,
	}, nil
}

// LoadFile reads and decodes a YAML scenario file.
func LoadFile(path string) (*solver.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Load(data)
}
