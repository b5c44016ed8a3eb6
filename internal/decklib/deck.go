package decklib

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kuimelis/ptcgcore/internal/cards"
)

// StandardDeckSize is the fixed deck size the engine's DeckList consumers
// assume (spec.md Section 1 "deck construction validation beyond size" is
// out of scope, implying size itself is checked).
const StandardDeckSize = 60

// DeckFile is the top-level YAML structure for a deck list file, shaped
// after the teacher's internal/game/deck.go.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry is a single named deck within a DeckFile.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry names a card and how many copies of it belong in the deck.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// ParseDeckFile reads path and expands every entry through the registry,
// returning a map of deck name to its ordered card list (spec.md Section
// 6 "Deck format: an ordered list of card descriptors"). The returned
// order follows the YAML file's card entry order, not shuffled — shuffling
// happens at game creation against the engine's seeded RNG, not here.
func ParseDeckFile(path string) (map[string][]*cards.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("decklib: parse deck YAML: %w", err)
	}

	decks := make(map[string][]*cards.Card, len(df.Decks))
	for _, deck := range df.Decks {
		decks[deck.Name] = expand(deck)
	}
	return decks, nil
}

// DeckByNumber returns the Nth deck (1-indexed) from the deck file at
// path, along with its name.
func DeckByNumber(path string, n int) (string, []*cards.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return "", nil, fmt.Errorf("decklib: parse deck YAML: %w", err)
	}

	if n < 1 || n > len(df.Decks) {
		return "", nil, fmt.Errorf("decklib: deck %d not found (have %d decks)", n, len(df.Decks))
	}

	deck := df.Decks[n-1]
	return deck.Name, expand(deck), nil
}

func expand(deck DeckEntry) []*cards.Card {
	var out []*cards.Card
	for _, entry := range deck.Cards {
		for i := 0; i < entry.Count; i++ {
			out = append(out, LookupCard(entry.Name))
		}
	}
	return out
}

// ValidateDeckSize reports an error if deck does not contain exactly
// StandardDeckSize cards — the only deck-construction check this module
// performs (spec.md Section 1 Non-goals: "deck construction validation
// beyond size").
func ValidateDeckSize(deck []*cards.Card) error {
	if len(deck) != StandardDeckSize {
		return fmt.Errorf("decklib: deck has %d cards, want %d", len(deck), StandardDeckSize)
	}
	return nil
}
