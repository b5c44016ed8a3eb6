package decklib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kuimelis/ptcgcore/internal/cards"
	"github.com/kuimelis/ptcgcore/internal/dsl"
)

func TestLookupCardReturnsDistinctInstances(t *testing.T) {
	a := LookupCard("Squirtle")
	b := LookupCard("Squirtle")
	if a == b {
		t.Fatal("LookupCard returned the same pointer for two separate calls")
	}
	if a.Name != "Squirtle" || a.Kind != dsl.CardKindPokemon {
		t.Fatalf("unexpected card: %+v", a)
	}
}

func TestLookupCardPanicsOnUnknownName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected LookupCard to panic on an unknown name")
		}
	}()
	LookupCard("Mewtwo ex")
}

func TestRegistryCardsValidate(t *testing.T) {
	for name, ctor := range Registry {
		if err := ctor().Validate(); err != nil {
			t.Errorf("card %q failed validation: %v", name, err)
		}
	}
}

func TestEvolutionLineNamesMatch(t *testing.T) {
	wartortle := LookupCard("Wartortle")
	if wartortle.EvolvesFrom != "Squirtle" {
		t.Fatalf("Wartortle.EvolvesFrom = %q, want Squirtle", wartortle.EvolvesFrom)
	}
	blastoise := LookupCard("Blastoise")
	if blastoise.EvolvesFrom != "Wartortle" {
		t.Fatalf("Blastoise.EvolvesFrom = %q, want Wartortle", blastoise.EvolvesFrom)
	}
}

const sampleDeckYAML = `
decks:
  - name: Water Basics
    cards:
      - name: Squirtle
        count: 2
      - name: Water Energy
        count: 3
  - name: Fire Basics
    cards:
      - name: Charmander
        count: 1
`

func writeSampleDeckFile(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "decks.yaml")
	if err := os.WriteFile(path, []byte(sampleDeckYAML), 0o644); err != nil {
		t.Fatalf("writing sample deck file: %v", err)
	}
	return path
}

func TestParseDeckFile(t *testing.T) {
	path := writeSampleDeckFile(t)

	decks, err := ParseDeckFile(path)
	if err != nil {
		t.Fatalf("ParseDeckFile: %v", err)
	}
	if len(decks) != 2 {
		t.Fatalf("expected 2 decks, got %d", len(decks))
	}

	water := decks["Water Basics"]
	if len(water) != 5 {
		t.Fatalf("expected 5 cards in Water Basics, got %d", len(water))
	}
	squirtleCount, energyCount := 0, 0
	for _, c := range water {
		switch c.Name {
		case "Squirtle":
			squirtleCount++
		case "Water Energy":
			energyCount++
		}
	}
	if squirtleCount != 2 || energyCount != 3 {
		t.Fatalf("expected 2 Squirtle + 3 Water Energy, got %d + %d", squirtleCount, energyCount)
	}

	fire := decks["Fire Basics"]
	if len(fire) != 1 || fire[0].Name != "Charmander" {
		t.Fatalf("unexpected Fire Basics deck: %+v", fire)
	}
}

func TestDeckByNumber(t *testing.T) {
	path := writeSampleDeckFile(t)

	name, deck, err := DeckByNumber(path, 2)
	if err != nil {
		t.Fatalf("DeckByNumber: %v", err)
	}
	if name != "Fire Basics" {
		t.Fatalf("expected deck 2 to be Fire Basics, got %q", name)
	}
	if len(deck) != 1 {
		t.Fatalf("expected 1 card, got %d", len(deck))
	}

	if _, _, err := DeckByNumber(path, 3); err == nil {
		t.Fatal("expected an error for an out-of-range deck number")
	}
}

func TestValidateDeckSize(t *testing.T) {
	if err := ValidateDeckSize(nil); err == nil {
		t.Fatal("expected an error for an empty deck")
	}

	full := make([]*cards.Card, StandardDeckSize)
	for i := range full {
		full[i] = LookupCard("Water Energy")
	}
	if err := ValidateDeckSize(full); err != nil {
		t.Fatalf("ValidateDeckSize(60 cards): %v", err)
	}
}
