package state

import "github.com/kuimelis/ptcgcore/internal/cards"

const (
	// BenchSize is the maximum number of Pokemon a player may have on
	// their bench at once (spec.md Section 3 invariant: bench <= 5).
	BenchSize = 5
	// InitialHandSize is the number of cards dealt at the start of a game.
	InitialHandSize = 7
	// InitialPrizeCount is the number of prize cards set aside at setup.
	InitialPrizeCount = 6
)

// PlayerState holds one player's entire game state (spec.md Section 3
// "PlayerState").
type PlayerState struct {
	Deck    []*cards.Card // top of deck is the last element (pop from end)
	Hand    []*cards.Card
	Discard []*cards.Card
	LostZone []*cards.Card
	Prizes  []*cards.Card

	PrizesTaken int

	Active *PokemonInPlay
	Bench  []*PokemonInPlay // len <= BenchSize

	SupporterPlayedThisTurn bool
	EnergyAttachedThisTurn  bool
	RetreatedThisTurn       bool
	ExtraTurn               bool
	SkipNextTurn            bool
	Mulliganed              bool

	// AbilitiesUsedThisTurn holds the names of OncePerTurn abilities
	// already invoked this turn (spec.md Section 3 invariant: at most one
	// firing per name per player per turn).
	AbilitiesUsedThisTurn map[string]bool
}

// NewPlayerState returns a zero-value player state with an empty bench.
func NewPlayerState() *PlayerState {
	return &PlayerState{AbilitiesUsedThisTurn: make(map[string]bool)}
}

// DeckCount returns the number of cards remaining in the deck.
func (p *PlayerState) DeckCount() int { return len(p.Deck) }

// HandCount returns the number of cards in hand.
func (p *PlayerState) HandCount() int { return len(p.Hand) }

// DrawCard removes the top card of the deck and adds it to hand, or
// returns nil if the deck is empty (deck-out is handled by the rules
// engine, not here — spec.md Section 7 "deck exhaustion").
func (p *PlayerState) DrawCard() *cards.Card {
	if len(p.Deck) == 0 {
		return nil
	}
	c := p.Deck[len(p.Deck)-1]
	p.Deck = p.Deck[:len(p.Deck)-1]
	p.Hand = append(p.Hand, c)
	return c
}

// RemoveFromHand removes the first card matching def from hand, reporting
// whether a card was actually removed.
func (p *PlayerState) RemoveFromHand(def *cards.Card) bool {
	for i, c := range p.Hand {
		if c == def {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// BenchCount returns the number of occupied bench slots.
func (p *PlayerState) BenchCount() int { return len(p.Bench) }

// FreeBenchSlots returns how many more Pokemon may be benched.
func (p *PlayerState) FreeBenchSlots() int {
	return BenchSize - len(p.Bench)
}

// AllPokemon returns the active Pokemon (if any) followed by the bench,
// in that order — the canonical "active-then-bench" ordering used
// throughout ValueEval aggregation (spec.md Section 4.3).
func (p *PlayerState) AllPokemon() []*PokemonInPlay {
	var result []*PokemonInPlay
	if p.Active != nil {
		result = append(result, p.Active)
	}
	result = append(result, p.Bench...)
	return result
}

// FindPokemon locates a PokemonInPlay by ID among the active Pokemon and
// bench, returning nil if not found.
func (p *PlayerState) FindPokemon(id string) *PokemonInPlay {
	for _, poke := range p.AllPokemon() {
		if poke.ID == id {
			return poke
		}
	}
	return nil
}

// RemoveFromBench removes a Pokemon from the bench by ID, returning it
// (or nil if not found).
func (p *PlayerState) RemoveFromBench(id string) *PokemonInPlay {
	for i, poke := range p.Bench {
		if poke.ID == id {
			p.Bench = append(p.Bench[:i], p.Bench[i+1:]...)
			return poke
		}
	}
	return nil
}

// PromoteBenchToActive moves the bench Pokemon at idx into the (assumed
// empty) active slot.
func (p *PlayerState) PromoteBenchToActive(idx int) {
	if idx < 0 || idx >= len(p.Bench) {
		return
	}
	poke := p.Bench[idx]
	p.Bench = append(p.Bench[:idx], p.Bench[idx+1:]...)
	p.Active = poke
}

// SwapActiveWithBench exchanges the active Pokemon with the bench
// Pokemon at idx (used by Retreat and the switch effect family).
func (p *PlayerState) SwapActiveWithBench(idx int) {
	if idx < 0 || idx >= len(p.Bench) {
		return
	}
	p.Active, p.Bench[idx] = p.Bench[idx], p.Active
}
