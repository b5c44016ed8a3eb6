package state

import (
	"github.com/kuimelis/ptcgcore/internal/cards"
	"github.com/kuimelis/ptcgcore/internal/dsl"
)

// EnergyAttachment records one energy card attached to a Pokemon. Energy
// is tracked individually (not just as a type-count) so that moveEnergy,
// removeEnergy, and discard effects can identify and detach a specific
// card (spec.md Section 4.6 "moveEnergy", "removeEnergy").
type EnergyAttachment struct {
	Card *cards.Card // the attached Energy card's definition
}

// PokemonInPlay is the mutable runtime instance of a Pokemon on the
// battlefield (spec.md Section 3 "PokemonInPlay"), distinct from the
// immutable cards.Card it was played from.
type PokemonInPlay struct {
	ID    string // globally unique within a game (spec.md Section 3 invariant)
	Def   *cards.Card
	Owner int // 0 or 1

	Damage int // damage counters accumulated; CurrentHP = Def.MaxHP - Damage
	Status dsl.Status

	Energy []EnergyAttachment
	Tool   *cards.Card // attached Trainer-Tool card, if any

	Shields []DamageShield

	EnteredPlayTurn     int  // turn number this Pokemon entered play (for evolution timing)
	EvolvedThisTurn      bool
	AbilityUsedThisTurn  bool // OncePerTurn ability enforcement (spec.md Section 3 invariant)
	RetreatedThisTurn    bool

	// PreviousStage links to the Pokemon this one evolved from, forming an
	// owned tree of prior stages rather than a cycle (spec.md Section 9
	// "previous_stage modeled as an owned record, not a back-reference").
	// HP/status/energy preservation across evolution is handled by the
	// interpreter's evolvePokemon (spec.md Section 4.7).
	PreviousStage *PokemonInPlay
}

// CurrentHP returns the Pokemon's remaining hit points, bounded to
// [0, Def.MaxHP] (spec.md Section 3 HP-bounds invariant).
func (p *PokemonInPlay) CurrentHP() int {
	hp := p.Def.MaxHP - p.Damage
	if hp < 0 {
		return 0
	}
	if hp > p.Def.MaxHP {
		return p.Def.MaxHP
	}
	return hp
}

// IsKnockedOut reports whether this Pokemon's current HP has reached zero.
func (p *PokemonInPlay) IsKnockedOut() bool {
	return p.CurrentHP() <= 0
}

// EnergyCount returns the number of attached energy cards, optionally
// restricted to a single provided type ("" counts all energy).
func (p *PokemonInPlay) EnergyCount(elementType string) int {
	if elementType == "" {
		return len(p.Energy)
	}
	n := 0
	for _, e := range p.Energy {
		for _, t := range e.Card.ProvidesTypes {
			if t == elementType {
				n++
				break
			}
		}
	}
	return n
}

// RetreatCost returns the number of energy cards that must be discarded
// to retreat this Pokemon.
func (p *PokemonInPlay) RetreatCost() int {
	return p.Def.RetreatCost
}

// NewPokemonInPlay constructs a fresh in-play instance from a card
// definition. id must already be a freshly minted unique identifier
// (spec.md Section 3 invariant) — callers mint it via the engine's seeded
// RNG-backed uuid source, not here, so that this constructor stays a pure
// function of its arguments.
func NewPokemonInPlay(id string, def *cards.Card, owner int, turn int) *PokemonInPlay {
	return &PokemonInPlay{
		ID:              id,
		Def:             def,
		Owner:           owner,
		EnteredPlayTurn: turn,
	}
}
