// Package cards defines the static card model: Pokemon, Trainer, and
// Energy card definitions, plus their Attacks and Abilities. Definitions
// are immutable — the mutable, in-play state of a card lives in
// internal/state.PokemonInPlay (spec.md Section 3 "Card" vs
// "PokemonInPlay").
package cards

import (
	"fmt"

	"github.com/kuimelis/ptcgcore/internal/dsl"
)

// Attack is one of a Pokemon's attacks. Cost lists the energy types
// required to use it; "Colorless" in a cost slot may be paid with any
// attached energy (spec.md Section 6 "energy cost matching algorithm").
type Attack struct {
	Name       string
	Cost       []string
	DamageBase int
	Effects    []*dsl.Effect
	Text       string
}

// Ability is a Pokemon's special power, gated by a Trigger and an
// optional additional Condition (spec.md Section 3 "Ability").
type Ability struct {
	Name      string
	Trigger   dsl.AbilityTrigger
	Condition *dsl.Condition
	Effects   []*dsl.Effect
	Text      string
}

// Resistance pairs a type with the damage reduction it grants against
// attacks of that type (spec.md Section 3, weakness/resistance formula in
// Section 8 property 10).
type Resistance struct {
	Type      string
	Reduction int
}

// Card is the static, immutable definition of a single card, flat across
// all three variants and tagged by Kind — mirroring how a single card
// appears once in a deck list but is interpreted differently depending on
// its kind (spec.md Section 3 "Card").
type Card struct {
	ID   string
	Name string
	Kind dsl.CardKind

	// Pokemon fields.
	MaxHP       int
	ElementType string
	Stage       dsl.Stage
	EvolvesFrom string
	RetreatCost int
	PrizeValue  int
	Weakness    string // "" means none
	Resistance  *Resistance
	IsRuleBox   bool
	IsTera      bool
	Attacks     []Attack
	PokeAbility *Ability

	// Trainer fields.
	TrainerSubtype dsl.TrainerSubtype
	PlayCondition  *dsl.Condition
	TrainerEffects []*dsl.Effect

	// Energy fields.
	EnergySubtype dsl.EnergySubtype
	ProvidesTypes []string
}

func (c *Card) String() string {
	if c == nil {
		return "(none)"
	}
	return c.Name
}

// IsBasic reports whether a card is a Pokemon of Stage Basic (EvolvesFrom
// is not consulted), the only stage playable directly from hand to an
// empty slot (spec.md Section 6 "PlayPokemon").
func (c *Card) IsBasic() bool {
	return c.Kind == dsl.CardKindPokemon && c.Stage == dsl.StageBasic
}

// PokemonConstructor returns a zero-argument builder function, matching
// the teacher's per-card constructor pattern (internal/game/cards.go:
// "func GreedProtocol() *Card { ... }") so that new card definitions read
// the same way in both codebases.
type PokemonConstructor func() *Card

// Validate performs the structural sanity checks describable as
// "malformed card definition" in spec.md Section 7: a non-empty name; for
// a Pokemon, positive MaxHP, EvolvesFrom set exactly when the stage is
// not Basic, and a non-negative retreat cost; for a Trainer, at least one
// effect; for an Energy, at least one provided type; and a known kind.
// Attacks and abilities are not inspected. The rules engine does not call
// it; the decklib tests run it over every registry card.
func (c *Card) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("cards: card %q has an empty name", c.ID)
	}
	switch c.Kind {
	case dsl.CardKindPokemon:
		if c.MaxHP <= 0 {
			return fmt.Errorf("cards: pokemon %q has non-positive MaxHP %d", c.Name, c.MaxHP)
		}
		if c.Stage != dsl.StageBasic && c.EvolvesFrom == "" {
			return fmt.Errorf("cards: pokemon %q has stage %s but no EvolvesFrom", c.Name, c.Stage)
		}
		if c.Stage == dsl.StageBasic && c.EvolvesFrom != "" {
			return fmt.Errorf("cards: basic pokemon %q declares EvolvesFrom %q", c.Name, c.EvolvesFrom)
		}
		if c.RetreatCost < 0 {
			return fmt.Errorf("cards: pokemon %q has negative RetreatCost", c.Name)
		}
	case dsl.CardKindTrainer:
		if len(c.TrainerEffects) == 0 {
			return fmt.Errorf("cards: trainer %q has no effects", c.Name)
		}
	case dsl.CardKindEnergy:
		if len(c.ProvidesTypes) == 0 {
			return fmt.Errorf("cards: energy %q provides no types", c.Name)
		}
	default:
		return fmt.Errorf("cards: card %q has unknown kind %v", c.Name, c.Kind)
	}
	return nil
}
