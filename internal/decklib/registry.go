// Package decklib holds the static card catalogue and YAML deck-list
// loader (spec.md Section 3 "Card" instances at rest, Section 9 "card
// definitions external to the engine core"). Nothing in internal/engine
// or internal/interp imports decklib directly — a driver builds decks
// from it and hands plain []*cards.Card slices to Engine.CreateGame, the
// same separation the teacher keeps between internal/game's card
// constructors and internal/game/duel.go.
package decklib

import (
	"fmt"

	"github.com/kuimelis/ptcgcore/internal/cards"
	"github.com/kuimelis/ptcgcore/internal/dsl"
)

// Registry maps a card's printed name to a zero-argument constructor,
// mirroring the teacher's internal/game/registry.go CardRegistry — one
// entry per distinct card, built fresh on every lookup so that two copies
// of the same printed card in a deck never share a pointer.
var Registry = map[string]cards.PokemonConstructor{
	"Squirtle":    Squirtle,
	"Wartortle":   Wartortle,
	"Blastoise":   Blastoise,
	"Charmander":  Charmander,
	"Charmeleon":  Charmeleon,
	"Pikachu":     Pikachu,
	"Voltorb":     Voltorb,
	"Electrode":   Electrode,
	"Water Energy":     WaterEnergy,
	"Fire Energy":      FireEnergy,
	"Lightning Energy": LightningEnergy,
	"Rainbow Energy":   RainbowEnergy,
	"Ultra Ball":       UltraBall,
	"Professor's Research": ProfessorsResearch,
	"Switch":               Switch,
	"Energy Retrieval":     EnergyRetrieval,
	"Exp. Share":           ExpShare,
	"Power Plant":          PowerPlant,
}

// LookupCard looks up a card by printed name and returns a new instance.
// Panics if the card is not found — a malformed deck list is a load-time
// programming error, not a runtime condition the rules engine needs to
// recover from (spec.md Section 7 "malformed card definition").
func LookupCard(name string) *cards.Card {
	ctor, ok := Registry[name]
	if !ok {
		panic(fmt.Sprintf("decklib: card not found in registry: %q", name))
	}
	return ctor()
}

func Squirtle() *cards.Card {
	return &cards.Card{
		Name:        "Squirtle",
		Kind:        dsl.CardKindPokemon,
		MaxHP:       60,
		ElementType: "Water",
		Stage:       dsl.StageBasic,
		RetreatCost: 1,
		PrizeValue:  1,
		Weakness:    "Lightning",
		Attacks: []cards.Attack{
			{Name: "Tackle", Cost: []string{"Colorless"}, DamageBase: 10},
			{
				Name:       "Water Gun",
				Cost:       []string{"Water", "Colorless"},
				DamageBase: 20,
				Text:       "Does 10 more damage for each extra Water Energy attached to this Pokemon.",
				Effects: []*dsl.Effect{
					dsl.EBonusDamage([]*dsl.Target{dsl.TOpponent()}, nil, 10, dsl.BonusEnergyAttached, dsl.TSelf()),
				},
			},
		},
	}
}

func Wartortle() *cards.Card {
	return &cards.Card{
		Name:        "Wartortle",
		Kind:        dsl.CardKindPokemon,
		MaxHP:       90,
		ElementType: "Water",
		Stage:       dsl.Stage1,
		EvolvesFrom: "Squirtle",
		RetreatCost: 1,
		PrizeValue:  1,
		Weakness:    "Lightning",
		Attacks: []cards.Attack{
			{Name: "Bite", Cost: []string{"Water", "Colorless"}, DamageBase: 40},
		},
	}
}

func Blastoise() *cards.Card {
	return &cards.Card{
		Name:        "Blastoise",
		Kind:        dsl.CardKindPokemon,
		MaxHP:       150,
		ElementType: "Water",
		Stage:       dsl.Stage2,
		EvolvesFrom: "Wartortle",
		RetreatCost: 2,
		PrizeValue:  2,
		Weakness:    "Lightning",
		Attacks: []cards.Attack{
			{
				Name:       "Hydro Pump",
				Cost:       []string{"Water", "Water", "Colorless"},
				DamageBase: 40,
				Text:       "Does 40 more damage for each extra Water Energy attached to this Pokemon.",
				Effects: []*dsl.Effect{
					dsl.EBonusDamage([]*dsl.Target{dsl.TOpponent()}, nil, 40, dsl.BonusEnergyAttached, dsl.TSelf()),
				},
			},
		},
		PokeAbility: &cards.Ability{
			Name:    "Rain Dance",
			Trigger: dsl.TriggerOncePerTurn,
			Effects: []*dsl.Effect{
				dsl.EAddEnergy([]*dsl.Target{dsl.TSelf()}, "Water", dsl.EnergySourceDiscard, dsl.VConstant(1)),
			},
			Text: "Once during your turn, you may attach a Water Energy from your discard pile to this Pokemon.",
		},
	}
}

func Charmander() *cards.Card {
	return &cards.Card{
		Name:        "Charmander",
		Kind:        dsl.CardKindPokemon,
		MaxHP:       60,
		ElementType: "Fire",
		Stage:       dsl.StageBasic,
		RetreatCost: 1,
		PrizeValue:  1,
		Weakness:    "Water",
		Attacks: []cards.Attack{
			{
				Name:       "Ember",
				Cost:       []string{"Fire"},
				DamageBase: 30,
				Text:       "Discard an Energy attached to this Pokemon.",
				Effects: []*dsl.Effect{
					dsl.ERemoveEnergy([]*dsl.Target{dsl.TSelf()}, "", dsl.VConstant(1)),
				},
			},
		},
	}
}

func Charmeleon() *cards.Card {
	return &cards.Card{
		Name:        "Charmeleon",
		Kind:        dsl.CardKindPokemon,
		MaxHP:       90,
		ElementType: "Fire",
		Stage:       dsl.Stage1,
		EvolvesFrom: "Charmander",
		RetreatCost: 2,
		PrizeValue:  1,
		Weakness:    "Water",
		Attacks: []cards.Attack{
			{Name: "Slash", Cost: []string{"Fire", "Colorless"}, DamageBase: 50},
		},
	}
}

func Pikachu() *cards.Card {
	return &cards.Card{
		Name:        "Pikachu",
		Kind:        dsl.CardKindPokemon,
		MaxHP:       60,
		ElementType: "Lightning",
		Stage:       dsl.StageBasic,
		RetreatCost: 1,
		PrizeValue:  1,
		Weakness:    "Fighting",
		Attacks: []cards.Attack{
			{
				Name:       "Thunder Shock",
				Cost:       []string{"Lightning"},
				DamageBase: 20,
				Text:       "Flip a coin. If heads, the Defending Pokemon is now Paralyzed.",
				Effects: []*dsl.Effect{
					dsl.EConditional(
						dsl.CCoinFlip(),
						[]*dsl.Effect{dsl.EAddStatus([]*dsl.Target{dsl.TOpponent()}, dsl.StatusParalyzed)},
						nil,
					),
				},
			},
		},
	}
}

func Voltorb() *cards.Card {
	return &cards.Card{
		Name:        "Voltorb",
		Kind:        dsl.CardKindPokemon,
		MaxHP:       50,
		ElementType: "Lightning",
		Stage:       dsl.StageBasic,
		RetreatCost: 0,
		PrizeValue:  1,
		Weakness:    "Fighting",
		Attacks: []cards.Attack{
			{Name: "Tackle", Cost: []string{"Colorless"}, DamageBase: 10},
		},
	}
}

func Electrode() *cards.Card {
	return &cards.Card{
		Name:        "Electrode",
		Kind:        dsl.CardKindPokemon,
		MaxHP:       100,
		ElementType: "Lightning",
		Stage:       dsl.Stage1,
		EvolvesFrom: "Voltorb",
		RetreatCost: 1,
		PrizeValue:  1,
		Weakness:    "Fighting",
		Attacks: []cards.Attack{
			{
				Name:       "Selfdestruct",
				Cost:       []string{"Lightning", "Colorless", "Colorless"},
				DamageBase: 100,
				Text:       "This Pokemon also does 100 damage to itself.",
				Effects: []*dsl.Effect{
					dsl.ESelfDamage(dsl.VConstant(100)),
				},
			},
		},
	}
}

func WaterEnergy() *cards.Card {
	return &cards.Card{
		Name:          "Water Energy",
		Kind:          dsl.CardKindEnergy,
		EnergySubtype: dsl.EnergyBasic,
		ProvidesTypes: []string{"Water"},
	}
}

func FireEnergy() *cards.Card {
	return &cards.Card{
		Name:          "Fire Energy",
		Kind:          dsl.CardKindEnergy,
		EnergySubtype: dsl.EnergyBasic,
		ProvidesTypes: []string{"Fire"},
	}
}

func LightningEnergy() *cards.Card {
	return &cards.Card{
		Name:          "Lightning Energy",
		Kind:          dsl.CardKindEnergy,
		EnergySubtype: dsl.EnergyBasic,
		ProvidesTypes: []string{"Lightning"},
	}
}

// RainbowEnergy provides any single type the attached Pokemon's cost
// needs, modeled as one attachment whose ProvidesTypes lists every basic
// type — canPayCost's matching only ever consumes it once per slot, same
// as a real special energy occupying a single attachment slot.
func RainbowEnergy() *cards.Card {
	return &cards.Card{
		Name:          "Rainbow Energy",
		Kind:          dsl.CardKindEnergy,
		EnergySubtype: dsl.EnergySpecial,
		ProvidesTypes: []string{"Water", "Fire", "Lightning", "Fighting", "Psychic", "Colorless"},
	}
}

func UltraBall() *cards.Card {
	return &cards.Card{
		Name:           "Ultra Ball",
		Kind:           dsl.CardKindTrainer,
		TrainerSubtype: dsl.TrainerItem,
		PlayCondition:  dsl.CCardsInZone(dsl.PlayerActing, dsl.ZoneHand, dsl.GTE, 2),
		TrainerEffects: []*dsl.Effect{
			dsl.EDiscardFromHand(dsl.PlayerActing, nil, dsl.VConstant(2)),
			dsl.ESearch(dsl.PlayerActing, dsl.ZoneDeck, dsl.FCardKind(dsl.CardKindPokemon), dsl.VConstant(1)),
		},
	}
}

func ProfessorsResearch() *cards.Card {
	return &cards.Card{
		Name:           "Professor's Research",
		Kind:           dsl.CardKindTrainer,
		TrainerSubtype: dsl.TrainerSupporter,
		TrainerEffects: []*dsl.Effect{
			dsl.EDiscardHand(dsl.PlayerActing),
			dsl.EDraw(dsl.PlayerActing, dsl.VConstant(7)),
		},
	}
}

func Switch() *cards.Card {
	return &cards.Card{
		Name:           "Switch",
		Kind:           dsl.CardKindTrainer,
		TrainerSubtype: dsl.TrainerItem,
		PlayCondition:  dsl.CBenchCount(dsl.PlayerActing, dsl.GTE, 1),
		TrainerEffects: []*dsl.Effect{
			dsl.ESelfSwitch(dsl.PlayerActing),
		},
	}
}

func EnergyRetrieval() *cards.Card {
	return &cards.Card{
		Name:           "Energy Retrieval",
		Kind:           dsl.CardKindTrainer,
		TrainerSubtype: dsl.TrainerItem,
		PlayCondition:  dsl.CCardsInZone(dsl.PlayerActing, dsl.ZoneDiscard, dsl.GTE, 1),
		TrainerEffects: []*dsl.Effect{
			dsl.ESearch(dsl.PlayerActing, dsl.ZoneDiscard, dsl.FBasicEnergy(), dsl.VConstant(2)),
		},
	}
}

// ExpShare is a Trainer-Tool; its text is modeled purely as a marker card
// (its actual "split damage to the tool-holder" behaviour has no Effect
// kind of its own and is not modeled). Attaching it
// still exercises the engine's Tool-slot plumbing.
func ExpShare() *cards.Card {
	return &cards.Card{
		Name:           "Exp. Share",
		Kind:           dsl.CardKindTrainer,
		TrainerSubtype: dsl.TrainerTool,
		TrainerEffects: []*dsl.Effect{dsl.ENoop()},
	}
}

func PowerPlant() *cards.Card {
	return &cards.Card{
		Name:           "Power Plant",
		Kind:           dsl.CardKindTrainer,
		TrainerSubtype: dsl.TrainerStadium,
		TrainerEffects: []*dsl.Effect{
			dsl.EOpponentCannotUseAbilities(dsl.DurationNextTurn),
		},
	}
}
