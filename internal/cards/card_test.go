package cards

import (
	"testing"

	"github.com/kuimelis/ptcgcore/internal/dsl"
)

func TestValidateBasicPokemon(t *testing.T) {
	c := &Card{
		ID:          "base-1-charmander",
		Name:        "Charmander",
		Kind:        dsl.CardKindPokemon,
		MaxHP:       70,
		ElementType: "Fire",
		Stage:       dsl.StageBasic,
		RetreatCost: 1,
		Attacks: []Attack{
			{Name: "Scratch", Cost: []string{"Colorless"}, DamageBase: 10},
		},
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid card, got error: %v", err)
	}
	if !c.IsBasic() {
		t.Errorf("expected IsBasic() true for a Basic stage pokemon")
	}
}

func TestValidateEvolutionRequiresEvolvesFrom(t *testing.T) {
	c := &Card{
		ID:    "base-2-charmeleon",
		Name:  "Charmeleon",
		Kind:  dsl.CardKindPokemon,
		MaxHP: 90,
		Stage: dsl.Stage1,
	}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected validation error for stage-1 pokemon missing EvolvesFrom")
	}
}

func TestValidateBasicDeclaringEvolvesFromIsInvalid(t *testing.T) {
	c := &Card{
		ID:          "base-3-bulbasaur",
		Name:        "Bulbasaur",
		Kind:        dsl.CardKindPokemon,
		MaxHP:       60,
		Stage:       dsl.StageBasic,
		EvolvesFrom: "Nothing",
	}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected validation error for a Basic pokemon declaring EvolvesFrom")
	}
}

func TestValidateTrainerNeedsEffects(t *testing.T) {
	c := &Card{ID: "t-1", Name: "Potion", Kind: dsl.CardKindTrainer, TrainerSubtype: dsl.TrainerItem}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected validation error for a trainer with no effects")
	}
}

func TestValidateEnergyNeedsProvidedTypes(t *testing.T) {
	c := &Card{ID: "e-1", Name: "Fire Energy", Kind: dsl.CardKindEnergy}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected validation error for energy with no provided types")
	}
}
