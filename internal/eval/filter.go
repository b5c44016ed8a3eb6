package eval

import (
	"strings"

	"github.com/kuimelis/ptcgcore/internal/cards"
	"github.com/kuimelis/ptcgcore/internal/dsl"
)

// MatchesFilter reports whether card c satisfies filter. Card filters are
// pure functions of static card data (spec.md Section 4.2) — no
// GameState is needed.
func MatchesFilter(filter *dsl.CardFilter, c *cards.Card) bool {
	if filter == nil {
		return true
	}
	switch filter.Kind {
	case dsl.FilterCardKind:
		return c.Kind == filter.CardKind
	case dsl.FilterTrainerSubtype:
		return c.Kind == dsl.CardKindTrainer && c.TrainerSubtype == filter.TrainerSubtype
	case dsl.FilterEnergySubtype:
		return c.Kind == dsl.CardKindEnergy && c.EnergySubtype == filter.EnergySubtype
	case dsl.FilterPokemonType:
		return c.Kind == dsl.CardKindPokemon && c.ElementType == filter.PokemonType
	case dsl.FilterStage:
		return c.Kind == dsl.CardKindPokemon && c.Stage == filter.Stage
	case dsl.FilterNameContains:
		return strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter.NameSubstr))
	case dsl.FilterHasAbility:
		return c.Kind == dsl.CardKindPokemon && c.PokeAbility != nil
	case dsl.FilterIsBasic:
		return c.IsBasic()
	case dsl.FilterEvolvesFrom:
		return c.Kind == dsl.CardKindPokemon && c.EvolvesFrom == filter.EvolvesFromName
	case dsl.FilterIsRuleBox:
		return c.Kind == dsl.CardKindPokemon && c.IsRuleBox
	case dsl.FilterHPLessEq:
		return c.Kind == dsl.CardKindPokemon && c.MaxHP <= filter.HPBound
	case dsl.FilterHPGreaterEq:
		return c.Kind == dsl.CardKindPokemon && c.MaxHP >= filter.HPBound
	case dsl.FilterBasicEnergy:
		return c.Kind == dsl.CardKindEnergy && c.EnergySubtype == dsl.EnergyBasic
	case dsl.FilterAnd:
		for _, sub := range filter.Sub {
			if !MatchesFilter(sub, c) {
				return false
			}
		}
		return true
	case dsl.FilterOr:
		for _, sub := range filter.Sub {
			if MatchesFilter(sub, c) {
				return true
			}
		}
		return false
	case dsl.FilterNot:
		return len(filter.Sub) == 1 && !MatchesFilter(filter.Sub[0], c)
	default:
		return false
	}
}

// FilterCards returns the subset of cards matching filter, preserving
// order.
func FilterCards(filter *dsl.CardFilter, cardList []*cards.Card) []*cards.Card {
	var out []*cards.Card
	for _, c := range cardList {
		if MatchesFilter(filter, c) {
			out = append(out, c)
		}
	}
	return out
}
