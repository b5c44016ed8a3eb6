package dsl

// FilterKind enumerates the atomic and combinator forms a CardFilter may
// take (spec.md Section 4.2 "FilterEval").
type FilterKind int

const (
	FilterCardKind FilterKind = iota
	FilterTrainerSubtype
	FilterEnergySubtype
	FilterPokemonType
	FilterStage
	FilterNameContains
	FilterHasAbility
	FilterIsBasic
	FilterEvolvesFrom
	FilterIsRuleBox
	FilterHPLessEq
	FilterHPGreaterEq
	FilterBasicEnergy
	FilterAnd
	FilterOr
	FilterNot
)

// CardFilter is a tagged predicate over cards, evaluated by
// internal/eval's FilterEval against a card definition.
type CardFilter struct {
	Kind            FilterKind
	CardKind        CardKind
	TrainerSubtype  TrainerSubtype
	EnergySubtype   EnergySubtype
	PokemonType     string
	Stage           Stage
	NameSubstr      string
	EvolvesFromName string
	HPBound         int
	Sub             []*CardFilter // And/Or operands, or the single Not operand at index 0
}

func FCardKind(k CardKind) *CardFilter { return &CardFilter{Kind: FilterCardKind, CardKind: k} }

func FTrainerSubtype(t TrainerSubtype) *CardFilter {
	return &CardFilter{Kind: FilterTrainerSubtype, TrainerSubtype: t}
}

func FEnergySubtype(e EnergySubtype) *CardFilter {
	return &CardFilter{Kind: FilterEnergySubtype, EnergySubtype: e}
}

func FPokemonType(elementType string) *CardFilter {
	return &CardFilter{Kind: FilterPokemonType, PokemonType: elementType}
}

func FStage(s Stage) *CardFilter { return &CardFilter{Kind: FilterStage, Stage: s} }

func FNameContains(substr string) *CardFilter {
	return &CardFilter{Kind: FilterNameContains, NameSubstr: substr}
}

func FHasAbility() *CardFilter { return &CardFilter{Kind: FilterHasAbility} }

func FIsBasic() *CardFilter { return &CardFilter{Kind: FilterIsBasic} }

func FEvolvesFrom(name string) *CardFilter {
	return &CardFilter{Kind: FilterEvolvesFrom, EvolvesFromName: name}
}

func FIsRuleBox() *CardFilter { return &CardFilter{Kind: FilterIsRuleBox} }

func FHPLessEq(hp int) *CardFilter { return &CardFilter{Kind: FilterHPLessEq, HPBound: hp} }

func FHPGreaterEq(hp int) *CardFilter { return &CardFilter{Kind: FilterHPGreaterEq, HPBound: hp} }

// FBasicEnergy matches Energy cards of the Basic subtype — shorthand used
// pervasively by search/discard effect filters.
func FBasicEnergy() *CardFilter { return &CardFilter{Kind: FilterBasicEnergy} }

func FAnd(operands ...*CardFilter) *CardFilter {
	return &CardFilter{Kind: FilterAnd, Sub: operands}
}

func FOr(operands ...*CardFilter) *CardFilter {
	return &CardFilter{Kind: FilterOr, Sub: operands}
}

func FNot(operand *CardFilter) *CardFilter {
	return &CardFilter{Kind: FilterNot, Sub: []*CardFilter{operand}}
}
