package dsl

// ConditionKind enumerates the boolean predicates ConditionEval can
// evaluate (spec.md Section 4.5 "ConditionEval").
type ConditionKind int

const (
	CondCoinFlip ConditionKind = iota
	CondCoinFlipHeads
	CondEnergyAttached
	CondStatusCondition
	CondBenchCount
	CondPrizeCount
	CondCardsInZone
	CondDamageOnPokemon
	CondHasAbility
	CondIsRuleBox
	CondHasPokemonInPlay
	CondTurnNumber
	CondHasGameFlag
	CondAnd
	CondOr
)

// Condition is a tagged boolean expression. Field use varies by Kind:
//   - CondCoinFlip: no operands; true on heads
//   - CondCoinFlipHeads: N coins flipped; true if at least one lands heads
//   - CondEnergyAttached: Target, EnergyType (optional), Comparator, N
//   - CondStatusCondition: Target, Status
//   - CondBenchCount/PrizeCount: Player, Comparator, N
//   - CondCardsInZone: Player, Zone, Comparator, N
//   - CondDamageOnPokemon: Target, Comparator, N
//   - CondHasAbility/IsRuleBox: Target
//   - CondHasPokemonInPlay: Player, Filter
//   - CondTurnNumber: Comparator, N
//   - CondHasGameFlag: FlagName (may contain a literal "{player}" token,
//     substituted with the acting player's seat index at evaluation
//     time per spec.md Section 4.5)
//   - CondAnd/CondOr: Sub, evaluated left to right with short-circuiting
type Condition struct {
	Kind       ConditionKind
	N          int
	Comparator Comparator
	Target     *Target
	EnergyType string
	Status     Status
	Player     PlayerRef
	Zone       ZoneKind
	Filter     *CardFilter
	FlagName   string
	Sub        []*Condition
}

func CCoinFlip() *Condition { return &Condition{Kind: CondCoinFlip} }

func CCoinFlipHeads(n int) *Condition { return &Condition{Kind: CondCoinFlipHeads, N: n} }

func CEnergyAttached(t *Target, cmp Comparator, n int) *Condition {
	return &Condition{Kind: CondEnergyAttached, Target: t, Comparator: cmp, N: n}
}

func CEnergyAttachedOfType(t *Target, elementType string, cmp Comparator, n int) *Condition {
	return &Condition{Kind: CondEnergyAttached, Target: t, EnergyType: elementType, Comparator: cmp, N: n}
}

func CStatusCondition(t *Target, s Status) *Condition {
	return &Condition{Kind: CondStatusCondition, Target: t, Status: s}
}

func CBenchCount(p PlayerRef, cmp Comparator, n int) *Condition {
	return &Condition{Kind: CondBenchCount, Player: p, Comparator: cmp, N: n}
}

func CPrizeCount(p PlayerRef, cmp Comparator, n int) *Condition {
	return &Condition{Kind: CondPrizeCount, Player: p, Comparator: cmp, N: n}
}

func CCardsInZone(p PlayerRef, zone ZoneKind, cmp Comparator, n int) *Condition {
	return &Condition{Kind: CondCardsInZone, Player: p, Zone: zone, Comparator: cmp, N: n}
}

func CDamageOnPokemon(t *Target, cmp Comparator, n int) *Condition {
	return &Condition{Kind: CondDamageOnPokemon, Target: t, Comparator: cmp, N: n}
}

func CHasAbility(t *Target) *Condition { return &Condition{Kind: CondHasAbility, Target: t} }

func CIsRuleBox(t *Target) *Condition { return &Condition{Kind: CondIsRuleBox, Target: t} }

func CHasPokemonInPlay(p PlayerRef, filter *CardFilter) *Condition {
	return &Condition{Kind: CondHasPokemonInPlay, Player: p, Filter: filter}
}

func CTurnNumber(cmp Comparator, n int) *Condition {
	return &Condition{Kind: CondTurnNumber, Comparator: cmp, N: n}
}

func CHasGameFlag(flagName string) *Condition {
	return &Condition{Kind: CondHasGameFlag, FlagName: flagName}
}

func CAnd(operands ...*Condition) *Condition { return &Condition{Kind: CondAnd, Sub: operands} }

func COr(operands ...*Condition) *Condition { return &Condition{Kind: CondOr, Sub: operands} }
