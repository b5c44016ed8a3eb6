package dsl

// ValueKind enumerates atomic value sources and their combinators
// (spec.md Section 4.3 "ValueEval").
type ValueKind int

const (
	ValueConstant ValueKind = iota
	ValueCountEnergy
	ValueCountDamage
	ValueCountBench
	ValueCountPrizeCards
	ValueCountPrizeTaken
	ValueCountDiscard
	ValueCountHand
	ValueCountDeck
	ValueCoinFlip
	ValueCoinFlipUntilTails
	ValueOpponentHandSize
	ValueCountStatus
	ValueMaxDamage
	ValueRetreatCost
	ValueAdd
	ValueMultiply
	ValueMin
	ValueMax
)

// ValueSource is a tagged expression that resolves to an integer, given a
// GameState and an acting-player context (spec.md Section 4.3).
//
// Field use varies by Kind:
//   - ValueConstant: N
//   - ValueCountEnergy: Target (+ optional EnergyType filter), counts
//     energy attached to the resolved Pokemon
//   - ValueCountDamage: Target, damage counters on the resolved Pokemon
//   - ValueCountBench/CountPrizeCards/CountPrizeTaken/CountDiscard/
//     CountHand/CountDeck/OpponentHandSize: Player
//   - ValueCoinFlip: 1 if heads else 0
//   - ValueCoinFlipUntilTails: counts consecutive heads (no operands)
//   - ValueCountStatus: Target, Status — counts resolved Pokemon currently
//     carrying Status
//   - ValueMaxDamage: Target (an AllBench/All-style target); the greatest
//     damage counter total among the resolved Pokemon
//   - ValueRetreatCost: Target, the resolved Pokemon's current retreat cost
//   - ValueAdd/Multiply/Min/Max: Args (2 or more operands)
type ValueSource struct {
	Kind      ValueKind
	N         int
	Target    *Target
	EnergyType string // optional restriction for CountEnergy; "" means any type
	Player    PlayerRef
	Status    Status
	Args      []*ValueSource
}

func VConstant(n int) *ValueSource { return &ValueSource{Kind: ValueConstant, N: n} }

func VCountEnergy(t *Target) *ValueSource { return &ValueSource{Kind: ValueCountEnergy, Target: t} }

func VCountEnergyOfType(t *Target, elementType string) *ValueSource {
	return &ValueSource{Kind: ValueCountEnergy, Target: t, EnergyType: elementType}
}

func VCountDamage(t *Target) *ValueSource { return &ValueSource{Kind: ValueCountDamage, Target: t} }

func VCountBench(p PlayerRef) *ValueSource { return &ValueSource{Kind: ValueCountBench, Player: p} }

func VCountPrizeCards(p PlayerRef) *ValueSource {
	return &ValueSource{Kind: ValueCountPrizeCards, Player: p}
}

func VCountPrizeTaken(p PlayerRef) *ValueSource {
	return &ValueSource{Kind: ValueCountPrizeTaken, Player: p}
}

func VCountDiscard(p PlayerRef) *ValueSource { return &ValueSource{Kind: ValueCountDiscard, Player: p} }

func VCountHand(p PlayerRef) *ValueSource { return &ValueSource{Kind: ValueCountHand, Player: p} }

func VCountDeck(p PlayerRef) *ValueSource { return &ValueSource{Kind: ValueCountDeck, Player: p} }

func VCoinFlip() *ValueSource { return &ValueSource{Kind: ValueCoinFlip} }

func VCoinFlipUntilTails() *ValueSource { return &ValueSource{Kind: ValueCoinFlipUntilTails} }

func VOpponentHandSize() *ValueSource {
	return &ValueSource{Kind: ValueOpponentHandSize, Player: PlayerOpponent}
}

func VCountStatus(t *Target, s Status) *ValueSource {
	return &ValueSource{Kind: ValueCountStatus, Target: t, Status: s}
}

func VMaxDamage(t *Target) *ValueSource { return &ValueSource{Kind: ValueMaxDamage, Target: t} }

func VRetreatCost(t *Target) *ValueSource { return &ValueSource{Kind: ValueRetreatCost, Target: t} }

func VAdd(args ...*ValueSource) *ValueSource { return &ValueSource{Kind: ValueAdd, Args: args} }

func VMultiply(args ...*ValueSource) *ValueSource {
	return &ValueSource{Kind: ValueMultiply, Args: args}
}

func VMin(args ...*ValueSource) *ValueSource { return &ValueSource{Kind: ValueMin, Args: args} }

func VMax(args ...*ValueSource) *ValueSource { return &ValueSource{Kind: ValueMax, Args: args} }
