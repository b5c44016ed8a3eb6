package eval

import "github.com/kuimelis/ptcgcore/internal/dsl"

// EvalValue resolves a ValueSource to an integer against ctx (spec.md
// Section 4.3). Coin-flip sources consume randomness from ctx.GS.RNG, so
// evaluating the same ValueSource twice against a live GameState can
// legitimately produce different results — callers that need a stable
// value across multiple uses must evaluate once and reuse it.
func EvalValue(ctx Context, v *dsl.ValueSource) int {
	if v == nil {
		return 0
	}
	switch v.Kind {
	case dsl.ValueConstant:
		return v.N

	case dsl.ValueCountEnergy:
		total := 0
		for _, p := range ResolveTarget(ctx, v.Target) {
			total += p.EnergyCount(v.EnergyType)
		}
		return total

	case dsl.ValueCountDamage:
		total := 0
		for _, p := range ResolveTarget(ctx, v.Target) {
			total += p.Damage
		}
		return total

	case dsl.ValueCountBench:
		return ctx.GS.Player(ResolvePlayer(ctx, v.Player)).BenchCount()

	case dsl.ValueCountPrizeCards:
		return len(ctx.GS.Player(ResolvePlayer(ctx, v.Player)).Prizes)

	case dsl.ValueCountPrizeTaken:
		return ctx.GS.Player(ResolvePlayer(ctx, v.Player)).PrizesTaken

	case dsl.ValueCountDiscard:
		return len(ctx.GS.Player(ResolvePlayer(ctx, v.Player)).Discard)

	case dsl.ValueCountHand:
		return ctx.GS.Player(ResolvePlayer(ctx, v.Player)).HandCount()

	case dsl.ValueCountDeck:
		return ctx.GS.Player(ResolvePlayer(ctx, v.Player)).DeckCount()

	case dsl.ValueCoinFlip:
		if ctx.GS.RNG.CoinFlip() {
			return 1
		}
		return 0

	case dsl.ValueCoinFlipUntilTails:
		count := 0
		for ctx.GS.RNG.CoinFlip() {
			count++
		}
		return count

	case dsl.ValueOpponentHandSize:
		return ctx.GS.Player(ctx.Opponent()).HandCount()

	case dsl.ValueCountStatus:
		n := 0
		for _, poke := range ResolveTarget(ctx, v.Target) {
			if poke.Status == v.Status {
				n++
			}
		}
		return n

	case dsl.ValueMaxDamage:
		max := 0
		for i, p := range ResolveTarget(ctx, v.Target) {
			if i == 0 || p.Damage > max {
				max = p.Damage
			}
		}
		return max

	case dsl.ValueRetreatCost:
		targets := ResolveTarget(ctx, v.Target)
		if len(targets) == 0 {
			return 0
		}
		return targets[0].RetreatCost()

	case dsl.ValueAdd:
		total := 0
		for _, arg := range v.Args {
			total += EvalValue(ctx, arg)
		}
		return total

	case dsl.ValueMultiply:
		total := 1
		for _, arg := range v.Args {
			total *= EvalValue(ctx, arg)
		}
		return total

	case dsl.ValueMin:
		var min int
		for i, arg := range v.Args {
			n := EvalValue(ctx, arg)
			if i == 0 || n < min {
				min = n
			}
		}
		return min

	case dsl.ValueMax:
		var max int
		for i, arg := range v.Args {
			n := EvalValue(ctx, arg)
			if i == 0 || n > max {
				max = n
			}
		}
		return max

	default:
		return 0
	}
}
