package eval

import (
	"strconv"
	"strings"

	"github.com/kuimelis/ptcgcore/internal/dsl"
)

// EvalCondition evaluates a Condition to a boolean against ctx (spec.md
// Section 4.5). And/Or short-circuit left to right.
func EvalCondition(ctx Context, c *dsl.Condition) bool {
	if c == nil {
		return true
	}
	switch c.Kind {
	case dsl.CondCoinFlip:
		return ctx.GS.RNG.CoinFlip()

	case dsl.CondCoinFlipHeads:
		// Flips c.N coins; true if at least one lands heads.
		heads := false
		for i := 0; i < c.N; i++ {
			if ctx.GS.RNG.CoinFlip() {
				heads = true
			}
		}
		return heads

	case dsl.CondEnergyAttached:
		total := 0
		for _, p := range ResolveTarget(ctx, c.Target) {
			total += p.EnergyCount(c.EnergyType)
		}
		return c.Comparator.Compare(total, c.N)

	case dsl.CondStatusCondition:
		for _, p := range ResolveTarget(ctx, c.Target) {
			if p.Status == c.Status {
				return true
			}
		}
		return false

	case dsl.CondBenchCount:
		n := ctx.GS.Player(ResolvePlayer(ctx, c.Player)).BenchCount()
		return c.Comparator.Compare(n, c.N)

	case dsl.CondPrizeCount:
		n := len(ctx.GS.Player(ResolvePlayer(ctx, c.Player)).Prizes)
		return c.Comparator.Compare(n, c.N)

	case dsl.CondCardsInZone:
		p := ctx.GS.Player(ResolvePlayer(ctx, c.Player))
		var n int
		switch c.Zone {
		case dsl.ZoneDeck:
			n = p.DeckCount()
		case dsl.ZoneHand:
			n = p.HandCount()
		case dsl.ZoneDiscard:
			n = len(p.Discard)
		case dsl.ZoneLostZone:
			n = len(p.LostZone)
		case dsl.ZonePrizes:
			n = len(p.Prizes)
		}
		return c.Comparator.Compare(n, c.N)

	case dsl.CondDamageOnPokemon:
		total := 0
		for _, p := range ResolveTarget(ctx, c.Target) {
			total += p.Damage
		}
		return c.Comparator.Compare(total, c.N)

	case dsl.CondHasAbility:
		for _, p := range ResolveTarget(ctx, c.Target) {
			if p.Def.PokeAbility != nil {
				return true
			}
		}
		return false

	case dsl.CondIsRuleBox:
		for _, p := range ResolveTarget(ctx, c.Target) {
			if p.Def.IsRuleBox {
				return true
			}
		}
		return false

	case dsl.CondHasPokemonInPlay:
		p := ctx.GS.Player(ResolvePlayer(ctx, c.Player))
		for _, poke := range p.AllPokemon() {
			if MatchesFilter(c.Filter, poke.Def) {
				return true
			}
		}
		return false

	case dsl.CondTurnNumber:
		return c.Comparator.Compare(ctx.GS.Turn, c.N)

	case dsl.CondHasGameFlag:
		name := strings.ReplaceAll(c.FlagName, "{player}", strconv.Itoa(ctx.ActingPlayer))
		for _, f := range ctx.GS.Flags {
			if f.Name == name && f.Active(ctx.GS.Turn) {
				return true
			}
		}
		return false

	case dsl.CondAnd:
		for _, sub := range c.Sub {
			if !EvalCondition(ctx, sub) {
				return false
			}
		}
		return true

	case dsl.CondOr:
		for _, sub := range c.Sub {
			if EvalCondition(ctx, sub) {
				return true
			}
		}
		return false

	default:
		return false
	}
}
