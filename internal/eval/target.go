package eval

import (
	"github.com/kuimelis/ptcgcore/internal/dsl"
	"github.com/kuimelis/ptcgcore/internal/state"
)

// ResolvePlayer translates a PlayerRef into a concrete 0/1 player index
// relative to ctx.ActingPlayer (spec.md Section 4.4).
func ResolvePlayer(ctx Context, ref dsl.PlayerRef) int {
	if ref == dsl.PlayerOpponent {
		return ctx.Opponent()
	}
	return ctx.ActingPlayer
}

// ResolveTarget resolves a Target expression to a list of Pokemon
// currently in play. For TargetBench with no specific slot, it returns
// every occupied bench slot as candidates (used when the caller — e.g. a
// Choice effect or ChoiceResolver — needs to offer all of them).
// TargetZone targets are not resolved here; use ResolveZone.
func ResolveTarget(ctx Context, t *dsl.Target) []*state.PokemonInPlay {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case dsl.TargetSelf:
		if ctx.Self != nil {
			return []*state.PokemonInPlay{ctx.Self}
		}
		return nil
	case dsl.TargetOpponent:
		p := ctx.GS.Player(ctx.Opponent())
		if p.Active != nil {
			return []*state.PokemonInPlay{p.Active}
		}
		return nil
	case dsl.TargetActive:
		p := ctx.GS.Player(ResolvePlayer(ctx, t.Player))
		if p.Active != nil {
			return []*state.PokemonInPlay{p.Active}
		}
		return nil
	case dsl.TargetBench:
		p := ctx.GS.Player(ResolvePlayer(ctx, t.Player))
		if t.Bench != nil {
			idx := *t.Bench
			if idx >= 0 && idx < len(p.Bench) {
				return []*state.PokemonInPlay{p.Bench[idx]}
			}
			return nil
		}
		out := make([]*state.PokemonInPlay, len(p.Bench))
		copy(out, p.Bench)
		return out
	case dsl.TargetAnyPokemon:
		p := ctx.GS.Player(ResolvePlayer(ctx, t.Player))
		return p.AllPokemon()
	case dsl.TargetAllBench:
		p := ctx.GS.Player(ResolvePlayer(ctx, t.Player))
		out := make([]*state.PokemonInPlay, len(p.Bench))
		copy(out, p.Bench)
		return out
	case dsl.TargetAll:
		p := ctx.GS.Player(ResolvePlayer(ctx, t.Player))
		return p.AllPokemon()
	case dsl.TargetZone:
		return nil
	default:
		return nil
	}
}

// ResolveZone resolves a TargetZone expression to a concrete player index
// and zone kind.
func ResolveZone(ctx Context, t *dsl.Target) (player int, zone dsl.ZoneKind, ok bool) {
	if t == nil || t.Kind != dsl.TargetZone {
		return 0, 0, false
	}
	return ResolvePlayer(ctx, t.Player), t.Zone, true
}
