// Package eval implements the pure evaluators that interpret DSL
// expressions against a GameState: FilterEval (CardFilter), ValueEval
// (ValueSource), TargetResolver (Target), and ConditionEval (Condition) —
// spec.md Sections 4.2 through 4.5. None of these mutate state; only
// internal/interp's EffectInterpreter does.
package eval

import "github.com/kuimelis/ptcgcore/internal/state"

// Context supplies the acting-player perspective every resolver needs:
// which player is "PlayerActing", and which Pokemon (if any) is "Self" —
// normally the attacking Pokemon or the Pokemon an ability belongs to.
type Context struct {
	GS           *state.GameState
	ActingPlayer int
	Self         *state.PokemonInPlay
}

// Opponent returns the index of the player opposing ActingPlayer.
func (c Context) Opponent() int { return c.GS.Opponent(c.ActingPlayer) }
