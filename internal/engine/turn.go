package engine

import (
	"github.com/kuimelis/ptcgcore/internal/dsl"
	"github.com/kuimelis/ptcgcore/internal/eval"
	"github.com/kuimelis/ptcgcore/internal/log"
	"github.com/kuimelis/ptcgcore/internal/rng"
	"github.com/kuimelis/ptcgcore/internal/state"
)

// StartTurn implements spec.md Section 4.8 "startTurn": a player whose
// deck is empty at the start of their draw loses immediately (deck-out);
// otherwise they draw one card and the phase advances to MainPhase.
func (e *Engine) StartTurn(gs *state.GameState) *state.GameState {
	if gs.Over {
		return gs
	}
	ps := gs.Player(gs.ActivePlayer)
	if len(ps.Deck) == 0 {
		e.latchWinner(gs, gs.Opponent(gs.ActivePlayer), "deck out")
		return gs
	}
	c := ps.DrawCard()
	e.log(log.NewDrawEvent(gs.Turn, gs.Phase.String(), gs.ActivePlayer, c.Name))
	gs.Phase = state.PhaseMain
	e.log(log.NewPhaseChangeEvent(gs.Turn, gs.Phase.String()))
	return gs
}

// EndTurn implements spec.md Section 4.8 "endTurn": between-turn status
// damage, knockout processing, next-player determination (honoring
// extra_turn and skip_next_turn), flag/shield expiry, and per-turn flag
// resets. Exported for direct testing as well as being invoked from
// Apply(Pass) while in AttackPhase (spec.md Section 6).
func (e *Engine) EndTurn(gs *state.GameState) *state.GameState {
	if gs.Over {
		return gs
	}
	gs.Phase = state.PhaseBetweenTurns
	e.log(log.NewPhaseChangeEvent(gs.Turn, gs.Phase.String()))

	for p := 0; p < 2; p++ {
		e.applyBetweenTurnStatus(gs, p)
		if gs.Over {
			return gs
		}
	}

	next := gs.ActivePlayer
	ps := gs.Player(next)
	if ps.ExtraTurn {
		ps.ExtraTurn = false
	} else {
		next = gs.Opponent(next)
	}
	if gs.Player(next).SkipNextTurn {
		gs.Player(next).SkipNextTurn = false
		next = gs.Opponent(next)
	}
	gs.ActivePlayer = next
	gs.Turn++

	gs.ExpireFlags()
	for p := 0; p < 2; p++ {
		expireShields(gs, gs.Player(p))
		resetPerTurnState(gs.Player(p))
	}

	gs.Phase = state.PhaseDraw
	e.log(log.NewPhaseChangeEvent(gs.Turn, gs.Phase.String()))
	return e.StartTurn(gs)
}

// applyBetweenTurnStatus applies poison (+10) and burn (a deterministic
// coin flip seeded from turn and player, +20 on heads) to player p's
// active Pokemon, routing the damage through the interpreter's
// ApplyDamage so shield attenuation and knockout/prize handling stay on
// the one code path (spec.md Section 4.8 "endTurn").
func (e *Engine) applyBetweenTurnStatus(gs *state.GameState, p int) {
	ps := gs.Player(p)
	active := ps.Active
	if active == nil {
		return
	}
	amount := 0
	switch active.Status {
	case dsl.StatusPoisoned:
		amount = 10
	case dsl.StatusBurned:
		burnRNG := newBurnRNG(gs.Turn, p)
		if burnRNG.CoinFlip() {
			amount = 20
		}
	}
	if amount == 0 {
		return
	}
	ctx := eval.Context{GS: gs, ActingPlayer: p, Self: active}
	e.Interp.ApplyDamage(ctx, active, amount, active.Status.String())
}

// newBurnRNG returns a short-lived RNG seeded deterministically from the
// turn number and player index, so a burned Pokemon's coin flip is
// reproducible from (turn, player) without threading the game's
// single long-lived RNG through between-turn status resolution (spec.md
// Section 4.1 "independent streams for between-turn checks").
func newBurnRNG(turn, player int) *rng.RNG {
	return rng.New(rng.BetweenTurnSeed(turn, player))
}

func expireShields(gs *state.GameState, ps *state.PlayerState) {
	for _, poke := range ps.AllPokemon() {
		kept := poke.Shields[:0]
		for _, s := range poke.Shields {
			if s.Duration != dsl.DurationThisAttack && s.Active(gs.Turn) {
				kept = append(kept, s)
			}
		}
		poke.Shields = kept
	}
}

func resetPerTurnState(ps *state.PlayerState) {
	ps.SupporterPlayedThisTurn = false
	ps.EnergyAttachedThisTurn = false
	ps.RetreatedThisTurn = false
	ps.AbilitiesUsedThisTurn = make(map[string]bool)
	for _, poke := range ps.AllPokemon() {
		poke.EvolvedThisTurn = false
		poke.RetreatedThisTurn = false
	}
}

// latchWinner ends the game, recording winner as the victor (spec.md
// Section 7 "terminal" conditions).
func (e *Engine) latchWinner(gs *state.GameState, winner int, reason string) {
	gs.Over = true
	gs.Winner = winner
	gs.Phase = state.PhaseGameOver
	gs.Result = reason
	e.log(log.NewWinEvent(gs.Turn, gs.Phase.String(), winner, reason))
}

// IsGameOver reports whether gs has reached a terminal state.
func (e *Engine) IsGameOver(gs *state.GameState) bool { return gs.Over }

// Winner returns the winning player index, state.Draw, or state.NoWinner
// if the game is still in progress.
func (e *Engine) Winner(gs *state.GameState) int { return gs.Winner }
