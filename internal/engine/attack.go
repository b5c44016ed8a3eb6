package engine

import (
	"github.com/kuimelis/ptcgcore/internal/eval"
	"github.com/kuimelis/ptcgcore/internal/log"
	"github.com/kuimelis/ptcgcore/internal/state"
)

// applyAttack resolves an Attack action (spec.md Section 4.8 "Attack",
// Section 8 testable property 10 "weakness/resistance"): it applies the
// weakness-doubled / resistance-reduced base damage to the defender's
// active Pokemon, runs the attack's own Effects, clears attack-scoped
// flags, and advances the phase to BetweenTurns. The energy cost is only
// checked (by LegalActions); no attached energy is discarded.
func (e *Engine) applyAttack(gs *state.GameState, action Action) {
	attacker := gs.Player(action.Player)
	if attacker.Active == nil || action.AttackIndex < 0 || action.AttackIndex >= len(attacker.Active.Def.Attacks) {
		return
	}
	atk := attacker.Active.Def.Attacks[action.AttackIndex]
	e.log(log.NewAttackDeclareEvent(gs.Turn, action.Player, attacker.Active.Def.Name, opponentActiveName(gs, action.Player)))

	defenderIdx := gs.Opponent(action.Player)
	defender := gs.Player(defenderIdx)
	if atk.DamageBase > 0 && defender.Active != nil {
		dmg := weaknessResistanceDamage(atk.DamageBase, attacker.Active, defender.Active)
		ctx := eval.Context{GS: gs, ActingPlayer: action.Player, Self: attacker.Active}
		e.Interp.ApplyDamage(ctx, defender.Active, dmg, "attack")
	}

	ctx := eval.Context{GS: gs, ActingPlayer: action.Player, Self: attacker.Active}
	pending, _ := e.Interp.Run(ctx, atk.Effects)
	if pending != nil {
		pending.FromAttack = true
	}
	gs.Pending = pending

	gs.ClearAttackScopedFlags()

	if gs.Pending == nil {
		gs.Phase = state.PhaseBetweenTurns
		e.log(log.NewPhaseChangeEvent(gs.Turn, gs.Phase.String()))
	}
}

// weaknessResistanceDamage applies spec.md Section 8 testable property
// 10's formula: base damage doubles if the attacker's type matches the
// defender's weakness, then the defender's resistance reduction (if the
// attacker's type matches it) is subtracted, floored at zero.
func weaknessResistanceDamage(base int, attacker, defender *state.PokemonInPlay) int {
	dmg := base
	if defender.Def.Weakness != "" && defender.Def.Weakness == attacker.Def.ElementType {
		dmg *= 2
	}
	if defender.Def.Resistance != nil && defender.Def.Resistance.Type == attacker.Def.ElementType {
		dmg -= defender.Def.Resistance.Reduction
	}
	if dmg < 0 {
		dmg = 0
	}
	return dmg
}

func opponentActiveName(gs *state.GameState, player int) string {
	opp := gs.Player(gs.Opponent(player)).Active
	if opp == nil {
		return "(none)"
	}
	return opp.Def.Name
}
