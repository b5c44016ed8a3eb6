package engine

import (
	"github.com/kuimelis/ptcgcore/internal/dsl"
	"github.com/kuimelis/ptcgcore/internal/eval"
	"github.com/kuimelis/ptcgcore/internal/log"
	"github.com/kuimelis/ptcgcore/internal/state"
)

// Apply validates action against LegalActions and, if legal, mutates gs
// to reflect it (spec.md Section 4.8 "apply", Section 6 "apply(state,
// action) -> GameState"). An illegal action is a no-op: gs is returned
// unchanged, matching spec.md Section 7's identity-on-illegal-action
// semantics rather than returning an error.
func (e *Engine) Apply(gs *state.GameState, action Action) *state.GameState {
	if !isLegal(gs, action) {
		return gs
	}

	switch action.Type {
	case ActionPlayPokemon:
		e.applyPlayPokemon(gs, action)
	case ActionAttachEnergy:
		e.applyAttachEnergy(gs, action)
	case ActionPlayTrainer:
		e.applyPlayTrainer(gs, action)
	case ActionUseAbility:
		e.applyUseAbility(gs, action)
	case ActionAttack:
		e.applyAttack(gs, action)
	case ActionRetreat:
		e.applyRetreat(gs, action)
	case ActionChooseCard:
		e.applyChooseCard(gs, action)
	case ActionPass:
		e.applyPass(gs, action)
	}

	e.checkWinConditions(gs)
	return gs
}

func isLegal(gs *state.GameState, action Action) bool {
	for _, a := range LegalActions(gs) {
		if sameAction(a, action) {
			return true
		}
	}
	return false
}

func sameAction(a, b Action) bool {
	if a.Type != b.Type || a.Player != b.Player {
		return false
	}
	switch a.Type {
	case ActionPlayPokemon:
		return a.HandIndex == b.HandIndex && a.BenchIndex == b.BenchIndex
	case ActionAttachEnergy:
		return a.HandIndex == b.HandIndex && a.BenchIndex == b.BenchIndex
	case ActionPlayTrainer:
		return a.HandIndex == b.HandIndex
	case ActionUseAbility:
		return a.BenchIndex == b.BenchIndex && a.AbilityName == b.AbilityName
	case ActionAttack:
		return a.AttackIndex == b.AttackIndex
	case ActionRetreat:
		return a.BenchIndex == b.BenchIndex
	case ActionChooseCard:
		return a.Skip == b.Skip && a.ChoiceID == b.ChoiceID
	case ActionPass:
		return true
	default:
		return false
	}
}

func pokemonAt(ps *state.PlayerState, benchIndex int) *state.PokemonInPlay {
	if benchIndex == -1 {
		return ps.Active
	}
	if benchIndex >= 0 && benchIndex < len(ps.Bench) {
		return ps.Bench[benchIndex]
	}
	return nil
}

func (e *Engine) applyPlayPokemon(gs *state.GameState, action Action) {
	ps := gs.Player(action.Player)
	if action.HandIndex < 0 || action.HandIndex >= len(ps.Hand) {
		return
	}
	c := ps.Hand[action.HandIndex]

	if c.IsBasic() {
		ps.RemoveFromHand(c)
		poke := state.NewPokemonInPlay(gs.NewInstanceID(), c, action.Player, gs.Turn)
		if action.BenchIndex == -1 {
			ps.Active = poke
			e.log(log.NewPlayPokemonEvent(gs.Turn, gs.Phase.String(), action.Player, c.Name, "active"))
		} else {
			ps.Bench = append(ps.Bench, poke)
			e.log(log.NewPlayPokemonEvent(gs.Turn, gs.Phase.String(), action.Player, c.Name, "bench"))
		}
		e.runTriggeredAbility(gs, action.Player, poke, dsl.TriggerOnPlay)
		return
	}

	target := pokemonAt(ps, action.BenchIndex)
	if target == nil {
		return
	}
	ps.RemoveFromHand(c)
	ctx := eval.Context{GS: gs, ActingPlayer: action.Player, Self: target}
	e.Interp.EvolveInPlace(ctx, target, c)
	e.runTriggeredAbility(gs, action.Player, target, dsl.TriggerOnEvolve)
}

// runTriggeredAbility fires poke's ability if it matches trigger (onPlay
// or onEvolve abilities fire automatically, unlike OncePerTurn abilities
// which the player invokes via UseAbility — spec.md Section 3 "Ability").
// Any PendingChoice it raises becomes gs.Pending, same as a
// player-invoked ability or trainer.
func (e *Engine) runTriggeredAbility(gs *state.GameState, player int, poke *state.PokemonInPlay, trigger dsl.AbilityTrigger) {
	ab := poke.Def.PokeAbility
	if ab == nil || ab.Trigger != trigger {
		return
	}
	ctx := eval.Context{GS: gs, ActingPlayer: player, Self: poke}
	if !eval.EvalCondition(ctx, ab.Condition) {
		return
	}
	e.log(log.NewUseAbilityEvent(gs.Turn, gs.Phase.String(), player, poke.Def.Name, ab.Name))
	pending, _ := e.Interp.Run(ctx, ab.Effects)
	gs.Pending = pending
}

func (e *Engine) applyAttachEnergy(gs *state.GameState, action Action) {
	ps := gs.Player(action.Player)
	if action.HandIndex < 0 || action.HandIndex >= len(ps.Hand) {
		return
	}
	c := ps.Hand[action.HandIndex]
	target := pokemonAt(ps, action.BenchIndex)
	if target == nil {
		return
	}
	ps.RemoveFromHand(c)
	target.Energy = append(target.Energy, state.EnergyAttachment{Card: c})
	ps.EnergyAttachedThisTurn = true
	e.log(log.NewAttachEnergyEvent(gs.Turn, gs.Phase.String(), action.Player, c.Name, target.Def.Name))
}

func (e *Engine) applyPlayTrainer(gs *state.GameState, action Action) {
	ps := gs.Player(action.Player)
	if action.HandIndex < 0 || action.HandIndex >= len(ps.Hand) {
		return
	}
	c := ps.Hand[action.HandIndex]
	ps.RemoveFromHand(c)
	switch c.TrainerSubtype {
	case dsl.TrainerSupporter:
		ps.SupporterPlayedThisTurn = true
		ps.Discard = append(ps.Discard, c)
	case dsl.TrainerStadium:
		if gs.CurrentStadium != nil {
			ps.Discard = append(ps.Discard, gs.CurrentStadium)
		}
		gs.CurrentStadium = c
	case dsl.TrainerTool:
		// Attached to the player's own active Pokemon — the DSL has no
		// separate "attach tool" effect kind, so the target slot is
		// fixed rather than chosen (spec.md Section 4.8 "Item/Tool
		// always legal" says nothing about target selection).
		if ps.Active != nil {
			ps.Active.Tool = c
		}
	default:
		ps.Discard = append(ps.Discard, c)
	}
	e.log(log.NewPlayTrainerEvent(gs.Turn, gs.Phase.String(), action.Player, c.Name))

	ctx := eval.Context{GS: gs, ActingPlayer: action.Player}
	pending, _ := e.Interp.Run(ctx, c.TrainerEffects)
	gs.Pending = pending
}

func (e *Engine) applyUseAbility(gs *state.GameState, action Action) {
	ps := gs.Player(action.Player)
	poke := pokemonAt(ps, action.BenchIndex)
	if poke == nil || poke.Def.PokeAbility == nil {
		return
	}
	ab := poke.Def.PokeAbility
	poke.AbilityUsedThisTurn = true
	ps.AbilitiesUsedThisTurn[ab.Name] = true
	e.log(log.NewUseAbilityEvent(gs.Turn, gs.Phase.String(), action.Player, poke.Def.Name, ab.Name))

	ctx := eval.Context{GS: gs, ActingPlayer: action.Player, Self: poke}
	pending, _ := e.Interp.Run(ctx, ab.Effects)
	gs.Pending = pending
}

func (e *Engine) applyRetreat(gs *state.GameState, action Action) {
	ps := gs.Player(action.Player)
	if ps.Active == nil || action.BenchIndex < 0 || action.BenchIndex >= len(ps.Bench) {
		return
	}
	outName := ps.Active.Def.Name
	cost := ps.Active.RetreatCost()
	ctx := eval.Context{GS: gs, ActingPlayer: action.Player, Self: ps.Active}
	e.Interp.DiscardAnyEnergy(ctx, ps.Active, cost)
	ps.SwapActiveWithBench(action.BenchIndex)
	ps.RetreatedThisTurn = true
	ps.Active.RetreatedThisTurn = true
	e.log(log.NewRetreatEvent(gs.Turn, gs.Phase.String(), action.Player, outName, ps.Active.Def.Name))
}

// applyChooseCard submits one selection (or a skip) toward gs.Pending.
// Pick/Skip return the same *PendingChoice pointer while more selections
// are still needed, so that case leaves gs.Pending in place without
// logging a resolution. Once the choice actually finalizes, FromAttack
// carries over to any newly-raised pending choice from the residual, and
// the turn advances to BetweenTurns only once the whole chain drains
// (spec.md Section 4.8 "Attack").
func (e *Engine) applyChooseCard(gs *state.GameState, action Action) {
	pc := gs.Pending
	if pc == nil {
		return
	}
	player := pc.Player
	ctx := eval.Context{GS: gs, ActingPlayer: player}
	if active := gs.Player(player).Active; active != nil {
		ctx.Self = active
	}

	var pending *state.PendingChoice
	if action.Skip {
		pending, _ = e.Interp.Skip(ctx, pc)
	} else {
		pending, _ = e.Interp.Pick(ctx, pc, action.ChoiceID)
	}

	if pending == pc {
		gs.Pending = pending
		return
	}

	gs.Pending = pending
	e.log(log.NewChoiceResolvedEvent(gs.Turn, gs.Phase.String(), player, pc.Kind.String()))

	if pc.FromAttack {
		if pending != nil {
			pending.FromAttack = true
		} else {
			gs.Phase = state.PhaseBetweenTurns
			e.log(log.NewPhaseChangeEvent(gs.Turn, gs.Phase.String()))
		}
	}
}

func (e *Engine) applyPass(gs *state.GameState, action Action) {
	if gs.Phase == state.PhaseMain {
		gs.Phase = state.PhaseAttack
		e.log(log.NewPhaseChangeEvent(gs.Turn, gs.Phase.String()))
		return
	}
	e.EndTurn(gs)
}

func (e *Engine) checkWinConditions(gs *state.GameState) {
	if gs.Over {
		return
	}
	for p := 0; p < 2; p++ {
		ps := gs.Player(p)
		if len(ps.Prizes) == 0 && ps.PrizesTaken > 0 {
			e.latchWinner(gs, p, "prizes taken")
			return
		}
	}
	for p := 0; p < 2; p++ {
		ps := gs.Player(p)
		if ps.Active == nil && len(ps.Bench) == 0 {
			e.latchWinner(gs, gs.Opponent(p), "no pokemon in play")
			return
		}
	}
}
