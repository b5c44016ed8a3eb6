package engine

import (
	"fmt"

	"github.com/kuimelis/ptcgcore/internal/cards"
	"github.com/kuimelis/ptcgcore/internal/dsl"
	"github.com/kuimelis/ptcgcore/internal/eval"
	"github.com/kuimelis/ptcgcore/internal/state"
)

// LegalActions enumerates every Action legal in gs's current state
// (spec.md Section 4.8 "legal_actions"). While a PendingChoice is
// outstanding, only ChooseCard (and, when the choice's CanSkip is set, a
// skip) is legal — every other kind of action is refused
// until the choice resolves (spec.md Section 3 "pending_choice
// exclusivity").
func LegalActions(gs *state.GameState) []Action {
	if gs.Over {
		return nil
	}
	if gs.Pending != nil {
		return legalChoiceActions(gs)
	}
	switch gs.Phase {
	case state.PhaseMain:
		return legalMainActions(gs)
	case state.PhaseAttack:
		return legalAttackActions(gs)
	default:
		return nil
	}
}

// legalChoiceActions enumerates one ChooseCard action per remaining
// option in the pending choice (spec.md Section 6 "ChooseCard{choice_id,
// label?}" — one action per option, not one opaque "resolve" action),
// plus a skip action when the choice's CanSkip permits stopping before
// MaxCount selections are made.
func legalChoiceActions(gs *state.GameState) []Action {
	pc := gs.Pending
	actions := make([]Action, 0, len(pc.Options)+1)
	for _, opt := range pc.Options {
		actions = append(actions, Action{
			Type:     ActionChooseCard,
			Player:   pc.Player,
			ChoiceID: opt.ID,
			Label:    fmt.Sprintf("choose %s", opt.Label),
		})
	}
	if pc.CanSkip {
		actions = append(actions, Action{Type: ActionChooseCard, Player: pc.Player, Skip: true, Label: "skip"})
	}
	return actions
}

func legalMainActions(gs *state.GameState) []Action {
	player := gs.ActivePlayer
	ps := gs.Player(player)
	var actions []Action

	for i, c := range ps.Hand {
		switch c.Kind {
		case dsl.CardKindPokemon:
			if c.IsBasic() {
				if ps.Active == nil {
					actions = append(actions, Action{Type: ActionPlayPokemon, Player: player, HandIndex: i, BenchIndex: -1, Label: "play " + c.Name + " as active"})
				}
				if ps.FreeBenchSlots() > 0 {
					actions = append(actions, Action{Type: ActionPlayPokemon, Player: player, HandIndex: i, BenchIndex: -2, Label: "bench " + c.Name})
				}
			} else {
				for _, target := range evolutionTargets(gs, ps, c) {
					actions = append(actions, Action{Type: ActionPlayPokemon, Player: player, HandIndex: i, BenchIndex: benchIndexOf(ps, target), Label: "evolve " + target.Def.Name + " into " + c.Name})
				}
			}

		case dsl.CardKindEnergy:
			if !ps.EnergyAttachedThisTurn {
				for _, poke := range ps.AllPokemon() {
					benchIdx := benchIndexOf(ps, poke)
					actions = append(actions, Action{Type: ActionAttachEnergy, Player: player, HandIndex: i, BenchIndex: benchIdx, Label: "attach " + c.Name + " to " + poke.Def.Name})
				}
			}

		case dsl.CardKindTrainer:
			if trainerPlayable(gs, ps, c) {
				actions = append(actions, Action{Type: ActionPlayTrainer, Player: player, HandIndex: i, Label: "play " + c.Name})
			}
		}
	}

	for _, poke := range ps.AllPokemon() {
		benchIdx := benchIndexOf(ps, poke)
		if abilityUsable(gs, ps, poke) {
			actions = append(actions, Action{Type: ActionUseAbility, Player: player, BenchIndex: benchIdx, AbilityName: poke.Def.PokeAbility.Name, Label: "use " + poke.Def.PokeAbility.Name})
		}
	}

	if ps.Active != nil && canRetreat(gs, ps) {
		for idx := range ps.Bench {
			actions = append(actions, Action{Type: ActionRetreat, Player: player, BenchIndex: idx, Label: "retreat to " + ps.Bench[idx].Def.Name})
		}
	}

	if ps.Active != nil && !gs.HasFlag("cannotAttack", player, "") {
		for idx, atk := range ps.Active.Def.Attacks {
			if canPayCost(ps.Active, atk.Cost) {
				actions = append(actions, Action{Type: ActionAttack, Player: player, AttackIndex: idx, Label: atk.Name})
			}
		}
	}

	actions = append(actions, Action{Type: ActionPass, Player: player, Label: "pass"})
	return actions
}

func legalAttackActions(gs *state.GameState) []Action {
	player := gs.ActivePlayer
	ps := gs.Player(player)
	var actions []Action
	if ps.Active != nil && !gs.HasFlag("cannotAttack", player, "") {
		for idx, atk := range ps.Active.Def.Attacks {
			if canPayCost(ps.Active, atk.Cost) {
				actions = append(actions, Action{Type: ActionAttack, Player: player, AttackIndex: idx, Label: atk.Name})
			}
		}
	}
	actions = append(actions, Action{Type: ActionPass, Player: player, Label: "pass"})
	return actions
}

// evolutionTargets returns the in-play Pokemon (active first, then
// bench, matching PlayerState.AllPokemon ordering) that c may legally
// evolve, honoring the "not the turn it entered play" restriction
// (spec.md Section 3 "evolved_this_turn" / "entered play this turn").
func evolutionTargets(gs *state.GameState, ps *state.PlayerState, c *cards.Card) []*state.PokemonInPlay {
	var out []*state.PokemonInPlay
	for _, poke := range ps.AllPokemon() {
		if poke.Def.Name != c.EvolvesFrom {
			continue
		}
		if poke.EnteredPlayTurn == currentEvolutionTurn(gs, poke) {
			continue
		}
		out = append(out, poke)
	}
	return out
}

// currentEvolutionTurn exists purely so evolutionTargets reads as a
// comparison rather than a magic sentinel; EnteredPlayTurn equal to the
// value returned here means "this very turn" for the Pokemon in
// question. Kept as its own function since the real rule (no evolving
// the turn a Pokemon was placed, nor the turn it itself evolved) folds
// two separate flags together here.
func currentEvolutionTurn(gs *state.GameState, poke *state.PokemonInPlay) int {
	if poke.EvolvedThisTurn {
		return poke.EnteredPlayTurn
	}
	return gs.Turn
}

func trainerPlayable(gs *state.GameState, ps *state.PlayerState, c *cards.Card) bool {
	if c.TrainerSubtype == dsl.TrainerSupporter && ps.SupporterPlayedThisTurn {
		return false
	}
	if gs.HasFlag("cannotPlayTrainers", playerIndexForState(gs, ps), "") {
		return false
	}
	if c.TrainerSubtype == dsl.TrainerTool && ps.Active == nil {
		return false // nothing to attach the tool to
	}
	ctx := eval.Context{GS: gs, ActingPlayer: playerIndexForState(gs, ps)}
	return eval.EvalCondition(ctx, c.PlayCondition)
}

func abilityUsable(gs *state.GameState, ps *state.PlayerState, poke *state.PokemonInPlay) bool {
	ab := poke.Def.PokeAbility
	if ab == nil || ab.Trigger != dsl.TriggerOncePerTurn {
		return false
	}
	if poke.AbilityUsedThisTurn || ps.AbilitiesUsedThisTurn[ab.Name] {
		return false
	}
	player := playerIndexForState(gs, ps)
	if gs.HasFlag("cannotUseAbilities", player, "") {
		return false
	}
	if abilitiesLockedOut(gs, player, poke) {
		return false
	}
	ctx := eval.Context{GS: gs, ActingPlayer: player, Self: poke}
	return eval.EvalCondition(ctx, ab.Condition)
}

// abilitiesLockedOut implements the passive "lock all Basic abilities
// except this one" rule (spec.md Section 4.8): an ability is blocked if
// either active Pokemon carries a passive ability and the subject is a
// Basic with a different ability name.
func abilitiesLockedOut(gs *state.GameState, player int, poke *state.PokemonInPlay) bool {
	if !poke.Def.IsBasic() {
		return false
	}
	for p := 0; p < 2; p++ {
		locker := gs.Player(p).Active
		if locker == nil || locker.Def.PokeAbility == nil {
			continue
		}
		lockAb := locker.Def.PokeAbility
		if lockAb.Trigger != dsl.TriggerPassive {
			continue
		}
		if locker.ID == poke.ID {
			continue
		}
		if poke.Def.PokeAbility != nil && poke.Def.PokeAbility.Name != lockAb.Name {
			return true
		}
	}
	return false
}

func canRetreat(gs *state.GameState, ps *state.PlayerState) bool {
	if ps.RetreatedThisTurn || ps.Active == nil || len(ps.Bench) == 0 {
		return false
	}
	if gs.HasFlag("cannotRetreat", -1, ps.Active.ID) {
		return false
	}
	return ps.Active.EnergyCount("") >= ps.Active.RetreatCost()
}

// canPayCost implements the energy cost matching algorithm (spec.md
// Section 6): every non-Colorless requirement must be satisfied by an
// attached energy of that exact type or a special energy whose provided
// types include it; remaining Colorless requirements are satisfied by
// any leftover attached energy.
func canPayCost(poke *state.PokemonInPlay, cost []string) bool {
	available := make([]*cards.Card, len(poke.Energy))
	for i, e := range poke.Energy {
		available[i] = e.Card
	}
	colorless := 0
	for _, req := range cost {
		if req == "Colorless" {
			colorless++
			continue
		}
		if !consumeOne(&available, req) {
			return false
		}
	}
	return len(available) >= colorless
}

func consumeOne(available *[]*cards.Card, elementType string) bool {
	list := *available
	for i, c := range list {
		for _, t := range c.ProvidesTypes {
			if t == elementType {
				*available = append(list[:i], list[i+1:]...)
				return true
			}
		}
	}
	return false
}

// benchIndexOf returns the Action.BenchIndex encoding for poke within ps:
// -1 if poke is the active Pokemon, otherwise its bench slot index.
func benchIndexOf(ps *state.PlayerState, poke *state.PokemonInPlay) int {
	if ps.Active != nil && ps.Active.ID == poke.ID {
		return -1
	}
	for i, b := range ps.Bench {
		if b.ID == poke.ID {
			return i
		}
	}
	return -1
}

func playerIndexForState(gs *state.GameState, ps *state.PlayerState) int {
	if gs.Players[0] == ps {
		return 0
	}
	return 1
}
