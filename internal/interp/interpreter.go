// Package interp implements the EffectInterpreter (spec.md Section 4.6)
// and the ChoiceResolver (spec.md Section 4.7): the only code in this
// module that mutates a state.GameState in response to a dsl.Effect
// tree. Every other evaluator package (internal/eval) is a pure function;
// this package is where effects actually happen.
package interp

import (
	"github.com/kuimelis/ptcgcore/internal/cards"
	"github.com/kuimelis/ptcgcore/internal/dsl"
	"github.com/kuimelis/ptcgcore/internal/eval"
	"github.com/kuimelis/ptcgcore/internal/log"
	"github.com/kuimelis/ptcgcore/internal/state"
)

// Interpreter walks Effect trees and applies them to a GameState,
// suspending into a PendingChoice whenever an effect needs player input
// (spec.md Section 4.6 "suspension writes remaining effects of the
// enclosing list into PendingChoice").
type Interpreter struct {
	Log log.EventLogger
}

func New(logger log.EventLogger) *Interpreter {
	return &Interpreter{Log: logger}
}

func (ip *Interpreter) log(e log.GameEvent) {
	if ip.Log != nil {
		ip.Log.Log(e)
	}
}

// Run interprets a list of effects in order against ctx, returning a
// non-nil PendingChoice if interpretation suspended partway through. The
// returned choice's Residual is the list of not-yet-run effects — from
// both the suspending effect's own continuation and every sibling effect
// that followed it in list — so that resuming is just calling Run again
// with choice.Residual (spec.md Section 9 "continuation as residual
// list").
func (ip *Interpreter) Run(ctx eval.Context, list []*dsl.Effect) (*state.PendingChoice, error) {
	for i, eff := range list {
		pending, err := ip.runOne(ctx, eff)
		if err != nil {
			return nil, err
		}
		if pending != nil {
			remaining := list[i+1:]
			merged := make([]*dsl.Effect, 0, len(pending.Residual)+len(remaining))
			merged = append(merged, pending.Residual...)
			merged = append(merged, remaining...)
			pending.Residual = merged
			return pending, nil
		}
	}
	return nil, nil
}

func (ip *Interpreter) runOne(ctx eval.Context, eff *dsl.Effect) (*state.PendingChoice, error) {
	switch eff.Kind {
	case dsl.EffectDamage:
		amount := eval.EvalValue(ctx, eff.Amount)
		for _, t := range eff.Targets {
			for _, p := range eval.ResolveTarget(ctx, t) {
				ip.applyDamage(ctx, p, amount, "attack")
			}
		}
		return nil, nil

	case dsl.EffectHeal:
		amount := eval.EvalValue(ctx, eff.Amount)
		for _, t := range eff.Targets {
			for _, p := range eval.ResolveTarget(ctx, t) {
				ip.heal(ctx, p, amount)
			}
		}
		return nil, nil

	case dsl.EffectSetHP:
		amount := eval.EvalValue(ctx, eff.Amount)
		for _, t := range eff.Targets {
			for _, p := range eval.ResolveTarget(ctx, t) {
				p.Damage = p.Def.MaxHP - amount
				if p.Damage < 0 {
					p.Damage = 0
				}
			}
		}
		return nil, nil

	case dsl.EffectPreventDamage:
		for _, t := range eff.Targets {
			for _, p := range eval.ResolveTarget(ctx, t) {
				p.Shields = append(p.Shields, state.DamageShield{
					PreventAll:    true,
					Duration:      eff.Duration,
					ExpiresAtTurn: ctx.GS.Turn + 1,
				})
			}
		}
		return nil, nil

	case dsl.EffectSelfDamage:
		if ctx.Self != nil {
			ip.applyDamage(ctx, ctx.Self, eval.EvalValue(ctx, eff.Amount), "recoil")
		}
		return nil, nil

	case dsl.EffectBonusDamage:
		bonus := eval.EvalValue(ctx, eff.Amount) + eff.PerUnit*ip.countForBonus(ctx, eff)
		for _, t := range eff.Targets {
			for _, p := range eval.ResolveTarget(ctx, t) {
				ip.applyDamage(ctx, p, bonus, "bonus")
			}
		}
		return nil, nil

	case dsl.EffectDraw:
		player := eval.ResolvePlayer(ctx, eff.Player)
		count := eval.EvalValue(ctx, eff.Count)
		ps := ctx.GS.Player(player)
		for i := 0; i < count; i++ {
			if c := ps.DrawCard(); c != nil {
				ip.log(log.NewDrawEvent(ctx.GS.Turn, ctx.GS.Phase.String(), player, c.Name))
			}
		}
		return nil, nil

	case dsl.EffectMill:
		player := eval.ResolvePlayer(ctx, eff.Player)
		count := eval.EvalValue(ctx, eff.Count)
		ps := ctx.GS.Player(player)
		milled := 0
		for i := 0; i < count && len(ps.Deck) > 0; i++ {
			c := ps.Deck[len(ps.Deck)-1]
			ps.Deck = ps.Deck[:len(ps.Deck)-1]
			ps.Discard = append(ps.Discard, c)
			milled++
		}
		ip.log(log.NewMillEvent(ctx.GS.Turn, ctx.GS.Phase.String(), player, milled))
		return nil, nil

	case dsl.EffectShuffle:
		player := eval.ResolvePlayer(ctx, eff.Player)
		ip.shuffleZone(ctx, player, eff.Zone)
		return nil, nil

	case dsl.EffectSearch:
		return ip.runSearch(ctx, eff)

	case dsl.EffectDiscard:
		count := eval.EvalValue(ctx, eff.Count)
		if count <= 0 {
			count = 1
		}
		for _, t := range eff.Targets {
			for _, p := range eval.ResolveTarget(ctx, t) {
				ip.discardFromPokemon(ctx, p, eff.Filter, count)
			}
		}
		return nil, nil

	case dsl.EffectDiscardHand:
		player := eval.ResolvePlayer(ctx, eff.Player)
		ps := ctx.GS.Player(player)
		ps.Discard = append(ps.Discard, ps.Hand...)
		ps.Hand = nil
		return nil, nil

	case dsl.EffectDiscardFromHand:
		return ip.runDiscardFromHand(ctx, eff)

	case dsl.EffectMoveEnergy:
		ip.moveEnergy(ctx, eff)
		return nil, nil

	case dsl.EffectAddEnergy:
		ip.addEnergy(ctx, eff)
		return nil, nil

	case dsl.EffectRemoveEnergy:
		count := eval.EvalValue(ctx, eff.Count)
		for _, t := range eff.Targets {
			for _, p := range eval.ResolveTarget(ctx, t) {
				ip.removeEnergy(ctx, p, eff.EnergyType, count, true)
			}
		}
		return nil, nil

	case dsl.EffectAddStatus:
		for _, t := range eff.Targets {
			for _, p := range eval.ResolveTarget(ctx, t) {
				p.Status = eff.Status
			}
		}
		return nil, nil

	case dsl.EffectRemoveStatus:
		for _, t := range eff.Targets {
			for _, p := range eval.ResolveTarget(ctx, t) {
				if eff.RemoveAllStatus || p.Status == eff.Status {
					p.Status = dsl.StatusNone
				}
			}
		}
		return nil, nil

	case dsl.EffectForceSwitch:
		return ip.runForceSwitch(ctx, eff)

	case dsl.EffectSelfSwitch:
		return ip.runSelfSwitch(ctx, eff)

	case dsl.EffectExtraTurn:
		ctx.GS.Player(eval.ResolvePlayer(ctx, eff.Player)).ExtraTurn = true
		return nil, nil

	case dsl.EffectSkipNextTurn:
		ctx.GS.Player(eval.ResolvePlayer(ctx, eff.Player)).SkipNextTurn = true
		return nil, nil

	case dsl.EffectOpponentCannotAttack:
		ip.setOpponentFlag(ctx, "cannotAttack", eff.Duration)
		return nil, nil

	case dsl.EffectOpponentCannotPlayTrainers:
		ip.setOpponentFlag(ctx, "cannotPlayTrainers", eff.Duration)
		return nil, nil

	case dsl.EffectOpponentCannotUseAbilities:
		ip.setOpponentFlag(ctx, "cannotUseAbilities", eff.Duration)
		return nil, nil

	case dsl.EffectCannotRetreat:
		for _, t := range eff.Targets {
			for _, p := range eval.ResolveTarget(ctx, t) {
				ctx.GS.SetFlag(state.GameFlag{
					Name:          "cannotRetreat",
					Owner:         -1,
					TargetID:      p.ID,
					Duration:      eff.Duration,
					ExpiresAtTurn: ctx.GS.Turn + 1,
				})
			}
		}
		return nil, nil

	case dsl.EffectSearchAndAttach:
		return ip.runSearchAndAttach(ctx, eff)

	case dsl.EffectShuffleHandIntoDeck:
		player := eval.ResolvePlayer(ctx, eff.Player)
		ps := ctx.GS.Player(player)
		ps.Deck = append(ps.Deck, ps.Hand...)
		ps.Hand = nil
		ip.shuffleZone(ctx, player, dsl.ZoneDeck)
		return nil, nil

	case dsl.EffectAddGameFlag:
		ctx.GS.SetFlag(state.GameFlag{
			Name:          eff.FlagName,
			Owner:         ctx.ActingPlayer,
			Duration:      eff.Duration,
			ExpiresAtTurn: ctx.GS.Turn + 1,
		})
		ip.log(log.NewGameFlagSetEvent(ctx.GS.Turn, ctx.GS.Phase.String(), ctx.ActingPlayer, eff.FlagName))
		return nil, nil

	case dsl.EffectRareCandy:
		return ip.runRareCandy(ctx, eff)

	case dsl.EffectConditional:
		if eval.EvalCondition(ctx, eff.Condition) {
			return ip.Run(ctx, eff.Then)
		}
		return ip.Run(ctx, eff.Else)

	case dsl.EffectChoice:
		return ip.runChoice(ctx, eff)

	case dsl.EffectSequence:
		return ip.Run(ctx, eff.Inner)

	case dsl.EffectRepeat:
		flat := make([]*dsl.Effect, 0, len(eff.Inner)*eff.RepeatCount)
		for i := 0; i < eff.RepeatCount; i++ {
			flat = append(flat, eff.Inner...)
		}
		return ip.Run(ctx, flat)

	case dsl.EffectNoop:
		return nil, nil

	default:
		return nil, nil
	}
}

func (ip *Interpreter) setOpponentFlag(ctx eval.Context, name string, d dsl.Duration) {
	opp := ctx.Opponent()
	ctx.GS.SetFlag(state.GameFlag{
		Name:          name,
		Owner:         opp,
		Duration:      d,
		ExpiresAtTurn: ctx.GS.Turn + 1,
	})
}

func (ip *Interpreter) countForBonus(ctx eval.Context, eff *dsl.Effect) int {
	switch eff.CountProperty {
	case dsl.BonusEnergyAttached:
		total := 0
		for _, p := range eval.ResolveTarget(ctx, eff.CountTarget) {
			total += p.EnergyCount("")
		}
		return total
	case dsl.BonusDamageOn:
		total := 0
		for _, p := range eval.ResolveTarget(ctx, eff.CountTarget) {
			total += p.Damage
		}
		return total
	case dsl.BonusBenchCount:
		return ctx.GS.Player(eval.ResolvePlayer(ctx, dsl.PlayerActing)).BenchCount()
	case dsl.BonusPrizesTaken:
		return ctx.GS.Player(ctx.ActingPlayer).PrizesTaken
	case dsl.BonusTrainerCountInHand:
		n := 0
		for _, c := range ctx.GS.Player(ctx.ActingPlayer).Hand {
			if c.Kind == dsl.CardKindTrainer {
				n++
			}
		}
		return n
	default:
		return 0
	}
}

func (ip *Interpreter) shuffleZone(ctx eval.Context, player int, zone dsl.ZoneKind) {
	ps := ctx.GS.Player(player)
	var z *[]*cards.Card
	switch zone {
	case dsl.ZoneDeck:
		z = &ps.Deck
	case dsl.ZoneHand:
		z = &ps.Hand
	case dsl.ZoneDiscard:
		z = &ps.Discard
	default:
		return
	}
	shuffleCards(ctx, *z)
	ip.log(log.NewShuffleEvent(ctx.GS.Turn, ctx.GS.Phase.String(), player, zone.String()))
}

// shuffleCards performs a Fisher-Yates shuffle using the game's seeded RNG.
func shuffleCards(ctx eval.Context, deck []*cards.Card) {
	n := len(deck)
	for i := n - 1; i > 0; i-- {
		j := ctx.GS.RNG.NextIntN(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}
