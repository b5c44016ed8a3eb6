package interp

import (
	"github.com/kuimelis/ptcgcore/internal/cards"
	"github.com/kuimelis/ptcgcore/internal/dsl"
	"github.com/kuimelis/ptcgcore/internal/eval"
	"github.com/kuimelis/ptcgcore/internal/log"
	"github.com/kuimelis/ptcgcore/internal/state"
)

// ApplyDamage is the exported entry point for damage originating outside
// an Effect tree — between-turn poison/burn damage (spec.md Section 4.8
// "endTurn") and an attack's base damage (engine applyAttack). It goes
// through the same shield
// attenuation and knockout handling as every DSL-driven damage effect,
// so there is exactly one knockout/prize code path in the module.
func (ip *Interpreter) ApplyDamage(ctx eval.Context, target *state.PokemonInPlay, amount int, reason string) {
	ip.applyDamage(ctx, target, amount, reason)
}

// applyDamage adds damage to target after attenuating it through any
// active DamageShields (spec.md Section 4.6 "damage ... with DamageShield
// attenuation"), then resolves a knockout if the target's HP reaches
// zero.
func (ip *Interpreter) applyDamage(ctx eval.Context, target *state.PokemonInPlay, amount int, reason string) {
	if amount < 0 {
		amount = 0
	}
	for i := len(target.Shields) - 1; i >= 0; i-- {
		shield := target.Shields[i]
		if !shield.Active(ctx.GS.Turn) {
			continue
		}
		if shield.PreventAll {
			amount = 0
			break
		}
		amount -= shield.Amount
		if amount < 0 {
			amount = 0
		}
	}
	if amount == 0 {
		return
	}
	oldHP := target.CurrentHP()
	target.Damage += amount
	newHP := target.CurrentHP()
	ip.log(log.NewDamageEvent(ctx.GS.Turn, ctx.GS.Phase.String(), ctx.ActingPlayer, target.Def.Name, oldHP, newHP, reason))
	if target.IsKnockedOut() {
		ip.resolveKnockout(ctx, target)
	}
}

func (ip *Interpreter) heal(ctx eval.Context, target *state.PokemonInPlay, amount int) {
	if amount <= 0 {
		return
	}
	oldHP := target.CurrentHP()
	target.Damage -= amount
	if target.Damage < 0 {
		target.Damage = 0
	}
	newHP := target.CurrentHP()
	ip.log(log.NewHealEvent(ctx.GS.Turn, ctx.GS.Phase.String(), ctx.ActingPlayer, target.Def.Name, oldHP, newHP))
}

// resolveKnockout moves a knocked-out Pokemon (and its attached energy
// and tool) to its owner's discard pile, awards prizes to the opponent,
// and — per this port's resolution of the "empty board after knockout"
// open question (see DESIGN.md) — automatically promotes the owner's
// first bench slot to active, since no interactive choice protocol for
// post-knockout promotion is wired into PendingChoice's four kinds.
func (ip *Interpreter) resolveKnockout(ctx eval.Context, poke *state.PokemonInPlay) {
	owner := poke.Owner
	ps := ctx.GS.Player(owner)

	wasActive := ps.Active != nil && ps.Active.ID == poke.ID
	if wasActive {
		ps.Active = nil
	} else {
		ps.RemoveFromBench(poke.ID)
	}

	for _, e := range poke.Energy {
		ps.Discard = append(ps.Discard, e.Card)
	}
	if poke.Tool != nil {
		ps.Discard = append(ps.Discard, poke.Tool)
	}
	ps.Discard = append(ps.Discard, poke.Def)

	ip.log(log.NewKnockoutEvent(ctx.GS.Turn, ctx.GS.Phase.String(), owner, poke.Def.Name))

	prizeCount := 1
	if poke.Def.IsRuleBox || poke.Def.IsTera {
		prizeCount = 2
	}
	opponent := ctx.GS.Opponent(owner)
	opponentState := ctx.GS.Player(opponent)
	taken := 0
	for i := 0; i < prizeCount && len(opponentState.Prizes) > 0; i++ {
		prize := opponentState.Prizes[len(opponentState.Prizes)-1]
		opponentState.Prizes = opponentState.Prizes[:len(opponentState.Prizes)-1]
		opponentState.Hand = append(opponentState.Hand, prize)
		opponentState.PrizesTaken++
		taken++
	}
	if taken > 0 {
		ip.log(log.NewPrizeTakenEvent(ctx.GS.Turn, ctx.GS.Phase.String(), opponent, taken, len(opponentState.Prizes)))
	}

	if wasActive && len(ps.Bench) > 0 {
		ps.PromoteBenchToActive(0)
	}
}

// discardFromPokemon removes up to count attached energy or tool cards
// matching filter from p to its owner's discard pile, rightmost-first
// (spec.md Section 4.6 "discard (from Pokemon)").
func (ip *Interpreter) discardFromPokemon(ctx eval.Context, p *state.PokemonInPlay, filter *dsl.CardFilter, count int) {
	ps := ctx.GS.Player(p.Owner)
	if filter != nil && filter.Kind == dsl.FilterTrainerSubtype && filter.TrainerSubtype == dsl.TrainerTool {
		if p.Tool != nil {
			ps.Discard = append(ps.Discard, p.Tool)
			p.Tool = nil
		}
		return
	}
	discarded := 0
	for i := len(p.Energy) - 1; i >= 0 && discarded < count; i-- {
		if eval.MatchesFilter(filter, p.Energy[i].Card) {
			ps.Discard = append(ps.Discard, p.Energy[i].Card)
			p.Energy = append(p.Energy[:i], p.Energy[i+1:]...)
			discarded++
		}
	}
}

// removeEnergy discards up to count attached energy cards matching
// elementType ("" matches any) from p to its owner's discard pile (spec.md
// Section 4.6 "removeEnergy"). rightmostFirst follows the "same rule as
// discard" for the general DSL effect; DiscardAnyEnergy's retreat-cost
// payment passes false to remove leftmost-first instead (spec.md Section 6
// "Retreat").
func (ip *Interpreter) removeEnergy(ctx eval.Context, p *state.PokemonInPlay, elementType string, count int, rightmostFirst bool) {
	ps := ctx.GS.Player(p.Owner)
	matches := func(e state.EnergyAttachment) bool {
		if elementType == "" {
			return true
		}
		for _, t := range e.Card.ProvidesTypes {
			if t == elementType {
				return true
			}
		}
		return false
	}
	removed := 0
	if rightmostFirst {
		for i := len(p.Energy) - 1; i >= 0 && removed < count; i-- {
			if matches(p.Energy[i]) {
				ps.Discard = append(ps.Discard, p.Energy[i].Card)
				p.Energy = append(p.Energy[:i], p.Energy[i+1:]...)
				removed++
			}
		}
		return
	}
	kept := p.Energy[:0]
	for _, e := range p.Energy {
		if matches(e) && removed < count {
			ps.Discard = append(ps.Discard, e.Card)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	p.Energy = kept
}

func (ip *Interpreter) moveEnergy(ctx eval.Context, eff *dsl.Effect) {
	fromTargets := eval.ResolveTarget(ctx, eff.FromTarget)
	toTargets := eval.ResolveTarget(ctx, eff.Targets[0])
	if len(fromTargets) == 0 || len(toTargets) == 0 {
		return
	}
	from, to := fromTargets[0], toTargets[0]
	for i, e := range from.Energy {
		matches := eff.EnergyType == ""
		if !matches {
			for _, t := range e.Card.ProvidesTypes {
				if t == eff.EnergyType {
					matches = true
					break
				}
			}
		}
		if matches {
			from.Energy = append(from.Energy[:i], from.Energy[i+1:]...)
			to.Energy = append(to.Energy, e)
			return
		}
	}
}

func (ip *Interpreter) addEnergy(ctx eval.Context, eff *dsl.Effect) {
	count := eval.EvalValue(ctx, eff.Count)
	ps := ctx.GS.Player(ctx.ActingPlayer)
	for _, t := range eff.Targets {
		for _, p := range eval.ResolveTarget(ctx, t) {
			for i := 0; i < count; i++ {
				card := ip.takeEnergyCard(ps, eff.EnergyType, eff.EnergySource)
				if card == nil {
					return
				}
				p.Energy = append(p.Energy, state.EnergyAttachment{Card: card})
				ip.log(log.NewAttachEnergyEvent(ctx.GS.Turn, ctx.GS.Phase.String(), ctx.ActingPlayer, card.Name, p.Def.Name))
			}
		}
	}
}

func (ip *Interpreter) takeEnergyCard(ps *state.PlayerState, elementType string, source dsl.EnergySourceKind) *cards.Card {
	matchesType := func(c *cards.Card) bool {
		if elementType == "" {
			return true
		}
		for _, t := range c.ProvidesTypes {
			if t == elementType {
				return true
			}
		}
		return false
	}
	switch source {
	case dsl.EnergySourceDeck:
		for i := len(ps.Deck) - 1; i >= 0; i-- {
			if ps.Deck[i].Kind == dsl.CardKindEnergy && matchesType(ps.Deck[i]) {
				c := ps.Deck[i]
				ps.Deck = append(ps.Deck[:i], ps.Deck[i+1:]...)
				return c
			}
		}
		return nil
	case dsl.EnergySourceDiscard:
		for i := len(ps.Discard) - 1; i >= 0; i-- {
			if ps.Discard[i].Kind == dsl.CardKindEnergy && matchesType(ps.Discard[i]) {
				c := ps.Discard[i]
				ps.Discard = append(ps.Discard[:i], ps.Discard[i+1:]...)
				return c
			}
		}
		return nil
	case dsl.EnergySourceCreate:
		return &cards.Card{
			Name:          elementType + " Energy",
			Kind:          dsl.CardKindEnergy,
			EnergySubtype: dsl.EnergyBasic,
			ProvidesTypes: []string{elementType},
		}
	default:
		return nil
	}
}
