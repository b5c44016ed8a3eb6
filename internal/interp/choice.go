package interp

import (
	"fmt"

	"github.com/kuimelis/ptcgcore/internal/cards"
	"github.com/kuimelis/ptcgcore/internal/dsl"
	"github.com/kuimelis/ptcgcore/internal/eval"
	"github.com/kuimelis/ptcgcore/internal/log"
	"github.com/kuimelis/ptcgcore/internal/state"
)

// runSearch implements the search effect family (spec.md Section 4.6
// "search", Section 8 testable property 7 "min(k, m)"). When the zone
// has no more matches than were requested, every match moves to hand
// immediately with no PendingChoice — there is nothing to choose among
// (spec.md Section 8 scenario S5: 2 matches for count=2 resolves with no
// pending choice). A PendingChoice of kind SearchCard is only raised
// when matches exceed the requested count; the player picks up to
// min(k, m) == k of them and may skip before reaching k.
func (ip *Interpreter) runSearch(ctx eval.Context, eff *dsl.Effect) (*state.PendingChoice, error) {
	player := eval.ResolvePlayer(ctx, eff.Player)
	ps := ctx.GS.Player(player)
	var pool []*cards.Card
	switch eff.Zone {
	case dsl.ZoneDeck:
		pool = ps.Deck
	case dsl.ZoneDiscard:
		pool = ps.Discard
	default:
		pool = ps.Deck
	}
	matches := eval.FilterCards(eff.Filter, pool)
	requested := eval.EvalValue(ctx, eff.Count)
	n := requested
	if len(matches) < n {
		n = len(matches)
	}
	if n <= 0 {
		if eff.Zone == dsl.ZoneDeck {
			ip.shuffleZone(ctx, player, dsl.ZoneDeck)
		}
		return nil, nil
	}
	if n >= len(matches) {
		for _, c := range matches {
			ip.removeCardFromZone(ps, eff.Zone, c)
			ps.Hand = append(ps.Hand, c)
		}
		ip.log(log.NewSearchEvent(ctx.GS.Turn, ctx.GS.Phase.String(), player, len(matches), eff.Zone.String()))
		if eff.Zone == dsl.ZoneDeck {
			ip.shuffleZone(ctx, player, dsl.ZoneDeck)
		}
		return nil, nil
	}

	options := make([]state.ChoiceOption, len(matches))
	for i, c := range matches {
		options[i] = state.ChoiceOption{ID: fmt.Sprintf("search-%d", i), Label: c.Name, Card: c}
	}
	ip.log(log.NewChoicePendingEvent(ctx.GS.Turn, ctx.GS.Phase.String(), player, "SearchCard", n))
	return &state.PendingChoice{
		Kind:     dsl.ChoiceSearchCard,
		Player:   player,
		Options:  options,
		MinCount: n,
		MaxCount: n,
		CanSkip:  true, // up-to-N semantics apply even when count > 0
		Zone:     eff.Zone,
	}, nil
}

// finalizeSearch applies a SearchCard choice once its selections are
// complete: the selected cards move from the search zone (deck or
// discard) to hand or, if AttachTargets is set, straight onto those
// Pokemon as energy, the deck is reshuffled if that was the search zone,
// and interpretation resumes with the choice's residual effects.
func (ip *Interpreter) finalizeSearch(ctx eval.Context, pc *state.PendingChoice) (*state.PendingChoice, error) {
	ps := ctx.GS.Player(pc.Player)
	if pc.AttachTargets != nil {
		for _, opt := range pc.Selected {
			ip.removeCardFromZone(ps, pc.Zone, opt.Card)
			for _, t := range pc.AttachTargets {
				for _, p := range eval.ResolveTarget(ctx, t) {
					p.Energy = append(p.Energy, state.EnergyAttachment{Card: opt.Card})
					ip.log(log.NewAttachEnergyEvent(ctx.GS.Turn, ctx.GS.Phase.String(), pc.Player, opt.Card.Name, p.Def.Name))
				}
			}
		}
	} else {
		for _, opt := range pc.Selected {
			ip.removeCardFromZone(ps, pc.Zone, opt.Card)
			ps.Hand = append(ps.Hand, opt.Card)
		}
		ip.log(log.NewSearchEvent(ctx.GS.Turn, ctx.GS.Phase.String(), pc.Player, len(pc.Selected), pc.Zone.String()))
	}
	if pc.Zone == dsl.ZoneDeck {
		ip.shuffleZone(ctx, pc.Player, dsl.ZoneDeck)
	}
	return ip.Run(ctx, pc.Residual)
}

// runDiscardFromHand implements the discardFromHand effect with the same
// min(k, m) auto-resolve-when-unambiguous rule as runSearch.
func (ip *Interpreter) runDiscardFromHand(ctx eval.Context, eff *dsl.Effect) (*state.PendingChoice, error) {
	player := eval.ResolvePlayer(ctx, eff.Player)
	ps := ctx.GS.Player(player)
	matches := eval.FilterCards(eff.Filter, ps.Hand)
	requested := eval.EvalValue(ctx, eff.Count)
	n := requested
	if len(matches) < n {
		n = len(matches)
	}
	if n <= 0 {
		return nil, nil
	}
	if n >= len(matches) {
		for _, c := range matches {
			ps.RemoveFromHand(c)
			ps.Discard = append(ps.Discard, c)
			ip.log(log.NewDiscardEvent(ctx.GS.Turn, ctx.GS.Phase.String(), player, c.Name))
		}
		return nil, nil
	}
	options := make([]state.ChoiceOption, len(matches))
	for i, c := range matches {
		options[i] = state.ChoiceOption{ID: fmt.Sprintf("discard-%d", i), Label: c.Name, Card: c}
	}
	ip.log(log.NewChoicePendingEvent(ctx.GS.Turn, ctx.GS.Phase.String(), player, "DiscardCard", n))
	return &state.PendingChoice{
		Kind:     dsl.ChoiceDiscardCard,
		Player:   player,
		Options:  options,
		MinCount: n,
		MaxCount: n,
		CanSkip:  false,
	}, nil
}

// finalizeDiscard applies a DiscardCard choice from hand.
func (ip *Interpreter) finalizeDiscard(ctx eval.Context, pc *state.PendingChoice) (*state.PendingChoice, error) {
	ps := ctx.GS.Player(pc.Player)
	for _, opt := range pc.Selected {
		ps.RemoveFromHand(opt.Card)
		ps.Discard = append(ps.Discard, opt.Card)
		ip.log(log.NewDiscardEvent(ctx.GS.Turn, ctx.GS.Phase.String(), pc.Player, opt.Card.Name))
	}
	return ip.Run(ctx, pc.Residual)
}

func (ip *Interpreter) runForceSwitch(ctx eval.Context, eff *dsl.Effect) (*state.PendingChoice, error) {
	player := eval.ResolvePlayer(ctx, eff.Player)
	return ip.switchChoice(ctx, player, player)
}

func (ip *Interpreter) runSelfSwitch(ctx eval.Context, eff *dsl.Effect) (*state.PendingChoice, error) {
	player := eval.ResolvePlayer(ctx, eff.Player)
	return ip.switchChoice(ctx, player, player)
}

func (ip *Interpreter) switchChoice(ctx eval.Context, chooser, benchOwner int) (*state.PendingChoice, error) {
	ps := ctx.GS.Player(benchOwner)
	if len(ps.Bench) == 0 {
		return nil, nil
	}
	options := make([]state.ChoiceOption, len(ps.Bench))
	for i, p := range ps.Bench {
		options[i] = state.ChoiceOption{ID: p.ID, Label: p.Def.Name, PokemonID: p.ID}
	}
	ip.log(log.NewChoicePendingEvent(ctx.GS.Turn, ctx.GS.Phase.String(), chooser, "SwitchTarget", 1))
	return &state.PendingChoice{
		Kind:              dsl.ChoiceSwitchTarget,
		Player:            chooser,
		Options:           options,
		MinCount:          1,
		MaxCount:          1,
		CanSkip:           false,
		SwitchPlayerIndex: benchOwner,
	}, nil
}

// finalizeSwitch applies a SwitchTarget choice, swapping the chosen
// bench Pokemon into the active slot.
func (ip *Interpreter) finalizeSwitch(ctx eval.Context, pc *state.PendingChoice) (*state.PendingChoice, error) {
	if len(pc.Selected) > 0 {
		opt := pc.Selected[0]
		ps := ctx.GS.Player(pc.SwitchPlayerIndex)
		for i, p := range ps.Bench {
			if p.ID == opt.PokemonID {
				oldActive := ps.Active
				ps.SwapActiveWithBench(i)
				outName := "(empty)"
				if oldActive != nil {
					outName = oldActive.Def.Name
				}
				ip.log(log.NewSwitchEvent(ctx.GS.Turn, ctx.GS.Phase.String(), pc.SwitchPlayerIndex, outName, p.Def.Name))
				break
			}
		}
	}
	return ip.Run(ctx, pc.Residual)
}

func (ip *Interpreter) runSearchAndAttach(ctx eval.Context, eff *dsl.Effect) (*state.PendingChoice, error) {
	player := eval.ResolvePlayer(ctx, eff.Player)
	ps := ctx.GS.Player(player)
	matches := eval.FilterCards(eff.Filter, ps.Deck)
	if len(matches) == 0 {
		ip.shuffleZone(ctx, player, dsl.ZoneDeck)
		return nil, nil
	}
	options := make([]state.ChoiceOption, len(matches))
	for i, c := range matches {
		options[i] = state.ChoiceOption{ID: fmt.Sprintf("attach-%d", i), Label: c.Name, Card: c}
	}
	ip.log(log.NewChoicePendingEvent(ctx.GS.Turn, ctx.GS.Phase.String(), player, "SearchCard", 1))
	return &state.PendingChoice{
		Kind:          dsl.ChoiceSearchCard,
		Player:        player,
		Options:       options,
		MinCount:      1,
		MaxCount:      1,
		CanSkip:       true,
		Zone:          dsl.ZoneDeck,
		AttachTargets: eff.Targets,
	}, nil
}

func (ip *Interpreter) runRareCandy(ctx eval.Context, eff *dsl.Effect) (*state.PendingChoice, error) {
	ps := ctx.GS.Player(ctx.ActingPlayer)
	targets := eval.ResolveTarget(ctx, eff.Targets[0])
	if len(targets) == 0 {
		return nil, nil
	}
	basic := targets[0]
	matches := eval.FilterCards(eff.Filter, ps.Hand)
	// Only stage-2 cards that evolve directly from this basic's species
	// are legal rare-candy targets.
	var candidates []*cards.Card
	for _, c := range matches {
		if c.EvolvesFrom == basic.Def.Name || (basic.PreviousStage != nil && c.EvolvesFrom == basic.Def.EvolvesFrom) {
			candidates = append(candidates, c)
		}
	}
	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		ip.evolvePokemon(ctx, basic, candidates[0])
		ps.RemoveFromHand(candidates[0])
		return nil, nil
	default:
		options := make([]state.ChoiceOption, len(candidates))
		for i, c := range candidates {
			options[i] = state.ChoiceOption{ID: fmt.Sprintf("candy-%d", i), Label: c.Name, Card: c, PokemonID: basic.ID}
		}
		ip.log(log.NewChoicePendingEvent(ctx.GS.Turn, ctx.GS.Phase.String(), ctx.ActingPlayer, "EvolveTarget", 1))
		return &state.PendingChoice{
			Kind:     dsl.ChoiceEvolveTarget,
			Player:   ctx.ActingPlayer,
			Options:  options,
			MinCount: 1,
			MaxCount: 1,
			CanSkip:  false,
		}, nil
	}
}

// finalizeEvolve applies an EvolveTarget choice, evolving the Pokemon
// named by the selected option's PokemonID into the chosen card,
// preserving HP lost (damage carries over), status, and attached energy
// (spec.md Section 4.7 "EvolveTarget").
func (ip *Interpreter) finalizeEvolve(ctx eval.Context, pc *state.PendingChoice) (*state.PendingChoice, error) {
	if len(pc.Selected) > 0 {
		opt := pc.Selected[0]
		ps := ctx.GS.Player(pc.Player)
		target := ps.FindPokemon(opt.PokemonID)
		if target != nil {
			ip.evolvePokemon(ctx, target, opt.Card)
			ps.RemoveFromHand(opt.Card)
		}
	}
	return ip.Run(ctx, pc.Residual)
}

// EvolveInPlace evolves poke into next directly, with no PendingChoice
// involved — used for a plain PlayPokemon evolution action (spec.md
// Section 6 "PlayPokemon" evolution case), as distinct from Rare Candy's
// evolveTarget choice when more than one candidate exists.
func (ip *Interpreter) EvolveInPlace(ctx eval.Context, poke *state.PokemonInPlay, next *cards.Card) {
	ip.evolvePokemon(ctx, poke, next)
}

// DiscardAnyEnergy discards up to count attached energy cards from poke
// to its owner's discard pile, leftmost-first and without regard to type
// — the payment for a retreat's energy cost (spec.md Section 6
// "Retreat").
func (ip *Interpreter) DiscardAnyEnergy(ctx eval.Context, poke *state.PokemonInPlay, count int) {
	ip.removeEnergy(ctx, poke, "", count, false)
}

// evolvePokemon replaces poke's definition with next, preserving damage
// (so current HP lost stays lost, matching MaxHP ratio rules used by
// real evolution), status conditions, and attached energy, and chains
// the prior definition into PreviousStage.
func (ip *Interpreter) evolvePokemon(ctx eval.Context, poke *state.PokemonInPlay, next *cards.Card) {
	prior := &state.PokemonInPlay{
		ID:     poke.ID,
		Def:    poke.Def,
		Owner:  poke.Owner,
		Damage: poke.Damage,
	}
	fromName := poke.Def.Name
	poke.PreviousStage = prior
	poke.Def = next
	poke.EvolvedThisTurn = true
	poke.AbilityUsedThisTurn = false
	ip.log(log.NewEvolveEvent(ctx.GS.Turn, ctx.GS.Phase.String(), poke.Owner, fromName, next.Name))
}

// runChoice implements the generic "choice" effect: the acting player
// selects one of several effect-list branches to run. This uses a
// dedicated ChoiceGeneric kind distinct from the four PendingChoice kinds
// named directly in spec.md Section 3, since "choose which branch of
// card text applies" isn't a search/discard/switch/evolve decision.
func (ip *Interpreter) runChoice(ctx eval.Context, eff *dsl.Effect) (*state.PendingChoice, error) {
	options := make([]state.ChoiceOption, len(eff.Options))
	branches := make(map[string][]*dsl.Effect, len(eff.Options))
	for i := range eff.Options {
		id := fmt.Sprintf("branch-%d", i)
		options[i] = state.ChoiceOption{ID: id, Label: fmt.Sprintf("option %d", i+1)}
		branches[id] = eff.Options[i]
	}
	ip.log(log.NewChoicePendingEvent(ctx.GS.Turn, ctx.GS.Phase.String(), ctx.ActingPlayer, "Choice", 1))
	return &state.PendingChoice{
		Kind:     dsl.ChoiceGeneric,
		Player:   ctx.ActingPlayer,
		Options:  options,
		MinCount: 1,
		MaxCount: 1,
		CanSkip:  false,
		Branches: branches,
	}, nil
}

// finalizeGeneric applies a ChoiceGeneric choice, running the selected
// branch followed by the choice's residual.
func (ip *Interpreter) finalizeGeneric(ctx eval.Context, pc *state.PendingChoice) (*state.PendingChoice, error) {
	if len(pc.Selected) > 0 {
		if branch, ok := pc.Branches[pc.Selected[0].ID]; ok {
			combined := append(append([]*dsl.Effect{}, branch...), pc.Residual...)
			return ip.Run(ctx, combined)
		}
	}
	return ip.Run(ctx, pc.Residual)
}

// Pick records one option chosen toward pc's requirement, moving it from
// Options into Selected, and finalizes the choice once enough selections
// have been made or the option pool runs out (spec.md Section 4.8
// testable property 5: selections are submitted and applied one at a
// time, with the pending choice remaining in place until exhausted).
func (ip *Interpreter) Pick(ctx eval.Context, pc *state.PendingChoice, id string) (*state.PendingChoice, error) {
	for i, opt := range pc.Options {
		if opt.ID == id {
			pc.Selected = append(pc.Selected, opt)
			pc.Options = append(pc.Options[:i], pc.Options[i+1:]...)
			break
		}
	}
	if len(pc.Selected) >= pc.MaxCount || len(pc.Options) == 0 {
		return ip.finalizeChoice(ctx, pc)
	}
	return pc, nil
}

// Skip finalizes pc with whatever has already been selected, for choices
// whose CanSkip permits stopping before MaxCount is reached.
func (ip *Interpreter) Skip(ctx eval.Context, pc *state.PendingChoice) (*state.PendingChoice, error) {
	return ip.finalizeChoice(ctx, pc)
}

func (ip *Interpreter) finalizeChoice(ctx eval.Context, pc *state.PendingChoice) (*state.PendingChoice, error) {
	switch pc.Kind {
	case dsl.ChoiceSearchCard:
		return ip.finalizeSearch(ctx, pc)
	case dsl.ChoiceDiscardCard:
		return ip.finalizeDiscard(ctx, pc)
	case dsl.ChoiceSwitchTarget:
		return ip.finalizeSwitch(ctx, pc)
	case dsl.ChoiceEvolveTarget:
		return ip.finalizeEvolve(ctx, pc)
	case dsl.ChoiceGeneric:
		return ip.finalizeGeneric(ctx, pc)
	default:
		return ip.Run(ctx, pc.Residual)
	}
}

func (ip *Interpreter) removeCardFromZone(ps *state.PlayerState, zone dsl.ZoneKind, c *cards.Card) {
	remove := func(list []*cards.Card) []*cards.Card {
		for i, existing := range list {
			if existing == c {
				return append(list[:i], list[i+1:]...)
			}
		}
		return list
	}
	switch zone {
	case dsl.ZoneDeck:
		ps.Deck = remove(ps.Deck)
	case dsl.ZoneDiscard:
		ps.Discard = remove(ps.Discard)
	}
}
