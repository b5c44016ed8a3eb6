package interp

import (
	"testing"

	"github.com/kuimelis/ptcgcore/internal/cards"
	"github.com/kuimelis/ptcgcore/internal/dsl"
	"github.com/kuimelis/ptcgcore/internal/eval"
	"github.com/kuimelis/ptcgcore/internal/log"
	"github.com/kuimelis/ptcgcore/internal/state"
)

func newTestSetup() (*Interpreter, eval.Context) {
	gs := state.NewGameState(99)
	gs.Turn = 1
	def := &cards.Card{Name: "Bulbasaur", Kind: dsl.CardKindPokemon, MaxHP: 70, RetreatCost: 1}
	oppDef := &cards.Card{Name: "Squirtle", Kind: dsl.CardKindPokemon, MaxHP: 60, RetreatCost: 1}
	gs.Players[0].Active = state.NewPokemonInPlay(gs.NewInstanceID(), def, 0, 1)
	gs.Players[1].Active = state.NewPokemonInPlay(gs.NewInstanceID(), oppDef, 1, 1)
	gs.Players[1].Bench = []*state.PokemonInPlay{
		state.NewPokemonInPlay(gs.NewInstanceID(), oppDef, 1, 1),
	}
	ip := New(log.NewMemoryLogger())
	ctx := eval.Context{GS: gs, ActingPlayer: 0, Self: gs.Players[0].Active}
	return ip, ctx
}

func TestDamageEffectKnocksOutAndAwardsPrize(t *testing.T) {
	ip, ctx := newTestSetup()
	ctx.GS.Players[0].Prizes = []*cards.Card{{Name: "Prize1"}, {Name: "Prize2"}}

	effects := []*dsl.Effect{dsl.EDamage([]*dsl.Target{dsl.TOpponent()}, dsl.VConstant(9999))}
	pending, err := ip.Run(ctx, effects)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pending != nil {
		t.Fatalf("expected no pending choice from a plain damage effect")
	}
	opp := ctx.GS.Players[1]
	if opp.Active == nil || opp.Active.Def.Name != "Squirtle" {
		t.Fatalf("expected bench pokemon auto-promoted to active, got %+v", opp.Active)
	}
	if opp.PrizesTaken != 0 {
		t.Fatalf("knockout should award a prize to the attacker (player 0), not the defender")
	}
	if ctx.GS.Players[0].PrizesTaken != 1 {
		t.Fatalf("expected player 0 to have taken 1 prize, got %d", ctx.GS.Players[0].PrizesTaken)
	}
}

func TestSequenceAndConditionalCompose(t *testing.T) {
	ip, ctx := newTestSetup()
	cond := dsl.CDamageOnPokemon(dsl.TSelf(), dsl.EQ, 0)
	eff := dsl.ESequence(
		dsl.EConditional(cond, []*dsl.Effect{dsl.EHeal([]*dsl.Target{dsl.TSelf()}, dsl.VConstant(5))}, nil),
		dsl.EDamage([]*dsl.Target{dsl.TOpponent()}, dsl.VConstant(10)),
	)
	pending, err := ip.Run(ctx, []*dsl.Effect{eff})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pending != nil {
		t.Fatalf("expected no suspension")
	}
	if ctx.GS.Players[1].Active.Damage != 10 {
		t.Fatalf("expected opponent active to have taken 10 damage, got %d", ctx.GS.Players[1].Active.Damage)
	}
}

func TestSearchSuspendsAndResumes(t *testing.T) {
	ip, ctx := newTestSetup()
	ps := ctx.GS.Players[0]
	basicA := &cards.Card{Name: "Basic A", Kind: dsl.CardKindPokemon, Stage: dsl.StageBasic, MaxHP: 60}
	basicB := &cards.Card{Name: "Basic B", Kind: dsl.CardKindPokemon, Stage: dsl.StageBasic, MaxHP: 60}
	trainer := &cards.Card{Name: "Potion", Kind: dsl.CardKindTrainer, TrainerEffects: []*dsl.Effect{dsl.ENoop()}}
	ps.Deck = []*cards.Card{trainer, basicA, basicB}

	searchEff := dsl.ESearch(dsl.PlayerActing, dsl.ZoneDeck, dsl.FIsBasic(), dsl.VConstant(1))
	drawEff := dsl.EDraw(dsl.PlayerActing, dsl.VConstant(1))
	pending, err := ip.Run(ctx, []*dsl.Effect{searchEff, drawEff})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pending == nil {
		t.Fatalf("expected a pending SearchCard choice since 2 basics matched a request for 1")
	}
	if pending.Kind != dsl.ChoiceSearchCard || len(pending.Options) != 2 {
		t.Fatalf("expected 2 matching options, got %d (%v)", len(pending.Options), pending.Kind)
	}
	if len(pending.Residual) != 1 {
		t.Fatalf("expected the trailing draw effect preserved in Residual, got %d effects", len(pending.Residual))
	}

	handBefore := ps.HandCount()
	resumed, err := ip.Pick(ctx, pending, pending.Options[0].ID)
	if err != nil {
		t.Fatalf("unexpected error resuming: %v", err)
	}
	if resumed != nil {
		t.Fatalf("expected the draw effect to complete without suspending again")
	}
	if ps.HandCount() != handBefore+2 {
		t.Fatalf("expected hand to grow by 1 (search) + 1 (draw) = 2, got delta %d", ps.HandCount()-handBefore)
	}
}

// TestSearchMandatoryTwoOfFiveAccumulatesOneAtATime covers spec scenario
// S5's second case: 5 matches for a requested count of 2 raises a
// mandatory-shape PendingChoice (CanSkip stays true per the "up to N"
// rule, but MaxCount is 2), and each Pick call resolves exactly one
// option, leaving the choice outstanding until both are in.
func TestSearchMandatoryTwoOfFiveAccumulatesOneAtATime(t *testing.T) {
	ip, ctx := newTestSetup()
	ps := ctx.GS.Players[0]
	var deck []*cards.Card
	for i := 0; i < 5; i++ {
		deck = append(deck, &cards.Card{Name: "Basic", Kind: dsl.CardKindPokemon, Stage: dsl.StageBasic, MaxHP: 60})
	}
	ps.Deck = deck

	searchEff := dsl.ESearch(dsl.PlayerActing, dsl.ZoneDeck, dsl.FIsBasic(), dsl.VConstant(2))
	pending, err := ip.Run(ctx, []*dsl.Effect{searchEff})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pending == nil {
		t.Fatalf("expected a pending SearchCard choice since 5 basics matched a request for 2")
	}
	if len(pending.Options) != 5 || pending.MaxCount != 2 {
		t.Fatalf("expected 5 options and MaxCount 2, got %d options, MaxCount %d", len(pending.Options), pending.MaxCount)
	}
	if !pending.CanSkip {
		t.Fatalf("expected SearchCard choices to always be skippable")
	}

	handBefore := ps.HandCount()
	firstID := pending.Options[0].ID
	resumed, err := ip.Pick(ctx, pending, firstID)
	if err != nil {
		t.Fatalf("unexpected error on first pick: %v", err)
	}
	if resumed == nil {
		t.Fatalf("expected the choice to remain pending after only 1 of 2 selections")
	}
	if len(resumed.Options) != 4 || len(resumed.Selected) != 1 {
		t.Fatalf("expected 4 remaining options and 1 selected, got %d options, %d selected", len(resumed.Options), len(resumed.Selected))
	}
	if ps.HandCount() != handBefore {
		t.Fatalf("expected no cards to move to hand until the choice finalizes")
	}

	secondID := resumed.Options[0].ID
	final, err := ip.Pick(ctx, resumed, secondID)
	if err != nil {
		t.Fatalf("unexpected error on second pick: %v", err)
	}
	if final != nil {
		t.Fatalf("expected the choice to finalize after 2 of 2 selections")
	}
	if ps.HandCount() != handBefore+2 {
		t.Fatalf("expected both selected cards to move to hand, got delta %d", ps.HandCount()-handBefore)
	}
}

// TestBonusDamageScalesWithPrizesTaken covers spec scenario S4: a flat
// Amount addend plus PerUnit scaled by the acting player's prizes taken
// so far (BonusPrizesTaken), matching the amount + per_unit * count
// formula.
func TestBonusDamageScalesWithPrizesTaken(t *testing.T) {
	ip, ctx := newTestSetup()
	ctx.GS.Players[0].PrizesTaken = 3
	// 70 damage knocks out the 60-HP defender and a bench Pokemon is
	// promoted, so the damage is read from the original defender.
	defender := ctx.GS.Players[1].Active

	eff := dsl.EBonusDamage([]*dsl.Target{dsl.TOpponent()}, dsl.VConstant(10), 20, dsl.BonusPrizesTaken, nil)
	pending, err := ip.Run(ctx, []*dsl.Effect{eff})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pending != nil {
		t.Fatalf("expected no pending choice from a bonus damage effect")
	}
	if got, want := defender.Damage, 10+20*3; got != want {
		t.Fatalf("expected amount(10) + perUnit(20)*prizesTaken(3) = %d bonus damage, got %d", want, got)
	}
}

func TestRepeatEffectAppliesMultipleTimes(t *testing.T) {
	ip, ctx := newTestSetup()
	dmg := dsl.ERepeat(3, dsl.EDamage([]*dsl.Target{dsl.TOpponent()}, dsl.VConstant(10)))
	_, err := ip.Run(ctx, []*dsl.Effect{dmg})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.GS.Players[1].Active.Damage != 30 {
		t.Fatalf("expected repeat(3) of 10 damage = 30, got %d", ctx.GS.Players[1].Active.Damage)
	}
}
