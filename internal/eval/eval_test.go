package eval

import (
	"testing"

	"github.com/kuimelis/ptcgcore/internal/cards"
	"github.com/kuimelis/ptcgcore/internal/dsl"
	"github.com/kuimelis/ptcgcore/internal/state"
)

func newTestContext() (Context, *state.GameState) {
	gs := state.NewGameState(1)
	def := &cards.Card{Name: "Pikachu", Kind: dsl.CardKindPokemon, MaxHP: 60, RetreatCost: 1}
	active := state.NewPokemonInPlay("active-1", def, 0, 1)
	active.Damage = 20
	active.Energy = []state.EnergyAttachment{
		{Card: &cards.Card{Name: "Lightning Energy", Kind: dsl.CardKindEnergy, ProvidesTypes: []string{"Lightning"}}},
	}
	gs.Players[0].Active = active
	gs.Players[0].Bench = []*state.PokemonInPlay{
		state.NewPokemonInPlay("bench-1", def, 0, 1),
	}
	ctx := Context{GS: gs, ActingPlayer: 0, Self: active}
	return ctx, gs
}

func TestResolveTargetSelfAndActive(t *testing.T) {
	ctx, _ := newTestContext()
	self := ResolveTarget(ctx, dsl.TSelf())
	if len(self) != 1 || self[0].ID != "active-1" {
		t.Fatalf("expected TSelf to resolve to the active pokemon, got %+v", self)
	}
	active := ResolveTarget(ctx, dsl.TActive(dsl.PlayerActing))
	if len(active) != 1 || active[0].ID != "active-1" {
		t.Fatalf("expected TActive(PlayerActing) to resolve to the active pokemon, got %+v", active)
	}
}

func TestEvalValueCountDamageAndEnergy(t *testing.T) {
	ctx, _ := newTestContext()
	dmg := EvalValue(ctx, dsl.VCountDamage(dsl.TSelf()))
	if dmg != 20 {
		t.Fatalf("expected damage count 20, got %d", dmg)
	}
	energy := EvalValue(ctx, dsl.VCountEnergy(dsl.TSelf()))
	if energy != 1 {
		t.Fatalf("expected energy count 1, got %d", energy)
	}
	bench := EvalValue(ctx, dsl.VCountBench(dsl.PlayerActing))
	if bench != 1 {
		t.Fatalf("expected bench count 1, got %d", bench)
	}
}

func TestEvalValueArithmeticCombinators(t *testing.T) {
	ctx, _ := newTestContext()
	v := dsl.VAdd(dsl.VConstant(10), dsl.VMultiply(dsl.VConstant(2), dsl.VConstant(3)))
	if got := EvalValue(ctx, v); got != 16 {
		t.Fatalf("expected 10 + (2*3) = 16, got %d", got)
	}
	if got := EvalValue(ctx, dsl.VMax(dsl.VConstant(3), dsl.VConstant(9), dsl.VConstant(5))); got != 9 {
		t.Fatalf("expected max(3,9,5) = 9, got %d", got)
	}
	if got := EvalValue(ctx, dsl.VMin(dsl.VConstant(3), dsl.VConstant(9), dsl.VConstant(5))); got != 3 {
		t.Fatalf("expected min(3,9,5) = 3, got %d", got)
	}
}

func TestFilterMatchesBasicPokemon(t *testing.T) {
	basic := &cards.Card{Kind: dsl.CardKindPokemon, Stage: dsl.StageBasic, MaxHP: 60}
	evolved := &cards.Card{Kind: dsl.CardKindPokemon, Stage: dsl.Stage1, EvolvesFrom: "Basic", MaxHP: 90}
	if !MatchesFilter(dsl.FIsBasic(), basic) {
		t.Errorf("expected FIsBasic() to match a basic pokemon")
	}
	if MatchesFilter(dsl.FIsBasic(), evolved) {
		t.Errorf("expected FIsBasic() not to match an evolved pokemon")
	}
	combined := dsl.FAnd(dsl.FCardKind(dsl.CardKindPokemon), dsl.FHPGreaterEq(80))
	if MatchesFilter(combined, basic) {
		t.Errorf("expected combined filter to reject a 60 HP basic")
	}
	if !MatchesFilter(combined, evolved) {
		t.Errorf("expected combined filter to accept a 90 HP pokemon")
	}
}

func TestEvalConditionComparators(t *testing.T) {
	ctx, _ := newTestContext()
	if !EvalCondition(ctx, dsl.CDamageOnPokemon(dsl.TSelf(), dsl.GTE, 10)) {
		t.Errorf("expected damage >= 10 to hold")
	}
	if EvalCondition(ctx, dsl.CDamageOnPokemon(dsl.TSelf(), dsl.EQ, 999)) {
		t.Errorf("expected damage == 999 to be false")
	}
}

func TestEvalConditionGameFlagTokenSubstitution(t *testing.T) {
	ctx, gs := newTestContext()
	gs.SetFlag(state.GameFlag{Name: "burned_by_0", Owner: 0, Duration: dsl.DurationThisAttack})
	if !EvalCondition(ctx, dsl.CHasGameFlag("burned_by_{player}")) {
		t.Errorf("expected {player} token to substitute the acting player index")
	}
}
