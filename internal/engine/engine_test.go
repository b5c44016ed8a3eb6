package engine

import (
	"testing"

	"github.com/kuimelis/ptcgcore/internal/cards"
	"github.com/kuimelis/ptcgcore/internal/dsl"
	"github.com/kuimelis/ptcgcore/internal/state"
)

func basicDeck(prefix string, n int) []*cards.Card {
	return attackDeck(prefix, n, []cards.Attack{
		{Name: "Tackle", Cost: []string{"Colorless"}, DamageBase: 20},
	})
}

func attackDeck(prefix string, n int, attacks []cards.Attack) []*cards.Card {
	deck := make([]*cards.Card, n)
	for i := range deck {
		deck[i] = &cards.Card{
			Name:        prefix,
			Kind:        dsl.CardKindPokemon,
			ElementType: "Water",
			Stage:       dsl.StageBasic,
			MaxHP:       70,
			RetreatCost: 1,
			Attacks:     attacks,
		}
	}
	return deck
}

func TestCreateGameDealsHandsAndPrizes(t *testing.T) {
	e := New(nil)
	gs := e.CreateGame(basicDeck("Squirtle", 20), basicDeck("Totodile", 20), 42)

	for p := 0; p < 2; p++ {
		ps := gs.Player(p)
		// Every card in this test deck is a Basic, so opening setup
		// greedily benches as many as the bench allows (5), leaving
		// hand = 7 - 1 (active) - 5 (bench) = 1.
		wantHand := state.InitialHandSize - 1 - state.BenchSize
		if ps.HandCount() != wantHand {
			t.Fatalf("player %d: expected %d cards in hand after setup, got %d", p, wantHand, ps.HandCount())
		}
		if ps.BenchCount() != state.BenchSize {
			t.Fatalf("player %d: expected a full bench of %d, got %d", p, state.BenchSize, ps.BenchCount())
		}
		if len(ps.Prizes) != state.InitialPrizeCount {
			t.Fatalf("player %d: expected %d prizes, got %d", p, state.InitialPrizeCount, len(ps.Prizes))
		}
		if ps.Active == nil {
			t.Fatalf("player %d: expected an active pokemon after setup", p)
		}
	}
	if gs.Phase != state.PhaseMain {
		t.Fatalf("expected MainPhase after CreateGame, got %v", gs.Phase)
	}
	if gs.ActivePlayer != 0 && gs.ActivePlayer != 1 {
		t.Fatalf("expected a valid starting player, got %d", gs.ActivePlayer)
	}
}

func TestCreateGameIsDeterministic(t *testing.T) {
	e := New(nil)
	gs1 := e.CreateGame(basicDeck("Squirtle", 20), basicDeck("Totodile", 20), 7)
	gs2 := e.CreateGame(basicDeck("Squirtle", 20), basicDeck("Totodile", 20), 7)

	if gs1.ActivePlayer != gs2.ActivePlayer {
		t.Fatalf("same seed produced different starting players: %d vs %d", gs1.ActivePlayer, gs2.ActivePlayer)
	}
	for p := 0; p < 2; p++ {
		a, b := gs1.Player(p), gs2.Player(p)
		if a.Active.Def.Name != b.Active.Def.Name || a.HandCount() != b.HandCount() {
			t.Fatalf("same seed produced diverging player %d state", p)
		}
	}
}

func TestStartTurnDetectsDeckOut(t *testing.T) {
	e := New(nil)
	gs := e.CreateGame(basicDeck("Squirtle", 13), basicDeck("Totodile", 20), 9)

	ps := gs.Player(gs.ActivePlayer)
	for len(ps.Deck) > 0 {
		ps.Deck = ps.Deck[:len(ps.Deck)-1]
	}

	deckedOutPlayer := gs.ActivePlayer
	before := ps.HandCount()
	e.StartTurn(gs)
	if !gs.Over {
		t.Fatalf("expected deck-out to end the game")
	}
	if gs.Winner != gs.Opponent(deckedOutPlayer) {
		t.Fatalf("deck-out should award the win to the opponent, not the decked-out player")
	}
	if ps.HandCount() != before {
		t.Fatalf("a decked-out player should not draw")
	}
}

func TestLegalActionsOffersAttackWhenCostIsPaid(t *testing.T) {
	e := New(nil)
	gs := e.CreateGame(basicDeck("Squirtle", 20), basicDeck("Totodile", 20), 3)
	gs.Phase = state.PhaseAttack
	active := gs.Player(gs.ActivePlayer).Active
	active.Energy = append(active.Energy, state.EnergyAttachment{Card: &cards.Card{Name: "Water Energy", Kind: dsl.CardKindEnergy, ProvidesTypes: []string{"Water"}}})

	actions := LegalActions(gs)
	found := false
	for _, a := range actions {
		if a.Type == ActionAttack {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Attack to be legal once energy cost is paid, got %+v", actions)
	}
}

func TestLegalActionsExcludesAttackWithoutEnergy(t *testing.T) {
	e := New(nil)
	gs := e.CreateGame(basicDeck("Squirtle", 20), basicDeck("Totodile", 20), 3)
	gs.Phase = state.PhaseAttack
	gs.Player(gs.ActivePlayer).Active.Energy = nil

	for _, a := range LegalActions(gs) {
		if a.Type == ActionAttack {
			t.Fatalf("attack should not be legal with no attached energy")
		}
	}
}

func TestApplyAttackAppliesWeaknessDamage(t *testing.T) {
	e := New(nil)
	gs := e.CreateGame(basicDeck("Squirtle", 20), basicDeck("Totodile", 20), 11)
	attacker := gs.Player(gs.ActivePlayer)
	defender := gs.Player(gs.Opponent(gs.ActivePlayer))
	attacker.Active.Def.ElementType = "Fire"
	defender.Active.Def.Weakness = "Fire"
	attacker.Active.Energy = []state.EnergyAttachment{{Card: &cards.Card{Name: "Fire Energy", Kind: dsl.CardKindEnergy, ProvidesTypes: []string{"Fire"}}}}
	gs.Phase = state.PhaseAttack

	e.Apply(gs, Action{Type: ActionAttack, Player: gs.ActivePlayer, AttackIndex: 0})

	if defender.Active.Damage != 40 {
		t.Fatalf("expected 20 base damage doubled by weakness to 40, got %d", defender.Active.Damage)
	}
}

// TestAttackTriggeredChoiceAdvancesPhaseOnResolve covers spec scenario S2
// (a forced switch enumerating specific bench options as distinct
// ChooseCard actions) together with the regression where an attack's own
// suspended Effects left the phase stuck at PhaseAttack after the choice
// resolved.
func TestAttackTriggeredChoiceAdvancesPhaseOnResolve(t *testing.T) {
	e := New(nil)
	attacks := []cards.Attack{
		{Name: "Whirlpool", Cost: []string{"Colorless"}, Effects: []*dsl.Effect{dsl.EForceSwitch(dsl.PlayerOpponent)}},
	}
	gs := e.CreateGame(attackDeck("Squirtle", 20, attacks), basicDeck("Totodile", 20), 11)
	attacker := gs.Player(gs.ActivePlayer)
	defender := gs.Player(gs.Opponent(gs.ActivePlayer))
	attacker.Active.Energy = []state.EnergyAttachment{{Card: &cards.Card{Name: "Water Energy", Kind: dsl.CardKindEnergy, ProvidesTypes: []string{"Water"}}}}
	gs.Phase = state.PhaseAttack

	e.Apply(gs, Action{Type: ActionAttack, Player: gs.ActivePlayer, AttackIndex: 0})

	if gs.Pending == nil {
		t.Fatalf("expected the attack's ForceSwitch effect to raise a pending choice")
	}
	if gs.Phase != state.PhaseAttack {
		t.Fatalf("phase should remain PhaseAttack while the attack's own choice is unresolved")
	}
	if !gs.Pending.FromAttack {
		t.Fatalf("expected the pending choice to be marked FromAttack")
	}

	actions := LegalActions(gs)
	if len(actions) != len(defender.Bench) {
		t.Fatalf("expected one ChooseCard action per bench option and no skip action, got %d actions for %d bench slots", len(actions), len(defender.Bench))
	}
	for _, a := range actions {
		if a.Skip {
			t.Fatalf("a forced switch should not be skippable")
		}
	}

	e.Apply(gs, actions[0])

	if gs.Pending != nil {
		t.Fatalf("expected the choice to fully resolve after a single switch selection")
	}
	if gs.Phase != state.PhaseBetweenTurns {
		t.Fatalf("expected phase to advance to BetweenTurns once the attack-triggered choice resolved, got %v", gs.Phase)
	}
	for _, a := range LegalActions(gs) {
		if a.Type == ActionAttack {
			t.Fatalf("attack should not be legally offered again once the phase has moved past PhaseAttack")
		}
	}
}

func TestApplyIgnoresIllegalAction(t *testing.T) {
	e := New(nil)
	gs := e.CreateGame(basicDeck("Squirtle", 20), basicDeck("Totodile", 20), 5)
	handBefore := gs.Player(gs.ActivePlayer).HandCount()

	e.Apply(gs, Action{Type: ActionAttachEnergy, Player: gs.ActivePlayer, HandIndex: 999, BenchIndex: -1})

	if gs.Player(gs.ActivePlayer).HandCount() != handBefore {
		t.Fatalf("an illegal action should leave the state unchanged")
	}
}

func TestEndTurnAppliesPoisonDamage(t *testing.T) {
	e := New(nil)
	gs := e.CreateGame(basicDeck("Squirtle", 20), basicDeck("Totodile", 20), 17)
	active := gs.Player(gs.ActivePlayer).Active
	active.Status = dsl.StatusPoisoned
	hpBefore := active.CurrentHP()
	gs.Phase = state.PhaseAttack

	e.EndTurn(gs)

	if active.CurrentHP() != hpBefore-10 {
		t.Fatalf("expected 10 poison damage between turns, HP went from %d to %d", hpBefore, active.CurrentHP())
	}
}

func TestEndTurnAdvancesToOpponentByDefault(t *testing.T) {
	e := New(nil)
	gs := e.CreateGame(basicDeck("Squirtle", 20), basicDeck("Totodile", 20), 21)
	first := gs.ActivePlayer
	gs.Phase = state.PhaseAttack

	e.EndTurn(gs)

	if gs.Over {
		return
	}
	if gs.ActivePlayer != 1-first {
		t.Fatalf("expected turn to pass to the other player, stayed with %d", gs.ActivePlayer)
	}
}

func TestDeterminizePreservesZoneSizes(t *testing.T) {
	e := New(nil)
	gs := e.CreateGame(basicDeck("Squirtle", 20), basicDeck("Totodile", 20), 31)

	perspective := 0
	selfDeckBefore := len(gs.Player(perspective).Deck)
	oppHandBefore := len(gs.Player(1-perspective).Hand)
	oppDeckBefore := len(gs.Player(1-perspective).Deck)
	oppPrizesBefore := len(gs.Player(1-perspective).Prizes)

	out := Determinize(gs, perspective, 99)

	if len(out.Player(perspective).Deck) != selfDeckBefore {
		t.Fatalf("determinize changed perspective player's deck size")
	}
	if len(out.Player(1-perspective).Hand) != oppHandBefore {
		t.Fatalf("determinize changed opponent hand size")
	}
	if len(out.Player(1-perspective).Deck) != oppDeckBefore {
		t.Fatalf("determinize changed opponent deck size")
	}
	if len(out.Player(1-perspective).Prizes) != oppPrizesBefore {
		t.Fatalf("determinize changed opponent prize size")
	}
	if len(gs.Player(perspective).Deck) != selfDeckBefore {
		t.Fatalf("determinize mutated the original game state")
	}
}
