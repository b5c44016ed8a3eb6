package state

import (
	"testing"

	"github.com/kuimelis/ptcgcore/internal/cards"
	"github.com/kuimelis/ptcgcore/internal/dsl"
)

func TestCurrentHPBounds(t *testing.T) {
	def := &cards.Card{Name: "Squirtle", MaxHP: 60}
	p := NewPokemonInPlay("p1", def, 0, 1)

	p.Damage = 0
	if hp := p.CurrentHP(); hp != 60 {
		t.Errorf("expected full HP 60, got %d", hp)
	}
	p.Damage = 1000
	if hp := p.CurrentHP(); hp != 0 {
		t.Errorf("expected HP clamped to 0, got %d", hp)
	}
	if !p.IsKnockedOut() {
		t.Errorf("expected knocked out at 0 HP")
	}
}

func TestBenchSizeAndPromotion(t *testing.T) {
	ps := NewPlayerState()
	def := &cards.Card{Name: "Rattata", MaxHP: 50}
	for i := 0; i < BenchSize; i++ {
		ps.Bench = append(ps.Bench, NewPokemonInPlay("bench"+string(rune('a'+i)), def, 0, 1))
	}
	if ps.FreeBenchSlots() != 0 {
		t.Fatalf("expected a full bench, got %d free slots", ps.FreeBenchSlots())
	}

	ps.PromoteBenchToActive(2)
	if ps.Active == nil || ps.Active.ID != "benchc" {
		t.Fatalf("expected bench[2] promoted to active, got %+v", ps.Active)
	}
	if len(ps.Bench) != BenchSize-1 {
		t.Fatalf("expected bench to shrink by one, got len %d", len(ps.Bench))
	}
}

func TestGameFlagExpiry(t *testing.T) {
	gs := NewGameState(42)
	gs.Turn = 3
	gs.SetFlag(GameFlag{Name: "opponentCannotAttack", Owner: 1, Duration: dsl.DurationNextTurn, ExpiresAtTurn: 3})
	if !gs.HasFlag("opponentCannotAttack", 1, "") {
		t.Fatalf("expected flag active on the turn it expires")
	}
	gs.Turn = 4
	gs.ExpireFlags()
	if gs.HasFlag("opponentCannotAttack", 1, "") {
		t.Fatalf("expected flag to have expired after its ExpiresAtTurn")
	}
}

func TestNewGameStateIsDeterministic(t *testing.T) {
	a := NewGameState(7)
	b := NewGameState(7)
	if a.ID != b.ID {
		t.Fatalf("expected identical IDs from identical seeds, got %q vs %q", a.ID, b.ID)
	}
}
