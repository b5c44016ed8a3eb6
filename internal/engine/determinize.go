package engine

import (
	"github.com/kuimelis/ptcgcore/internal/cards"
	"github.com/kuimelis/ptcgcore/internal/rng"
	"github.com/kuimelis/ptcgcore/internal/state"
)

// Determinize implements the Determinizer (spec.md Section 4.9): given a
// GameState and the player whose perspective is sampling, it returns a
// new state in which every zone hidden from that player — the
// perspective player's own deck, and the opponent's hand, deck, and
// prizes — is reshuffled into a single pool and redealt, preserving each
// zone's size, so repeated calls produce a distribution of
// information-consistent worlds rather than leaking the true order or
// assignment of hidden cards. Zones visible to the perspective player
// (their own hand, both discards, both active/bench Pokemon) are left
// untouched.
func Determinize(gs *state.GameState, perspective int, seed int64) *state.GameState {
	out := cloneGameState(gs)
	r := rng.New(seed)

	opponent := out.Opponent(perspective)
	self := out.Player(perspective)
	opp := out.Player(opponent)

	pool := make([]*cards.Card, 0, len(self.Deck)+len(opp.Hand)+len(opp.Deck)+len(opp.Prizes))
	pool = append(pool, self.Deck...)
	pool = append(pool, opp.Hand...)
	pool = append(pool, opp.Deck...)
	pool = append(pool, opp.Prizes...)

	shuffleWith(r, pool)

	take := func(n int) []*cards.Card {
		chunk := pool[:n]
		pool = pool[n:]
		return chunk
	}
	self.Deck = take(len(self.Deck))
	opp.Hand = take(len(opp.Hand))
	opp.Deck = take(len(opp.Deck))
	opp.Prizes = take(len(opp.Prizes))

	return out
}

func shuffleWith(r *rng.RNG, deck []*cards.Card) {
	n := len(deck)
	for i := n - 1; i > 0; i-- {
		j := r.NextIntN(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// cloneGameState produces a deep-enough copy of gs that Determinize can
// freely reassign zone slices without mutating the caller's state (spec.md
// Section 4.9 "no mutation of observable zones" / Section 5 "state values
// are treated as immutable from the caller's point of view"). Card
// pointers themselves are shared (they are immutable definitions); only
// the container structs and slices are copied.
func cloneGameState(gs *state.GameState) *state.GameState {
	out := *gs
	var players [2]*state.PlayerState
	for i, p := range gs.Players {
		cp := *p
		cp.Deck = append([]*cards.Card{}, p.Deck...)
		cp.Hand = append([]*cards.Card{}, p.Hand...)
		cp.Discard = append([]*cards.Card{}, p.Discard...)
		cp.Prizes = append([]*cards.Card{}, p.Prizes...)
		players[i] = &cp
	}
	out.Players = players
	return &out
}
