package engine

import (
	"github.com/kuimelis/ptcgcore/internal/cards"
	"github.com/kuimelis/ptcgcore/internal/interp"
	"github.com/kuimelis/ptcgcore/internal/log"
	"github.com/kuimelis/ptcgcore/internal/state"
)

// Engine bundles the event logger and effect interpreter used while
// running RulesEngine operations. It carries no other state — every
// operation takes the *state.GameState it acts on explicitly, per
// spec.md Section 5 "state values are treated as immutable from the
// caller's point of view" (we mutate in place for efficiency but never
// keep engine-side bookkeeping a caller could observe diverging from the
// state value).
type Engine struct {
	Log    log.EventLogger
	Interp *interp.Interpreter
}

// New returns an Engine that logs through logger (a MemoryLogger is used
// if nil).
func New(logger log.EventLogger) *Engine {
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &Engine{Log: logger, Interp: interp.New(logger)}
}

func (e *Engine) log(ev log.GameEvent) { e.Log.Log(ev) }

// CreateGame builds a fresh GameState from two ordered decklists and a
// seed (spec.md Section 4.8 "game creation"). Every card is cloned with
// a freshly minted unique ID (duplicates in a decklist are permitted but
// must remain individually identifiable, spec.md Section 3 invariant).
// Both decks are shuffled with the engine RNG, 7 cards are dealt to each
// hand, the next 6 become prizes, and the first player is decided by
// coin flip.
func (e *Engine) CreateGame(deck0, deck1 []*cards.Card, seed int64) *state.GameState {
	gs := state.NewGameState(seed)

	gs.Players[0].Deck = cloneDeck(gs, deck0)
	gs.Players[1].Deck = cloneDeck(gs, deck1)

	shuffleDeck(gs, 0)
	shuffleDeck(gs, 1)

	e.dealOpeningHands(gs)

	if gs.RNG.CoinFlip() {
		gs.ActivePlayer = 0
	} else {
		gs.ActivePlayer = 1
	}

	gs.Phase = state.PhaseSetup
	e.runSetup(gs)

	gs.Phase = state.PhaseMain
	e.log(log.NewPhaseChangeEvent(gs.Turn, gs.Phase.String()))
	return gs
}

// cloneDeck copies each card definition, assigning it a fresh unique ID
// so that identical printed cards remain distinct entities (spec.md
// Section 3 invariant: every card has a globally unique identifier).
func cloneDeck(gs *state.GameState, deck []*cards.Card) []*cards.Card {
	out := make([]*cards.Card, len(deck))
	for i, c := range deck {
		copied := *c
		copied.ID = gs.NewInstanceID()
		out[i] = &copied
	}
	return out
}

func shuffleDeck(gs *state.GameState, player int) {
	ps := gs.Player(player)
	cardsInDeck := ps.Deck
	n := len(cardsInDeck)
	for i := n - 1; i > 0; i-- {
		j := gs.RNG.NextIntN(i + 1)
		cardsInDeck[i], cardsInDeck[j] = cardsInDeck[j], cardsInDeck[i]
	}
}

func (e *Engine) dealOpeningHands(gs *state.GameState) {
	for p := 0; p < 2; p++ {
		ps := gs.Player(p)
		for i := 0; i < state.InitialHandSize; i++ {
			ps.DrawCard()
		}
	}
}

// runSetup implements the mulligan loop (spec.md Section 4.8 "Setup /
// mulligan"): a hand with no Basic Pokemon is shuffled back into the
// deck and redrawn until it contains at least one. After a successful
// hand, one Basic is placed active and up to five more go to bench.
// Prize cards are allocated from the remaining deck once both players
// have a legal opening hand.
func (e *Engine) runSetup(gs *state.GameState) {
	for p := 0; p < 2; p++ {
		ps := gs.Player(p)
		for !hasBasic(ps.Hand) {
			ps.Mulliganed = true
			ps.Deck = append(ps.Deck, ps.Hand...)
			ps.Hand = nil
			shuffleDeck(gs, p)
			for i := 0; i < state.InitialHandSize; i++ {
				ps.DrawCard()
			}
			e.log(log.NewMulliganEvent(gs.Turn, p))
		}
	}

	for p := 0; p < 2; p++ {
		ps := gs.Player(p)
		placeOpeningBoard(gs, ps)
		for i := 0; i < state.InitialPrizeCount && len(ps.Deck) > 0; i++ {
			c := ps.Deck[len(ps.Deck)-1]
			ps.Deck = ps.Deck[:len(ps.Deck)-1]
			ps.Prizes = append(ps.Prizes, c)
		}
	}
}

func hasBasic(hand []*cards.Card) bool {
	for _, c := range hand {
		if c.IsBasic() {
			return true
		}
	}
	return false
}

func placeOpeningBoard(gs *state.GameState, ps *state.PlayerState) {
	var basics []*cards.Card
	for _, c := range ps.Hand {
		if c.IsBasic() {
			basics = append(basics, c)
		}
	}
	if len(basics) == 0 {
		return
	}
	ps.RemoveFromHand(basics[0])
	ps.Active = state.NewPokemonInPlay(gs.NewInstanceID(), basics[0], playerIndexOf(gs, ps), gs.Turn)
	for _, c := range basics[1:] {
		if ps.FreeBenchSlots() == 0 {
			break
		}
		ps.RemoveFromHand(c)
		ps.Bench = append(ps.Bench, state.NewPokemonInPlay(gs.NewInstanceID(), c, playerIndexOf(gs, ps), gs.Turn))
	}
}

func playerIndexOf(gs *state.GameState, ps *state.PlayerState) int {
	if gs.Players[0] == ps {
		return 0
	}
	return 1
}
