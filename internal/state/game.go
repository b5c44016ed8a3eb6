package state

import (
	"github.com/google/uuid"

	"github.com/kuimelis/ptcgcore/internal/cards"
	"github.com/kuimelis/ptcgcore/internal/dsl"
	"github.com/kuimelis/ptcgcore/internal/rng"
)

// NoWinner is the sentinel Winner value while the game is undecided.
const NoWinner = -1

// Draw is a Winner sentinel for a game with no victor. The rules engine
// never assigns it: every terminal condition it detects (deck-out, last
// prize taken, empty board) names a single winner, so a simultaneous loss
// on both sides is not reported as a draw.
const Draw = 2

// GameState is the complete state of one game (spec.md Section 3
// "GameState"). It is the single argument threaded through every
// RulesEngine operation; the engine treats it as the sole source of
// truth and never keeps parallel bookkeeping elsewhere.
type GameState struct {
	ID      string
	Players [2]*PlayerState

	Turn         int // turn counter; 0 for the first turn after CreateGame
	ActivePlayer int // 0 or 1: whose turn it is
	Phase        Phase

	Flags   []GameFlag
	Pending *PendingChoice

	// CurrentStadium is the in-play Stadium Trainer card, if any (spec.md
	// Section 3 "GameState" — "optional active Stadium card reference").
	CurrentStadium *cards.Card

	Winner int // NoWinner, 0, 1, or Draw
	Over   bool
	Result string

	// RNG is the engine's single seeded generator, used for every
	// shuffle and coin flip that isn't a between-turn burn check (which
	// derives its own short-lived seed — spec.md Section 4.1). Keeping
	// it on GameState (rather than passed around separately) lets a
	// sequence of RulesEngine calls on the same state stay a single
	// deterministic stream.
	RNG *rng.RNG
}

// NewGameState creates a fresh, empty game state seeded from seed. It
// does not deal hands or set prizes — that is RulesEngine.CreateGame's
// job, which also needs the seed to shuffle decks (spec.md Section 4.8
// "game creation with unique IDs and RNG-seeded shuffle").
func NewGameState(seed int64) *GameState {
	r := rng.New(seed)
	id, err := uuid.NewRandomFromReader(r.Reader())
	if err != nil {
		// uuid.NewRandomFromReader only fails if the reader errors, and
		// rng.RNG's reader never does.
		panic(err)
	}
	return &GameState{
		ID:           id.String(),
		Players:      [2]*PlayerState{NewPlayerState(), NewPlayerState()},
		ActivePlayer: 0,
		Phase:        PhaseSetup,
		Winner:       NoWinner,
		RNG:          r,
	}
}

// NewInstanceID mints a fresh, globally-unique ID for a PokemonInPlay (or
// any other runtime-only entity), drawing its randomness from the game's
// own seeded RNG so that two runs with the same seed produce identical
// IDs (spec.md Section 8, property 1 "determinism").
func (gs *GameState) NewInstanceID() string {
	id, err := uuid.NewRandomFromReader(gs.RNG.Reader())
	if err != nil {
		panic(err)
	}
	return id.String()
}

// Opponent returns the index of the other player.
func (gs *GameState) Opponent(player int) int { return 1 - player }

// Player returns the given player's state.
func (gs *GameState) Player(i int) *PlayerState { return gs.Players[i] }

// ActingPlayer returns the player currently taking the action in progress
// — normally the same as ActivePlayer, except while resolving a
// PendingChoice assigned to the other player (e.g. a forced switch).
func (gs *GameState) ActingPlayer() int {
	if gs.Pending != nil {
		return gs.Pending.Player
	}
	return gs.ActivePlayer
}

// SetFlag installs or refreshes a named GameFlag.
func (gs *GameState) SetFlag(f GameFlag) {
	for i, existing := range gs.Flags {
		if existing.Name == f.Name && existing.Owner == f.Owner && existing.TargetID == f.TargetID {
			gs.Flags[i] = f
			return
		}
	}
	gs.Flags = append(gs.Flags, f)
}

// HasFlag reports whether a matching, still-active flag exists.
func (gs *GameState) HasFlag(name string, owner int, targetID string) bool {
	for _, f := range gs.Flags {
		if f.Name == name && f.Owner == owner && f.TargetID == targetID && f.Active(gs.Turn) {
			return true
		}
	}
	return false
}

// ExpireFlags drops every flag that is no longer active as of the
// current turn (spec.md Section 3 "GameFlag" lifecycle).
func (gs *GameState) ExpireFlags() {
	kept := gs.Flags[:0]
	for _, f := range gs.Flags {
		if f.Active(gs.Turn) {
			kept = append(kept, f)
		}
	}
	gs.Flags = kept
}

// ClearAttackScopedFlags removes every DurationThisAttack flag, called by
// the rules engine's applyAttack once an attack's effects have run.
func (gs *GameState) ClearAttackScopedFlags() {
	kept := gs.Flags[:0]
	for _, f := range gs.Flags {
		if f.Duration != dsl.DurationThisAttack {
			kept = append(kept, f)
		}
	}
	gs.Flags = kept
}
