// Command ptcgsim runs a local, two-deck simulation of a duel with no
// network transport (spec.md Section 1 explicitly places the driver loop
// and rendering layer outside the engine core) — modeled on the
// teacher's cmd/tcgx-cli, minus its host/join subcommands, since this
// module drops networking entirely (see DESIGN.md "Dropped teacher
// dependencies").
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/kuimelis/ptcgcore/internal/decklib"
	"github.com/kuimelis/ptcgcore/internal/engine"
	"github.com/kuimelis/ptcgcore/internal/log"
	"github.com/kuimelis/ptcgcore/internal/state"
)

func main() {
	decksFile := flag.String("decks", "decks.yaml", "path to a deck list YAML file")
	p1 := flag.Int("p1", 1, "deck number for player 1 (from decks file)")
	p2 := flag.Int("p2", 2, "deck number for player 2 (from decks file)")
	seed := flag.Int64("seed", 42, "engine RNG seed")
	maxTurns := flag.Int("max-turns", 200, "stop the simulation with no winner after this many turns")
	quiet := flag.Bool("quiet", false, "suppress the event log, printing only the final result")
	flag.Parse()

	if err := run(*decksFile, *p1, *p2, *seed, *maxTurns, *quiet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(decksFile string, p1, p2 int, seed int64, maxTurns int, quiet bool) error {
	name1, deck1, err := decklib.DeckByNumber(decksFile, p1)
	if err != nil {
		return fmt.Errorf("loading player 1 deck: %w", err)
	}
	name2, deck2, err := decklib.DeckByNumber(decksFile, p2)
	if err != nil {
		return fmt.Errorf("loading player 2 deck: %w", err)
	}
	if err := decklib.ValidateDeckSize(deck1); err != nil {
		return fmt.Errorf("player 1 deck %q: %w", name1, err)
	}
	if err := decklib.ValidateDeckSize(deck2); err != nil {
		return fmt.Errorf("player 2 deck %q: %w", name2, err)
	}

	var logger log.EventLogger
	if quiet {
		logger = log.NewMemoryLogger()
	} else {
		logger = log.NewTextLogger(os.Stdout)
	}

	e := engine.New(logger)
	gs := e.CreateGame(deck1, deck2, seed)

	fmt.Printf("Player 1: %s vs Player 2: %s (seed %d)\n", name1, name2, seed)

	policy := rand.New(rand.NewSource(seed))
	for !e.IsGameOver(gs) && gs.Turn <= maxTurns {
		actions := engine.LegalActions(gs)
		if len(actions) == 0 {
			break
		}
		choice := pickAction(policy, actions)
		gs = e.Apply(gs, choice)
	}

	printResult(gs, maxTurns, name1, name2)
	return nil
}

// pickAction is the default auto-play policy: uniformly random among the
// legal actions, with no preference for any action type. This is
// intentionally the simplest policy that lets a game
// converge to a result — spec.md Section 1 excludes any concrete search
// agent from the core, so ptcgsim's choice here is a driver concern, not
// an engine one.
func pickAction(r *rand.Rand, actions []engine.Action) engine.Action {
	return actions[r.Intn(len(actions))]
}

func printResult(gs *state.GameState, maxTurns int, name1, name2 string) {
	switch {
	case gs.Winner == state.NoWinner:
		fmt.Printf("Simulation stopped after %d turns with no winner (max-turns=%d)\n", gs.Turn, maxTurns)
	case gs.Winner == state.Draw:
		fmt.Printf("Game ended in a draw after %d turns: %s\n", gs.Turn, gs.Result)
	case gs.Winner == 0:
		fmt.Printf("Player 1 (%s) wins after %d turns: %s\n", name1, gs.Turn, gs.Result)
	case gs.Winner == 1:
		fmt.Printf("Player 2 (%s) wins after %d turns: %s\n", name2, gs.Turn, gs.Result)
	}
}
