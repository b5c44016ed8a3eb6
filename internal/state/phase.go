// Package state defines the mutable runtime game state: GameState,
// PlayerState, PokemonInPlay, DamageShield, GameFlag, and PendingChoice
// (spec.md Section 3). It depends on internal/cards (card definitions)
// and internal/dsl (the effect/continuation vocabulary used by
// PendingChoice's residual list), but not on internal/engine or
// internal/interp — those consume this package, not the reverse.
package state

// Phase enumerates the turn structure (spec.md Section 3 "Phase").
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseDraw
	PhaseMain
	PhaseAttack
	PhaseBetweenTurns
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseDraw:
		return "Draw Phase"
	case PhaseMain:
		return "Main Phase"
	case PhaseAttack:
		return "Attack Phase"
	case PhaseBetweenTurns:
		return "Between Turns"
	case PhaseGameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}
