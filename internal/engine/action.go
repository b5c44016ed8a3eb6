// Package engine implements the RulesEngine (spec.md Section 4.8) and the
// Determinizer (spec.md Section 4.9): game creation, turn structure,
// legal-action enumeration, and action application. Every exported
// function is a pure-ish operation over a *state.GameState — mutating it
// in place and returning the same pointer, mirroring the teacher's
// *Duel/*GameState method style (internal/game/duel.go), but exposed as
// free functions rather than a controller-driven loop, since this engine
// has no notion of a PlayerController: the driver supplies actions one
// at a time (spec.md Section 6 "External Interfaces").
package engine

// ActionType enumerates the action taxonomy named in spec.md Section 6.
type ActionType int

const (
	ActionPlayPokemon ActionType = iota
	ActionAttachEnergy
	ActionPlayTrainer
	ActionUseAbility
	ActionAttack
	ActionRetreat
	ActionChooseCard
	ActionPass
)

func (t ActionType) String() string {
	switch t {
	case ActionPlayPokemon:
		return "PlayPokemon"
	case ActionAttachEnergy:
		return "AttachEnergy"
	case ActionPlayTrainer:
		return "PlayTrainer"
	case ActionUseAbility:
		return "UseAbility"
	case ActionAttack:
		return "Attack"
	case ActionRetreat:
		return "Retreat"
	case ActionChooseCard:
		return "ChooseCard"
	case ActionPass:
		return "Pass"
	default:
		return "Unknown"
	}
}

// Action is a single legal or proposed move, as returned by LegalActions
// and consumed by Apply. Field use varies by Type:
//   - PlayPokemon: Player, HandIndex, BenchIndex (-1 means "to active",
//     set only when the player has no active; otherwise the card goes to
//     the first free bench slot for a Basic, or BenchIndex names which
//     in-play Pokemon an evolution targets)
//   - AttachEnergy: Player, HandIndex, BenchIndex (-1 = active)
//   - PlayTrainer: Player, HandIndex
//   - UseAbility: Player, BenchIndex (-1 = active), AbilityName
//   - Attack: Player, AttackIndex
//   - Retreat: Player, BenchIndex (destination of the swap)
//   - ChooseCard: Player, ChoiceID (one selected option id per action,
//     spec.md Section 6 "ChooseCard{choice_id, label?}"), Skip
//   - Pass: Player only
type Action struct {
	Type ActionType
	Player int

	HandIndex   int
	BenchIndex  int
	AttackIndex int
	AbilityName string

	ChoiceID string
	Skip     bool

	// Label is a human-readable description filled in by LegalActions,
	// convenient for driver UIs; Apply ignores it.
	Label string
}
