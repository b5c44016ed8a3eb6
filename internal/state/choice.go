package state

import (
	"github.com/kuimelis/ptcgcore/internal/cards"
	"github.com/kuimelis/ptcgcore/internal/dsl"
)

// ChoiceOption is one selectable item within a PendingChoice. Options are
// indexed by a unique per-instance ID rather than by card name (spec.md
// Section 9: "choice options indexed by unique per-card id not name" —
// two copies of the same card name in a search result must remain
// individually selectable).
type ChoiceOption struct {
	ID        string
	Label     string
	Card      *cards.Card // SearchCard / DiscardCard options: the matched card
	PokemonID string      // SwitchTarget / EvolveTarget options: a PokemonInPlay.ID
}

// PendingChoice captures a suspended effect awaiting player input, plus
// the continuation to resume once it's resolved (spec.md Section 3
// "PendingChoice", Section 9 "continuation as a residual list").
//
// Exactly one PendingChoice may be outstanding at a time (spec.md Section
// 3 invariant: pending_choice exclusivity) — GameState.Pending is nil
// whenever no choice is outstanding, and legal_actions/apply are expected
// to refuse any other action while it is non-nil.
type PendingChoice struct {
	Kind    dsl.ChoiceKind
	Player  int // player who must resolve this choice
	Options []ChoiceOption

	MinCount int // selections asked for (search: min(k, len(matches))); a CanSkip choice may finish with fewer
	MaxCount int // most options that may be chosen

	// CanSkip is whether the choice may be resolved with fewer than
	// MaxCount selections (spec.md Section 4.6: SearchCard choices are
	// always "up to N" even when count > 0, while a forced switch,
	// evolve, or generic branch choice is mandatory).
	CanSkip bool

	// Selected accumulates the options chosen so far as submissions
	// arrive one at a time (spec.md Section 4.8 testable property 5:
	// selections are submitted and applied one at a time, with the
	// pending choice remaining in place until exhausted). Picked options
	// are moved here out of Options.
	Selected []ChoiceOption

	// Zone is the zone a SearchCard/DiscardCard choice draws from, so
	// finalizing doesn't have to guess it (spec.md Section 4.6 "search").
	Zone dsl.ZoneKind

	// FromAttack marks a PendingChoice raised by an attack's own Effects
	// (spec.md Section 4.8 "Attack"): once such a choice fully resolves,
	// the turn must still advance to BetweenTurns even though that
	// transition couldn't happen immediately after Run suspended.
	FromAttack bool

	// SwitchPlayerIndex names whose bench a SwitchTarget choice draws
	// from; it can differ from Player (e.g. a forced switch resolved by
	// the player being forced, choosing among their own bench, while a
	// self-switch effect lets the controller pick for themselves —
	// spec.md Section 4.7 "SwitchTarget").
	SwitchPlayerIndex int

	// Residual is the list of effects still to run, in order, once this
	// choice is resolved — the suspended tail of whatever effect list
	// was being interpreted when the choice arose (spec.md Section 4.6
	// "suspension writes remaining effects ... into PendingChoice").
	Residual []*dsl.Effect

	// Branches holds the candidate effect list for a ChoiceGeneric
	// choice, keyed by the ChoiceOption.ID of the option that selects it.
	Branches map[string][]*dsl.Effect

	// AttachTargets, when non-nil, redirects a resolved SearchCard choice
	// straight onto these in-play Pokemon as energy instead of into hand
	// — the searchAndAttach effect family (spec.md Section 4.6
	// "searchAndAttach").
	AttachTargets []*dsl.Target
}
