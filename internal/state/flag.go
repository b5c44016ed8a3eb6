package state

import "github.com/kuimelis/ptcgcore/internal/dsl"

// GameFlag is a named, time-boxed restriction or marker (spec.md Section 3
// "GameFlag") — e.g. "opponent cannot attack next turn", or a per-Pokemon
// restriction such as cannotRetreat, encoded with TargetID set. Flags
// expire at end of the turn named by ExpiresAtTurn (DurationNextTurn) or
// at the end of the attack that created them (DurationThisAttack, cleared
// by the rules engine immediately after the attack resolves rather than by
// turn number).
type GameFlag struct {
	Name      string
	Owner     int // player this flag restricts/describes; -1 if not player-scoped
	TargetID  string // PokemonInPlay.ID this flag is scoped to, if any
	Duration  dsl.Duration
	ExpiresAtTurn int // meaningful only when Duration == DurationNextTurn
}

// DamageShield attenuates incoming damage to a Pokemon (spec.md Section 3
// "DamageShield"). PreventAll shields block all damage outright; otherwise
// Amount is subtracted from each instance of incoming damage (never
// pushing the result below zero).
type DamageShield struct {
	Amount        int
	PreventAll    bool
	Duration      dsl.Duration
	ExpiresAtTurn int
}

// Active reports whether the flag has not yet expired as of the given
// turn number. DurationThisAttack flags are removed explicitly by the
// rules engine right after the attack they guard resolves, so Active
// always returns true for them until that removal.
func (f GameFlag) Active(currentTurn int) bool {
	if f.Duration == dsl.DurationNextTurn {
		return currentTurn <= f.ExpiresAtTurn
	}
	return true
}

// Active reports whether the shield has not yet expired as of the given
// turn number. It always returns true for DurationThisAttack shields; the
// rules engine drops those in its end-of-turn shield expiry.
func (s DamageShield) Active(currentTurn int) bool {
	if s.Duration == dsl.DurationNextTurn {
		return currentTurn <= s.ExpiresAtTurn
	}
	return true
}
