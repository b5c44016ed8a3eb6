// Package dsl implements the Effect DSL: a tagged-expression language for
// card effects (value sources, target selectors, card filters, boolean
// conditions, and the effect tree itself), per spec.md Section 4 and
// Section 9 ("Effects as data" / "function-valued fields ... SHOULD be
// migrated"). It is deliberately the lowest-level package in this module:
// it has no dependency on internal/cards or internal/state, so that both
// of those packages (and internal/eval, internal/interp) can depend on it
// without creating an import cycle — mirroring how the teacher's
// CardEffect closures (internal/game/effect.go) sat underneath both card
// definitions and the Duel engine.
package dsl

// CardKind distinguishes the three top-level card variants (spec.md
// Section 3 "Card").
type CardKind int

const (
	CardKindPokemon CardKind = iota
	CardKindTrainer
	CardKindEnergy
)

func (k CardKind) String() string {
	switch k {
	case CardKindPokemon:
		return "Pokemon"
	case CardKindTrainer:
		return "Trainer"
	case CardKindEnergy:
		return "Energy"
	default:
		return "Unknown"
	}
}

// Stage enumerates Pokemon evolution stages.
type Stage int

const (
	StageBasic Stage = iota
	Stage1
	Stage2
	StageEx
)

func (s Stage) String() string {
	switch s {
	case StageBasic:
		return "Basic"
	case Stage1:
		return "Stage 1"
	case Stage2:
		return "Stage 2"
	case StageEx:
		return "Ex"
	default:
		return "Unknown"
	}
}

// TrainerSubtype enumerates Trainer card subtypes.
type TrainerSubtype int

const (
	TrainerItem TrainerSubtype = iota
	TrainerSupporter
	TrainerTool
	TrainerStadium
)

func (t TrainerSubtype) String() string {
	switch t {
	case TrainerItem:
		return "Item"
	case TrainerSupporter:
		return "Supporter"
	case TrainerTool:
		return "Tool"
	case TrainerStadium:
		return "Stadium"
	default:
		return "Unknown"
	}
}

// EnergySubtype enumerates Energy card subtypes.
type EnergySubtype int

const (
	EnergyBasic EnergySubtype = iota
	EnergySpecial
)

func (e EnergySubtype) String() string {
	if e == EnergySpecial {
		return "Special"
	}
	return "Basic"
}

// Status is one of the five status conditions (spec.md GLOSSARY).
type Status int

const (
	StatusNone Status = iota
	StatusPoisoned
	StatusBurned
	StatusAsleep
	StatusConfused
	StatusParalyzed
)

func (s Status) String() string {
	switch s {
	case StatusPoisoned:
		return "Poisoned"
	case StatusBurned:
		return "Burned"
	case StatusAsleep:
		return "Asleep"
	case StatusConfused:
		return "Confused"
	case StatusParalyzed:
		return "Paralyzed"
	default:
		return "None"
	}
}

// AbilityTrigger classifies when an Ability may be used.
type AbilityTrigger int

const (
	TriggerOnEvolve AbilityTrigger = iota
	TriggerOncePerTurn
	TriggerOnPlay
	TriggerPassive
)

// Comparator is used by Condition and ValueSource comparisons.
type Comparator int

const (
	GTE Comparator = iota
	LTE
	EQ
)

func (c Comparator) Compare(lhs, rhs int) bool {
	switch c {
	case GTE:
		return lhs >= rhs
	case LTE:
		return lhs <= rhs
	case EQ:
		return lhs == rhs
	default:
		return false
	}
}

// Duration classifies how long a DamageShield or GameFlag persists
// (spec.md Section 3 "DamageShield", "GameFlag").
type Duration int

const (
	DurationNextTurn Duration = iota
	DurationThisAttack
)

// PlayerRef identifies a player relative to the acting effect context,
// rather than by a raw 0/1 index, so DSL expressions are deck/seat
// agnostic (spec.md Section 4.4 "TargetResolver").
type PlayerRef int

const (
	PlayerActing PlayerRef = iota // the player whose turn/effect this is
	PlayerOpponent
)

// ZoneKind names a player zone addressed directly by effects (as opposed
// to a Target, which addresses in-play Pokemon).
type ZoneKind int

const (
	ZoneDeck ZoneKind = iota
	ZoneHand
	ZoneDiscard
	ZoneLostZone
	ZonePrizes
)

func (z ZoneKind) String() string {
	switch z {
	case ZoneDeck:
		return "deck"
	case ZoneHand:
		return "hand"
	case ZoneDiscard:
		return "discard pile"
	case ZoneLostZone:
		return "lost zone"
	case ZonePrizes:
		return "prize cards"
	default:
		return "zone"
	}
}

// ChoiceKind enumerates the PendingChoice kinds (spec.md Section 3
// "PendingChoice").
type ChoiceKind int

const (
	ChoiceSearchCard ChoiceKind = iota
	ChoiceDiscardCard
	ChoiceSwitchTarget
	ChoiceEvolveTarget
	// ChoiceGeneric backs the "choice" effect's branch selection (spec.md
	// Section 4.6 "choice") — distinct from the four PendingChoice kinds
	// named in Section 3, since picking among card-text branches isn't a
	// search/discard/switch/evolve decision.
	ChoiceGeneric
)

func (k ChoiceKind) String() string {
	switch k {
	case ChoiceSearchCard:
		return "SearchCard"
	case ChoiceDiscardCard:
		return "DiscardCard"
	case ChoiceSwitchTarget:
		return "SwitchTarget"
	case ChoiceEvolveTarget:
		return "EvolveTarget"
	case ChoiceGeneric:
		return "Choice"
	default:
		return "Unknown"
	}
}

// EnergySourceKind names where addEnergy draws its cards from.
type EnergySourceKind int

const (
	EnergySourceDeck EnergySourceKind = iota
	EnergySourceDiscard
	EnergySourceCreate // synthesize a fresh basic Energy with no source zone
)

// BonusCountProperty enumerates the scaling properties bonusDamage may use
// (spec.md Section 4.6 "bonusDamage").
type BonusCountProperty int

const (
	BonusEnergyAttached BonusCountProperty = iota
	BonusDamageOn
	BonusBenchCount
	BonusPrizesTaken
	BonusTrainerCountInHand
)
