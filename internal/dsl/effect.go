package dsl

// EffectKind enumerates every effect family the interpreter understands
// (spec.md Section 4.6 "EffectInterpreter"). Effect trees replace the
// closure-valued CardEffect hooks a pre-DSL engine would use: every card
// behaviour is data, walked by a single interpreter, per spec.md Section 9
// ("function-valued fields in source SHOULD be migrated to DSL").
type EffectKind int

const (
	EffectDamage EffectKind = iota
	EffectHeal
	EffectSetHP
	EffectPreventDamage
	EffectSelfDamage
	EffectBonusDamage
	EffectDraw
	EffectMill
	EffectShuffle
	EffectSearch
	EffectDiscard
	EffectDiscardHand
	EffectDiscardFromHand
	EffectMoveEnergy
	EffectAddEnergy
	EffectRemoveEnergy
	EffectAddStatus
	EffectRemoveStatus
	EffectForceSwitch
	EffectSelfSwitch
	EffectExtraTurn
	EffectSkipNextTurn
	EffectOpponentCannotAttack
	EffectOpponentCannotPlayTrainers
	EffectOpponentCannotUseAbilities
	EffectCannotRetreat
	EffectSearchAndAttach
	EffectShuffleHandIntoDeck
	EffectAddGameFlag
	EffectRareCandy
	EffectConditional
	EffectChoice
	EffectSequence
	EffectRepeat
	EffectNoop
)

// Effect is a tagged expression describing one unit of card behaviour.
// Interpretation contracts for every Kind are specified in spec.md Section
// 4.6; the field-by-field mapping below is this module's concrete
// encoding of that contract.
//
// Field use varies by Kind — see the constructor functions for the
// canonical shape of each:
//   - Damage/Heal/SetHP/PreventDamage/CannotRetreat/RemoveEnergy:
//     Targets, Amount (Damage/Heal/SetHP), Duration (PreventDamage)
//   - SelfDamage: Amount (applies to the attacking Pokemon)
//   - BonusDamage: Targets, Amount (flat addend), PerUnit/CountProperty/
//     CountTarget (scaling addend) — total damage is Amount +
//     PerUnit * count
//   - Draw/Mill: Player, Count
//   - Shuffle: Player, Zone
//   - Search: Player, Zone, Filter, Count (suspends as a PendingChoice of
//     kind SearchCard when the matches exceed the requested count — see
//     spec.md Section 4.6 "search")
//   - Discard: Targets (Pokemon to discard energy/tool from), Filter,
//     Count (rightmost-first, defaults to 1 when nil)
//   - DiscardHand: Player
//   - DiscardFromHand: Player, Filter, Count (suspends as DiscardCard)
//   - MoveEnergy: FromTarget, Targets[0] (to), EnergyType (optional filter)
//   - AddEnergy: Targets, EnergyType, EnergySource, Count
//   - AddStatus/RemoveStatus: Targets, Status (RemoveStatus: zero Status
//     with RemoveAllStatus set removes every condition)
//   - ForceSwitch/SelfSwitch: Player (ForceSwitch: the player forced to
//     switch, normally the opponent)
//   - ExtraTurn/SkipNextTurn: Player
//   - OpponentCannotAttack/PlayTrainers/UseAbilities/AddGameFlag:
//     FlagName, Duration
//   - SearchAndAttach: Player, Filter (deck search), Targets (where the
//     chosen card is attached); exactly one card is chosen, and
//     EnergyType is stored but not read
//   - ShuffleHandIntoDeck: Player
//   - RareCandy: Targets[0] (basic to evolve from), Filter (stage-2 card
//     filter); zero/one/multiple matching pairs handled by the
//     interpreter per spec.md Section 4.6 "rareCandy"
//   - Conditional: Condition, Then, Else
//   - Choice: Options (each a full effect list, one chosen by the
//     acting player)
//   - Sequence: Inner, run in order
//   - Repeat: Inner, RepeatCount
//   - Noop: no fields
type Effect struct {
	Kind EffectKind

	Targets    []*Target
	FromTarget *Target
	Amount     *ValueSource
	Count      *ValueSource
	Duration   Duration

	CountProperty BonusCountProperty
	CountTarget   *Target
	PerUnit       int

	Zone         ZoneKind
	Filter       *CardFilter
	EnergyType   string
	EnergySource EnergySourceKind

	Status          Status
	RemoveAllStatus bool

	Player   PlayerRef
	FlagName string

	Condition *Condition
	Then      []*Effect
	Else      []*Effect

	Options [][]*Effect

	Inner       []*Effect
	RepeatCount int
}

func EDamage(targets []*Target, amount *ValueSource) *Effect {
	return &Effect{Kind: EffectDamage, Targets: targets, Amount: amount}
}

func EHeal(targets []*Target, amount *ValueSource) *Effect {
	return &Effect{Kind: EffectHeal, Targets: targets, Amount: amount}
}

func ESetHP(targets []*Target, amount *ValueSource) *Effect {
	return &Effect{Kind: EffectSetHP, Targets: targets, Amount: amount}
}

func EPreventDamage(targets []*Target, duration Duration) *Effect {
	return &Effect{Kind: EffectPreventDamage, Targets: targets, Duration: duration}
}

func ESelfDamage(amount *ValueSource) *Effect {
	return &Effect{Kind: EffectSelfDamage, Amount: amount}
}

func EBonusDamage(targets []*Target, amount *ValueSource, perUnit int, property BonusCountProperty, countTarget *Target) *Effect {
	return &Effect{Kind: EffectBonusDamage, Targets: targets, Amount: amount, PerUnit: perUnit, CountProperty: property, CountTarget: countTarget}
}

func EDraw(player PlayerRef, count *ValueSource) *Effect {
	return &Effect{Kind: EffectDraw, Player: player, Count: count}
}

func EMill(player PlayerRef, count *ValueSource) *Effect {
	return &Effect{Kind: EffectMill, Player: player, Count: count}
}

func EShuffle(player PlayerRef, zone ZoneKind) *Effect {
	return &Effect{Kind: EffectShuffle, Player: player, Zone: zone}
}

func ESearch(player PlayerRef, zone ZoneKind, filter *CardFilter, count *ValueSource) *Effect {
	return &Effect{Kind: EffectSearch, Player: player, Zone: zone, Filter: filter, Count: count}
}

func EDiscard(targets []*Target, filter *CardFilter, count *ValueSource) *Effect {
	return &Effect{Kind: EffectDiscard, Targets: targets, Filter: filter, Count: count}
}

func EDiscardHand(player PlayerRef) *Effect {
	return &Effect{Kind: EffectDiscardHand, Player: player}
}

func EDiscardFromHand(player PlayerRef, filter *CardFilter, count *ValueSource) *Effect {
	return &Effect{Kind: EffectDiscardFromHand, Player: player, Filter: filter, Count: count}
}

func EMoveEnergy(from, to *Target, elementType string) *Effect {
	return &Effect{Kind: EffectMoveEnergy, FromTarget: from, Targets: []*Target{to}, EnergyType: elementType}
}

func EAddEnergy(targets []*Target, elementType string, source EnergySourceKind, count *ValueSource) *Effect {
	return &Effect{Kind: EffectAddEnergy, Targets: targets, EnergyType: elementType, EnergySource: source, Count: count}
}

func ERemoveEnergy(targets []*Target, elementType string, count *ValueSource) *Effect {
	return &Effect{Kind: EffectRemoveEnergy, Targets: targets, EnergyType: elementType, Count: count}
}

func EAddStatus(targets []*Target, status Status) *Effect {
	return &Effect{Kind: EffectAddStatus, Targets: targets, Status: status}
}

func ERemoveStatus(targets []*Target, status Status) *Effect {
	return &Effect{Kind: EffectRemoveStatus, Targets: targets, Status: status}
}

func ERemoveAllStatus(targets []*Target) *Effect {
	return &Effect{Kind: EffectRemoveStatus, Targets: targets, RemoveAllStatus: true}
}

func EForceSwitch(player PlayerRef) *Effect {
	return &Effect{Kind: EffectForceSwitch, Player: player}
}

func ESelfSwitch(player PlayerRef) *Effect {
	return &Effect{Kind: EffectSelfSwitch, Player: player}
}

func EExtraTurn(player PlayerRef) *Effect {
	return &Effect{Kind: EffectExtraTurn, Player: player}
}

func ESkipNextTurn(player PlayerRef) *Effect {
	return &Effect{Kind: EffectSkipNextTurn, Player: player}
}

func EOpponentCannotAttack(duration Duration) *Effect {
	return &Effect{Kind: EffectOpponentCannotAttack, Duration: duration}
}

func EOpponentCannotPlayTrainers(duration Duration) *Effect {
	return &Effect{Kind: EffectOpponentCannotPlayTrainers, Duration: duration}
}

func EOpponentCannotUseAbilities(duration Duration) *Effect {
	return &Effect{Kind: EffectOpponentCannotUseAbilities, Duration: duration}
}

func ECannotRetreat(targets []*Target, duration Duration) *Effect {
	return &Effect{Kind: EffectCannotRetreat, Targets: targets, Duration: duration}
}

func ESearchAndAttach(player PlayerRef, searchFilter *CardFilter, targets []*Target, elementType string) *Effect {
	return &Effect{Kind: EffectSearchAndAttach, Player: player, Filter: searchFilter, Targets: targets, EnergyType: elementType}
}

func EShuffleHandIntoDeck(player PlayerRef) *Effect {
	return &Effect{Kind: EffectShuffleHandIntoDeck, Player: player}
}

// ERareCandy evolves basicTarget directly into a card matched by
// stageTwoFilter, skipping the intervening Stage 1.
func ERareCandy(basicTarget *Target, stageTwoFilter *CardFilter) *Effect {
	return &Effect{Kind: EffectRareCandy, Targets: []*Target{basicTarget}, Filter: stageTwoFilter}
}

func EAddGameFlag(flagName string, duration Duration) *Effect {
	return &Effect{Kind: EffectAddGameFlag, FlagName: flagName, Duration: duration}
}

func EConditional(cond *Condition, then, els []*Effect) *Effect {
	return &Effect{Kind: EffectConditional, Condition: cond, Then: then, Else: els}
}

func EChoice(options ...[]*Effect) *Effect {
	return &Effect{Kind: EffectChoice, Options: options}
}

func ESequence(inner ...*Effect) *Effect {
	return &Effect{Kind: EffectSequence, Inner: inner}
}

func ERepeat(count int, inner ...*Effect) *Effect {
	return &Effect{Kind: EffectRepeat, RepeatCount: count, Inner: inner}
}

func ENoop() *Effect { return &Effect{Kind: EffectNoop} }
