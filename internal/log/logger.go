package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// playerName returns "P1" or "P2" for display.
func playerName(p int) string {
	return fmt.Sprintf("P%d", p+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	phase := e.Phase
	if phase == "" {
		phase = "          "
	}
	for len(phase) < 16 {
		phase += " "
	}
	return fmt.Sprintf("T%-2d %s| %s", e.Turn, phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewPhaseChangeEvent(turn int, phase string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventPhaseChange,
		Details: fmt.Sprintf("Phase -> %s", phase),
	}
}

func NewTurnStartEvent(turn int, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Draw Phase",
		Player:  player,
		Type:    EventTurnStart,
		Details: fmt.Sprintf("=== Turn %d (%s) ===", turn, playerName(player)),
	}
}

func NewDrawEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("%s draws %s", playerName(player), cardName),
	}
}

func NewMulliganEvent(turn int, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Setup",
		Player:  player,
		Type:    EventMulligan,
		Details: fmt.Sprintf("%s mulligans (no Basic Pokemon in hand)", playerName(player)),
	}
}

func NewPlayPokemonEvent(turn int, phase string, player int, cardName string, zone string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventPlayPokemon,
		Card:    cardName,
		Details: fmt.Sprintf("%s plays %s to %s", playerName(player), cardName, zone),
	}
}

func NewEvolveEvent(turn int, phase string, player int, fromName, toName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventEvolve,
		Card:    toName,
		Details: fmt.Sprintf("%s evolves %s into %s", playerName(player), fromName, toName),
	}
}

func NewAttachEnergyEvent(turn int, phase string, player int, cardName, targetName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventAttachEnergy,
		Card:    cardName,
		Details: fmt.Sprintf("%s attaches %s to %s", playerName(player), cardName, targetName),
	}
}

func NewPlayTrainerEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventPlayTrainer,
		Card:    cardName,
		Details: fmt.Sprintf("%s plays %s", playerName(player), cardName),
	}
}

func NewUseAbilityEvent(turn int, phase string, player int, cardName, abilityName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventUseAbility,
		Card:    cardName,
		Details: fmt.Sprintf("%s uses %s's ability %q", playerName(player), cardName, abilityName),
	}
}

func NewAttackDeclareEvent(turn int, player int, attacker, defender string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Attack Phase",
		Player:  player,
		Type:    EventAttackDeclare,
		Card:    attacker,
		Details: fmt.Sprintf("%s attacks with %s -> %s", playerName(player), attacker, defender),
	}
}

func NewDamageEvent(turn int, phase string, player int, targetName string, oldHP, newHP int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventDamage,
		Card:    targetName,
		Details: fmt.Sprintf("%s HP: %d -> %d (%s)", targetName, oldHP, newHP, reason),
	}
}

func NewHealEvent(turn int, phase string, player int, targetName string, oldHP, newHP int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventHeal,
		Card:    targetName,
		Details: fmt.Sprintf("%s HP: %d -> %d (heal)", targetName, oldHP, newHP),
	}
}

func NewStatusAppliedEvent(turn int, phase string, player int, targetName, status string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventStatusApplied,
		Card:    targetName,
		Details: fmt.Sprintf("%s is now %s", targetName, status),
	}
}

func NewStatusRemovedEvent(turn int, phase string, player int, targetName, status string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventStatusRemoved,
		Card:    targetName,
		Details: fmt.Sprintf("%s no longer %s", targetName, status),
	}
}

func NewKnockoutEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventKnockout,
		Card:    cardName,
		Details: fmt.Sprintf("%s is knocked out", cardName),
	}
}

func NewPrizeTakenEvent(turn int, phase string, player int, count, remaining int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventPrizeTaken,
		Details: fmt.Sprintf("%s takes %d prize card(s) (%d remaining)", playerName(player), count, remaining),
	}
}

func NewRetreatEvent(turn int, phase string, player int, outName, inName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventRetreat,
		Details: fmt.Sprintf("%s retreats %s for %s", playerName(player), outName, inName),
	}
}

func NewSwitchEvent(turn int, phase string, player int, outName, inName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventSwitch,
		Details: fmt.Sprintf("%s's active switches: %s <-> %s", playerName(player), outName, inName),
	}
}

func NewShuffleEvent(turn int, phase string, player int, zone string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventShuffle,
		Details: fmt.Sprintf("%s shuffles their %s", playerName(player), zone),
	}
}

func NewSearchEvent(turn int, phase string, player int, count int, zone string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventSearch,
		Details: fmt.Sprintf("%s searches %s and finds %d card(s)", playerName(player), zone, count),
	}
}

func NewMillEvent(turn int, phase string, player int, count int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventMill,
		Details: fmt.Sprintf("%s mills %d card(s)", playerName(player), count),
	}
}

func NewDiscardEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventDiscard,
		Card:    cardName,
		Details: fmt.Sprintf("%s discards %s", playerName(player), cardName),
	}
}

func NewChoicePendingEvent(turn int, phase string, player int, kind string, remaining int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventChoicePending,
		Details: fmt.Sprintf("%s must make a %s choice (%d remaining)", playerName(player), kind, remaining),
	}
}

func NewChoiceResolvedEvent(turn int, phase string, player int, label string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventChoiceResolved,
		Details: fmt.Sprintf("%s selects %s", playerName(player), label),
	}
}

func NewGameFlagSetEvent(turn int, phase string, player int, name string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventGameFlagSet,
		Details: fmt.Sprintf("flag %q set by %s", name, playerName(player)),
	}
}

func NewGameFlagExpiredEvent(turn int, phase string, name string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventGameFlagExpired,
		Details: fmt.Sprintf("flag %q expired", name),
	}
}

func NewWinEvent(turn int, phase string, winner int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  winner,
		Type:    EventWin,
		Details: fmt.Sprintf("%s wins! (%s)", playerName(winner), reason),
	}
}

func NewDeckOutEvent(turn int, phase string, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventDeckOut,
		Details: fmt.Sprintf("%s cannot draw — deck is empty", playerName(player)),
	}
}
