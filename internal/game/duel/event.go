package duel

import "github.com/udisondev/bladeduel/internal/model"

// EventKind identifies a point in the duel a Reporter is told about.
type EventKind int

const (
	EventDuelStarted   EventKind = iota + 1 // before the first turn
	EventTurnStarted                        // turn number advanced
	EventCarriedOver                        // stored effects before choosing
	EventEffectsActive                      // composed set entered
	EventBeforeCombat                       // stats with effects applied
	EventAttack                             // one attack resolved
	EventAfterCombat                        // both attacks resolved, set still entered
	EventDuelFinished                       // outcome decided
)

var eventNames = [...]string{
	EventDuelStarted:   "duel_started",
	EventTurnStarted:   "turn_started",
	EventCarriedOver:   "carried_over",
	EventEffectsActive: "effects_active",
	EventBeforeCombat:  "before_combat",
	EventAttack:        "attack",
	EventAfterCombat:   "after_combat",
	EventDuelFinished:  "duel_finished",
}

func (k EventKind) String() string {
	if k < EventDuelStarted || k > EventDuelFinished {
		return "unknown"
	}
	return eventNames[k]
}

// Event is a snapshot handed to a Reporter. Players are live; read their
// stats and effects during Report, not later.
type Event struct {
	Kind    EventKind
	Turn    int
	Players [2]*model.Character

	// EventEffectsActive: the composed set in entry order.
	Effects []model.StatusEffect

	// EventAttack only.
	Attacker *model.Character
	Defender *model.Character
	Attack   model.AttackResult

	// EventDuelFinished only.
	Outcome *Outcome
}
