package effect

import (
	"fmt"

	"github.com/udisondev/bladeduel/internal/i18n"
	"github.com/udisondev/bladeduel/internal/model"
)

// StunBlade makes the owner's next successful attack stun the victim.
// The Stun takes hold after the victim's effects are next promoted.
type StunBlade struct{ base }

func NewStunBlade(owner *model.Character) *StunBlade {
	return &StunBlade{base: newBase(model.KindStunBlade, owner, 1)}
}

func (e *StunBlade) Enter() {
	e.enter(e)
	e.logEnter()
}

func (e *StunBlade) Exit(error) bool {
	e.exit(e)
	e.logExit()
	return false
}

// NextAttackEffect returns a new Stun owned by target.
func (e *StunBlade) NextAttackEffect(target *model.Character) model.StatusEffect {
	return NewStun(target)
}

func (e *StunBlade) String() string {
	return "Stun Blade (next attack gives the target the Stun effect)"
}

// PoisonBlade makes the owner's next successful attack poison the victim.
type PoisonBlade struct {
	base
	poisonTurns   int
	poisonPerTurn int
}

func NewPoisonBlade(owner *model.Character, poisonTurns, poisonPerTurn int) *PoisonBlade {
	return &PoisonBlade{
		base:          newBase(model.KindPoisonBlade, owner, 1),
		poisonTurns:   poisonTurns,
		poisonPerTurn: poisonPerTurn,
	}
}

// PoisonTurns returns how long delivered poison lasts.
func (e *PoisonBlade) PoisonTurns() int { return e.poisonTurns }

// PoisonPerTurn returns the health delivered poison drains per turn.
func (e *PoisonBlade) PoisonPerTurn() int { return e.poisonPerTurn }

func (e *PoisonBlade) Enter() {
	e.enter(e)
	e.logEnter()
}

func (e *PoisonBlade) Exit(error) bool {
	e.exit(e)
	e.logExit()
	return false
}

// NextAttackEffect returns a new Poison owned by target.
func (e *PoisonBlade) NextAttackEffect(target *model.Character) model.StatusEffect {
	return NewPoison(target, e.poisonTurns, e.poisonPerTurn)
}

func (e *PoisonBlade) String() string {
	return fmt.Sprintf("Poison Blade (next attack gives the target the Poison effect for %d per turn for %s)",
		e.poisonPerTurn, i18n.Turns(e.poisonTurns))
}
