package effect

import "github.com/udisondev/bladeduel/internal/model"

// Stun stops the owner's attacks for one turn. No stats change;
// Character.Attack checks the attacker for it.
type Stun struct{ base }

func NewStun(owner *model.Character) *Stun {
	return &Stun{base: newBase(model.KindStun, owner, 1)}
}

func (e *Stun) Enter() {
	e.enter(e)
	e.logEnter()
}

func (e *Stun) Exit(error) bool {
	e.exit(e)
	e.logExit()
	return false
}

func (e *Stun) String() string { return "Stun" }
