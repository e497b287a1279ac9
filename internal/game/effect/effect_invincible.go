package effect

import "github.com/udisondev/bladeduel/internal/model"

// Invincible makes every attack against the owner miss for one turn.
// It changes no stats; Character.Attack checks for it.
type Invincible struct{ base }

func NewInvincible(owner *model.Character) *Invincible {
	return &Invincible{base: newBase(model.KindInvincible, owner, 1)}
}

func (e *Invincible) Enter() {
	e.enter(e)
	e.logEnter()
}

func (e *Invincible) Exit(error) bool {
	e.exit(e)
	e.logExit()
	return false
}

func (e *Invincible) String() string { return "Invincible" }
