package effect

import (
	"fmt"

	"github.com/udisondev/bladeduel/internal/i18n"
	"github.com/udisondev/bladeduel/internal/model"
)

// Poison drains the owner's health every turn it is entered.
// Usually delivered by a Poison Blade hit; never offered directly.
type Poison struct {
	base
	amount int
}

func NewPoison(owner *model.Character, turns, amountPerTurn int) *Poison {
	return &Poison{
		base:   newBase(model.KindPoison, owner, turns),
		amount: amountPerTurn,
	}
}

// AmountPerTurn returns health lost on each entry.
func (e *Poison) AmountPerTurn() int { return e.amount }

func (e *Poison) Enter() {
	e.enter(e)
	model.StatModifier{Stat: model.StatHealth, Type: model.StatModAdd, Value: -e.amount}.Apply(e.owner)
	e.logEnter("health", e.owner.Health())
}

func (e *Poison) Exit(error) bool {
	e.exit(e)
	e.logExit()
	return false
}

func (e *Poison) String() string {
	return fmt.Sprintf("Poison (lose %d health per turn for %s)", e.amount, i18n.Turns(e.turns))
}
