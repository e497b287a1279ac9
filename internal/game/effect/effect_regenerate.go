package effect

import (
	"fmt"

	"github.com/udisondev/bladeduel/internal/i18n"
	"github.com/udisondev/bladeduel/internal/model"
)

// Regenerate heals the owner every turn it is entered.
// Healing is not taken back on exit.
type Regenerate struct {
	base
	amount int
}

func NewRegenerate(owner *model.Character, turns, amountPerTurn int) *Regenerate {
	return &Regenerate{
		base:   newBase(model.KindRegenerate, owner, turns),
		amount: amountPerTurn,
	}
}

// AmountPerTurn returns health restored on each entry.
func (e *Regenerate) AmountPerTurn() int { return e.amount }

func (e *Regenerate) Enter() {
	e.enter(e)
	model.StatModifier{Stat: model.StatHealth, Type: model.StatModAdd, Value: e.amount}.Apply(e.owner)
	e.logEnter("health", e.owner.Health())
}

func (e *Regenerate) Exit(error) bool {
	e.exit(e)
	e.logExit()
	return false
}

func (e *Regenerate) String() string {
	return fmt.Sprintf("Regenerate %d health per turn for %s", e.amount, i18n.Turns(e.turns))
}
