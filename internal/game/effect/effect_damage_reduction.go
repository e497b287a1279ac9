package effect

import (
	"fmt"

	"github.com/udisondev/bladeduel/internal/model"
)

// DamageReduction raises the owner's shield by a flat amount while entered.
type DamageReduction struct {
	base
	amount int
}

func NewDamageReduction(owner *model.Character, amount int) *DamageReduction {
	return &DamageReduction{
		base:   newBase(model.KindDamageReduction, owner, 1),
		amount: amount,
	}
}

// Amount returns the shield bonus.
func (e *DamageReduction) Amount() int { return e.amount }

func (e *DamageReduction) modifier() model.StatModifier {
	return model.StatModifier{Stat: model.StatShield, Type: model.StatModAdd, Value: e.amount}
}

func (e *DamageReduction) Enter() {
	e.enter(e)
	e.modifier().Apply(e.owner)
	e.logEnter("shield", e.owner.Shield())
}

func (e *DamageReduction) Exit(error) bool {
	e.exit(e)
	e.modifier().Revert(e.owner)
	e.logExit("shield", e.owner.Shield())
	return false
}

// StatModifiers returns the shield bonus.
func (e *DamageReduction) StatModifiers() []model.StatModifier {
	return []model.StatModifier{e.modifier()}
}

func (e *DamageReduction) String() string {
	return fmt.Sprintf("Damage Reduction by %d", e.amount)
}
