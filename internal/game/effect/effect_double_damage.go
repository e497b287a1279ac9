package effect

import "github.com/udisondev/bladeduel/internal/model"

var doubleDamage = model.StatModifier{Stat: model.StatDamage, Type: model.StatModMul, Value: 2}

// DoubleDamage doubles the owner's damage while entered.
// Exit halves it again with floor division.
type DoubleDamage struct{ base }

func NewDoubleDamage(owner *model.Character) *DoubleDamage {
	return &DoubleDamage{base: newBase(model.KindDoubleDamage, owner, 1)}
}

func (e *DoubleDamage) Enter() {
	e.enter(e)
	doubleDamage.Apply(e.owner)
	e.logEnter("damage", e.owner.Damage())
}

func (e *DoubleDamage) Exit(error) bool {
	e.exit(e)
	doubleDamage.Revert(e.owner)
	e.logExit("damage", e.owner.Damage())
	return false
}

// StatModifiers returns the damage multiplier.
func (e *DoubleDamage) StatModifiers() []model.StatModifier {
	return []model.StatModifier{doubleDamage}
}

func (e *DoubleDamage) String() string { return "Double Damage" }
