package effect

import (
	"fmt"
	"slices"
	"strings"

	"github.com/udisondev/bladeduel/internal/model"
)

// Params carries the kind-specific numbers used to build an effect.
// Turns is used by Regenerate and Poison, and by PoisonBlade for the poison
// it delivers. Amount is the shield bonus, heal, or drain per turn.
type Params struct {
	Turns  int
	Amount int
}

// effectRegistry maps each kind to its constructor.
var effectRegistry = map[model.EffectKind]func(owner *model.Character, p Params) model.StatusEffect{
	model.KindInvincible: func(owner *model.Character, _ Params) model.StatusEffect {
		return NewInvincible(owner)
	},
	model.KindDoubleDamage: func(owner *model.Character, _ Params) model.StatusEffect {
		return NewDoubleDamage(owner)
	},
	model.KindDamageReduction: func(owner *model.Character, p Params) model.StatusEffect {
		return NewDamageReduction(owner, p.Amount)
	},
	model.KindRegenerate: func(owner *model.Character, p Params) model.StatusEffect {
		return NewRegenerate(owner, p.Turns, p.Amount)
	},
	model.KindStun: func(owner *model.Character, _ Params) model.StatusEffect {
		return NewStun(owner)
	},
	model.KindStunBlade: func(owner *model.Character, _ Params) model.StatusEffect {
		return NewStunBlade(owner)
	},
	model.KindPoison: func(owner *model.Character, p Params) model.StatusEffect {
		return NewPoison(owner, p.Turns, p.Amount)
	},
	model.KindPoisonBlade: func(owner *model.Character, p Params) model.StatusEffect {
		return NewPoisonBlade(owner, p.Turns, p.Amount)
	},
}

// CreateEffect builds an effect of the given kind for owner.
// Returns an error if the kind is not registered.
func CreateEffect(kind model.EffectKind, owner *model.Character, p Params) (model.StatusEffect, error) {
	factory, ok := effectRegistry[kind]
	if !ok {
		return nil, fmt.Errorf("unknown effect kind: %s", kind)
	}
	return factory(owner, p), nil
}

// Kinds returns every registered kind in declaration order.
func Kinds() []model.EffectKind {
	kinds := make([]model.EffectKind, 0, len(effectRegistry))
	for k := range effectRegistry {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// ParseKind resolves a kind by name, case-insensitively ("stun_blade",
// "StunBlade" and "stunblade" all match).
func ParseKind(name string) (model.EffectKind, error) {
	norm := strings.ToLower(strings.ReplaceAll(name, "_", ""))
	for _, k := range Kinds() {
		if strings.ToLower(k.String()) == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown effect kind: %q", name)
}

// New builds an effect of a registered kind. Panics on an unknown kind:
// the kind set is closed, so that is a programming error.
func New(kind model.EffectKind, owner *model.Character, p Params) model.StatusEffect {
	e, err := CreateEffect(kind, owner, p)
	if err != nil {
		panic(err)
	}
	return e
}
