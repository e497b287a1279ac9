package model

import (
	"fmt"
	"log/slog"
	"slices"
)

// Effects returns a copy of the character's effects in store order.
func (c *Character) Effects() []StatusEffect {
	return slices.Clone(c.effects)
}

// EffectCount returns how many effects are stored, active or not.
func (c *Character) EffectCount() int {
	return len(c.effects)
}

// AddEffect stores e with the given active flag.
//
// Supersession rule: when an equal effect (same kind and owner) is already
// stored and its active flag matches the new flag, the stored one is
// removed first. With differing flags both entries stay, which is how an
// effect delivered during combat (inactive) waits next to the active one it
// will replace on promotion.
func (c *Character) AddEffect(e StatusEffect, active bool) {
	e.SetActive(active)

	if i := c.indexOfEqual(e); i >= 0 && c.effects[i].Active() == active {
		c.effects = slices.Delete(c.effects, i, i+1)
	}
	c.effects = append(c.effects, e)
}

// ExpireEffect counts one turn off e and drops it from the store when no
// turns remain.
func (c *Character) ExpireEffect(e StatusEffect) {
	if e.Tick() != 0 {
		return
	}
	i := slices.Index(c.effects, e)
	if i < 0 {
		panic(fmt.Sprintf("model: expiring %s which is not stored on %s", DescribeEffect(e), c.name))
	}
	c.effects = slices.Delete(c.effects, i, i+1)

	slog.Debug("effect expired", "kind", e.Kind(), "owner", c.name)
}

// PromoteInactiveEffects activates every effect that was added inactive.
// Active effects keep their order; promoted ones are re-added after them
// and supersede an active entry of the same kind.
func (c *Character) PromoteInactiveEffects() {
	var inactive []StatusEffect
	active := make([]StatusEffect, 0, len(c.effects))
	for _, e := range c.effects {
		if e.Active() {
			active = append(active, e)
		} else {
			inactive = append(inactive, e)
		}
	}

	c.effects = active
	for _, e := range inactive {
		if e.Owner() == nil || e.Owner().name != c.name {
			panic(fmt.Sprintf("model: %s stored on %s", DescribeEffect(e), c.name))
		}
		c.AddEffect(e, true)
	}
}

// HasEffect reports whether an effect of the kind is stored.
func (c *Character) HasEffect(kind EffectKind) bool {
	return c.indexOfKind(kind) >= 0
}

// HasActiveEffect reports whether the first stored effect of the kind is active.
func (c *Character) HasActiveEffect(kind EffectKind) bool {
	if !c.HasEffect(kind) {
		return false
	}
	return c.FindEffect(kind).Active()
}

// FindEffect returns the first stored effect of the kind.
// Panics if none is stored; check HasEffect first.
func (c *Character) FindEffect(kind EffectKind) StatusEffect {
	i := c.indexOfKind(kind)
	if i < 0 {
		panic(fmt.Sprintf("model: no %s effect stored on %s", kind, c.name))
	}
	return c.effects[i]
}

// RemoveEffect removes the first stored effect of the kind.
// Panics if none is stored; check HasEffect first.
func (c *Character) RemoveEffect(kind EffectKind) {
	i := c.indexOfKind(kind)
	if i < 0 {
		panic(fmt.Sprintf("model: no %s effect stored on %s", kind, c.name))
	}
	c.effects = slices.Delete(c.effects, i, i+1)
}

func (c *Character) indexOfKind(kind EffectKind) int {
	return slices.IndexFunc(c.effects, func(e StatusEffect) bool { return e.Kind() == kind })
}

func (c *Character) indexOfEqual(e StatusEffect) int {
	return slices.IndexFunc(c.effects, func(stored StatusEffect) bool { return SameEffect(stored, e) })
}
