package model

import "fmt"

// Stat names a mutable character stat.
type Stat uint8

const (
	StatDamage Stat = iota + 1
	StatHealth
	StatShield
)

func (s Stat) String() string {
	switch s {
	case StatDamage:
		return "damage"
	case StatHealth:
		return "health"
	case StatShield:
		return "shield"
	}
	return fmt.Sprintf("Stat(%d)", uint8(s))
}

// StatModType defines how a stat modifier is applied.
type StatModType int8

const (
	StatModAdd StatModType = iota // Additive (e.g. +8 shield)
	StatModMul                    // Multiplicative (e.g. x2 damage)
)

// StatModifier is a single stat change made by an effect.
// Revert undoes Apply: subtraction for ADD, floor division for MUL.
type StatModifier struct {
	Stat  Stat
	Type  StatModType
	Value int
}

// Apply changes the stat on c.
func (m StatModifier) Apply(c *Character) {
	v := c.stat(m.Stat)
	switch m.Type {
	case StatModAdd:
		v += m.Value
	case StatModMul:
		v *= m.Value
	}
	c.setStat(m.Stat, v)
}

// Revert undoes Apply on c.
func (m StatModifier) Revert(c *Character) {
	v := c.stat(m.Stat)
	switch m.Type {
	case StatModAdd:
		v -= m.Value
	case StatModMul:
		if m.Value == 0 {
			panic(fmt.Sprintf("model: reverting x0 modifier on %s", m.Stat))
		}
		v = floorDiv(v, m.Value)
	}
	c.setStat(m.Stat, v)
}

func (c *Character) stat(s Stat) int {
	switch s {
	case StatDamage:
		return c.damage
	case StatHealth:
		return c.health
	case StatShield:
		return c.shield
	}
	panic(fmt.Sprintf("model: unknown stat %d", uint8(s)))
}

func (c *Character) setStat(s Stat, v int) {
	switch s {
	case StatDamage:
		c.damage = v
	case StatHealth:
		c.health = v
	case StatShield:
		c.shield = v
	default:
		panic(fmt.Sprintf("model: unknown stat %d", uint8(s)))
	}
}

// floorDiv rounds toward negative infinity, unlike Go's truncating division.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
