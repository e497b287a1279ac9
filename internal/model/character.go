package model

import "fmt"

// Character is one duel participant: its stats and the ordered store of
// status effects attached to it.
//
// Not safe for concurrent use. A duel runs on a single goroutine and every
// mutation (attacks, effect entry/exit, promotion) happens in turn order.
type Character struct {
	name string

	damage int
	health int
	shield int

	effects []StatusEffect
}

// NewCharacter creates a character with the given starting stats and no effects.
func NewCharacter(name string, damage, health, shield int) *Character {
	return &Character{
		name:   name,
		damage: damage,
		health: health,
		shield: shield,
	}
}

// Name returns the character name. Names identify effect owners.
func (c *Character) Name() string { return c.name }

// Damage returns the damage dealt per attack before shields.
func (c *Character) Damage() int { return c.damage }

// Health returns current health. It may go negative.
func (c *Character) Health() int { return c.health }

// Shield returns the flat amount subtracted from incoming damage.
func (c *Character) Shield() int { return c.shield }

// Alive reports whether health is above zero.
func (c *Character) Alive() bool { return c.health > 0 }

// UpdateStatsAfterTurn raises damage by one. Callers use it once per finished
// turn to make long fights more dangerous.
func (c *Character) UpdateStatsAfterTurn() {
	c.damage++
}

// String renders "name: D damage, H health (S shield)".
func (c *Character) String() string {
	return fmt.Sprintf("%s: %d damage, %d health (%d shield)", c.name, c.damage, c.health, c.shield)
}
