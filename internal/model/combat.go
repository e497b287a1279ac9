package model

import "log/slog"

// AttackResult describes what one attack did.
type AttackResult struct {
	Damage  int            // health removed from the defender
	Negated bool           // Invincible defender or stunned attacker
	Applied []StatusEffect // effects delivered to the defender, inactive until promoted
}

// Attack hits defender once.
//
// The attack does nothing when the defender is Invincible or the attacker
// is Stunned. Otherwise the defender loses max(damage-shield, 0) health and
// receives, inactive, every effect the attacker's active effects deliver on
// hit (Stun from a Stun Blade, Poison from a Poison Blade).
func (c *Character) Attack(defender *Character) AttackResult {
	if defender.HasActiveEffect(KindInvincible) || c.HasActiveEffect(KindStun) {
		slog.Debug("attack negated",
			"attacker", c.name,
			"defender", defender.name,
			"invincible", defender.HasActiveEffect(KindInvincible),
			"stunned", c.HasActiveEffect(KindStun))
		return AttackResult{Negated: true}
	}

	dealt := max(c.damage-defender.shield, 0)
	defender.health -= dealt
	res := AttackResult{Damage: dealt}

	for _, e := range c.effects {
		if !e.Active() {
			continue
		}
		given := e.NextAttackEffect(defender)
		if given == nil {
			continue
		}
		defender.AddEffect(given, false)
		res.Applied = append(res.Applied, given)
	}

	slog.Debug("attack",
		"attacker", c.name,
		"defender", defender.name,
		"damage", dealt,
		"health", defender.health,
		"applied", len(res.Applied))

	return res
}
