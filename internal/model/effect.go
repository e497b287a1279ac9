package model

import "fmt"

// EffectKind identifies one of the fixed status effect kinds.
// The set is closed: adding a kind means adding a variant in game/effect.
type EffectKind uint8

const (
	KindInvincible EffectKind = iota + 1
	KindDoubleDamage
	KindDamageReduction
	KindRegenerate
	KindStun
	KindStunBlade
	KindPoison
	KindPoisonBlade
)

var kindNames = [...]string{
	KindInvincible:      "Invincible",
	KindDoubleDamage:    "DoubleDamage",
	KindDamageReduction: "DamageReduction",
	KindRegenerate:      "Regenerate",
	KindStun:            "Stun",
	KindStunBlade:       "StunBlade",
	KindPoison:          "Poison",
	KindPoisonBlade:     "PoisonBlade",
}

// String returns the kind name ("DoubleDamage", "Stun", ...).
func (k EffectKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("EffectKind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k EffectKind) Valid() bool {
	return k >= KindInvincible && k <= KindPoisonBlade
}

// StatusEffect is a buff or debuff attached to a Character.
//
// Enter applies the effect to its owner and registers it in the owner's
// store as active. Exit reverses whatever Enter changed (where the kind is
// reversible) and counts down the remaining turns; the effect leaves the
// store when the counter reaches zero. Exit reports whether an error raised
// inside the activation scope should be suppressed.
type StatusEffect interface {
	Kind() EffectKind
	Owner() *Character
	Turns() int
	Active() bool
	SetActive(active bool)

	// Tick decrements the remaining turns and returns what is left.
	Tick() int

	Enter()
	Exit(cause error) (suppress bool)

	// NextAttackEffect returns a fresh effect owned by target that a
	// successful attack by the owner delivers, or nil.
	NextAttackEffect(target *Character) StatusEffect

	String() string
}

// SameEffect reports whether a and b denote the same effect slot: equal kind
// and the same owner (owners are identified by name). Turns and the active
// flag do not take part.
func SameEffect(a, b StatusEffect) bool {
	if a == nil || b == nil {
		panic("model: effect equality checked against a nil effect")
	}
	ao, bo := a.Owner(), b.Owner()
	if ao == nil || bo == nil {
		panic(fmt.Sprintf("model: effect equality checked on ownerless effect (%s, %s)", a.Kind(), b.Kind()))
	}
	return a.Kind() == b.Kind() && ao.name == bo.name
}

// DescribeEffect renders an effect as Kind(owner, turns), for logs.
func DescribeEffect(e StatusEffect) string {
	return fmt.Sprintf("%s(%s, %d)", e.Kind(), e.Owner().Name(), e.Turns())
}
