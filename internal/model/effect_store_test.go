package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEffect is a minimal StatusEffect for store tests.
type testEffect struct {
	kind   EffectKind
	owner  *Character
	turns  int
	active bool
	give   func(target *Character) StatusEffect
}

func newTestEffect(kind EffectKind, owner *Character, turns int) *testEffect {
	return &testEffect{kind: kind, owner: owner, turns: turns, active: true}
}

func (e *testEffect) Kind() EffectKind      { return e.kind }
func (e *testEffect) Owner() *Character     { return e.owner }
func (e *testEffect) Turns() int            { return e.turns }
func (e *testEffect) Active() bool          { return e.active }
func (e *testEffect) SetActive(active bool) { e.active = active }
func (e *testEffect) Tick() int             { e.turns--; return e.turns }
func (e *testEffect) Enter()                { e.owner.AddEffect(e, true) }
func (e *testEffect) Exit(error) bool       { e.owner.ExpireEffect(e); return false }
func (e *testEffect) String() string        { return e.kind.String() }
func (e *testEffect) NextAttackEffect(target *Character) StatusEffect {
	if e.give == nil {
		return nil
	}
	return e.give(target)
}

func TestSameEffect(t *testing.T) {
	alice := NewCharacter("Alice", 10, 100, 0)
	bob := NewCharacter("Bob", 10, 100, 0)

	a := newTestEffect(KindStun, alice, 1)
	b := newTestEffect(KindStun, alice, 5)
	b.active = false

	assert.True(t, SameEffect(a, b), "turns and active flag are not part of equality")
	assert.False(t, SameEffect(a, newTestEffect(KindPoison, alice, 1)))
	assert.False(t, SameEffect(a, newTestEffect(KindStun, bob, 1)))

	// Owners are identified by name, not by pointer.
	aliceTwin := NewCharacter("Alice", 1, 1, 1)
	assert.True(t, SameEffect(a, newTestEffect(KindStun, aliceTwin, 1)))
}

func TestSameEffect_PanicsOnNil(t *testing.T) {
	alice := NewCharacter("Alice", 10, 100, 0)
	assert.Panics(t, func() { SameEffect(newTestEffect(KindStun, alice, 1), nil) })
	assert.Panics(t, func() { SameEffect(newTestEffect(KindStun, nil, 1), newTestEffect(KindStun, alice, 1)) })
}

func TestAddEffect_SameFlagReplaces(t *testing.T) {
	c := NewCharacter("Alice", 10, 100, 0)
	old := newTestEffect(KindRegenerate, c, 3)
	c.AddEffect(old, true)
	c.AddEffect(newTestEffect(KindInvincible, c, 1), true)

	fresh := newTestEffect(KindRegenerate, c, 2)
	c.AddEffect(fresh, true)

	effects := c.Effects()
	require.Len(t, effects, 2)
	assert.Equal(t, KindInvincible, effects[0].Kind())
	assert.Same(t, fresh, effects[1], "newest instance moves to the end")
}

func TestAddEffect_DifferentFlagStacks(t *testing.T) {
	c := NewCharacter("Alice", 10, 100, 0)
	activeStun := newTestEffect(KindStun, c, 1)
	c.AddEffect(activeStun, true)

	pending := newTestEffect(KindStun, c, 1)
	c.AddEffect(pending, false)

	effects := c.Effects()
	require.Len(t, effects, 2)
	assert.True(t, effects[0].Active())
	assert.False(t, effects[1].Active())
}

func TestAddEffect_ReaddingSameInstance(t *testing.T) {
	c := NewCharacter("Alice", 10, 100, 0)
	e := newTestEffect(KindStun, c, 1)
	other := newTestEffect(KindInvincible, c, 1)
	c.AddEffect(e, true)
	c.AddEffect(other, true)

	c.AddEffect(e, true)

	effects := c.Effects()
	require.Len(t, effects, 2)
	assert.Same(t, other, effects[0])
	assert.Same(t, e, effects[1])
}

func TestExpireEffect(t *testing.T) {
	c := NewCharacter("Alice", 10, 100, 0)
	e := newTestEffect(KindPoison, c, 2)
	c.AddEffect(e, true)

	c.ExpireEffect(e)
	assert.Equal(t, 1, e.Turns())
	assert.True(t, c.HasEffect(KindPoison), "still one turn left")

	c.ExpireEffect(e)
	assert.Equal(t, 0, e.Turns())
	assert.False(t, c.HasEffect(KindPoison))
}

func TestExpireEffect_RemovesTheExpiringInstance(t *testing.T) {
	c := NewCharacter("Alice", 10, 100, 0)
	current := newTestEffect(KindStun, c, 1)
	c.AddEffect(current, true)
	pending := newTestEffect(KindStun, c, 1)
	c.AddEffect(pending, false)

	c.ExpireEffect(current)

	effects := c.Effects()
	require.Len(t, effects, 1)
	assert.Same(t, pending, effects[0])
}

func TestExpireEffect_PanicsWhenNotStored(t *testing.T) {
	c := NewCharacter("Alice", 10, 100, 0)
	e := newTestEffect(KindStun, c, 1)
	assert.Panics(t, func() { c.ExpireEffect(e) })
}

func TestPromoteInactiveEffects(t *testing.T) {
	c := NewCharacter("Alice", 10, 100, 0)
	oldPoison := newTestEffect(KindPoison, c, 1)
	c.AddEffect(oldPoison, true)
	invincible := newTestEffect(KindInvincible, c, 1)
	c.AddEffect(invincible, true)
	newPoison := newTestEffect(KindPoison, c, 4)
	c.AddEffect(newPoison, false)
	stun := newTestEffect(KindStun, c, 1)
	c.AddEffect(stun, false)

	c.PromoteInactiveEffects()

	effects := c.Effects()
	require.Len(t, effects, 3)
	assert.Same(t, invincible, effects[0])
	assert.Same(t, newPoison, effects[1], "promoted poison supersedes the active one")
	assert.Same(t, stun, effects[2])
	for _, e := range effects {
		assert.True(t, e.Active())
	}
}

func TestPromoteInactiveEffects_NoInactive(t *testing.T) {
	c := NewCharacter("Alice", 10, 100, 0)
	a := newTestEffect(KindStun, c, 1)
	b := newTestEffect(KindInvincible, c, 1)
	c.AddEffect(a, true)
	c.AddEffect(b, true)

	c.PromoteInactiveEffects()

	assert.Equal(t, []StatusEffect{a, b}, c.Effects())
}

func TestFindAndRemoveEffect(t *testing.T) {
	c := NewCharacter("Alice", 10, 100, 0)
	e := newTestEffect(KindDamageReduction, c, 1)
	c.AddEffect(e, true)

	require.True(t, c.HasEffect(KindDamageReduction))
	assert.Same(t, e, c.FindEffect(KindDamageReduction))

	c.RemoveEffect(KindDamageReduction)
	assert.False(t, c.HasEffect(KindDamageReduction))
	assert.Zero(t, c.EffectCount())
}

func TestFindEffect_PanicsOnMissingKind(t *testing.T) {
	c := NewCharacter("Alice", 10, 100, 0)
	assert.Panics(t, func() { c.FindEffect(KindStun) })
	assert.Panics(t, func() { c.RemoveEffect(KindStun) })
}

func TestHasActiveEffect(t *testing.T) {
	c := NewCharacter("Alice", 10, 100, 0)
	assert.False(t, c.HasActiveEffect(KindStun))

	c.AddEffect(newTestEffect(KindStun, c, 1), false)
	assert.True(t, c.HasEffect(KindStun))
	assert.False(t, c.HasActiveEffect(KindStun))

	c.PromoteInactiveEffects()
	assert.True(t, c.HasActiveEffect(KindStun))
}

func TestEffects_ReturnsCopy(t *testing.T) {
	c := NewCharacter("Alice", 10, 100, 0)
	c.AddEffect(newTestEffect(KindStun, c, 1), true)

	effects := c.Effects()
	effects[0] = nil

	assert.NotNil(t, c.Effects()[0])
}
