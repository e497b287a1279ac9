package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/bladeduel/internal/game/effect"
	"github.com/udisondev/bladeduel/internal/model"
)

func TestNew_Defaults(t *testing.T) {
	src := New(1)

	assert.Equal(t, DefaultOffered, src.Offered())
	assert.Equal(t, 3, src.Dummies())
}

func TestNew_DummiesRoundHalf(t *testing.T) {
	assert.Equal(t, 1, New(1, model.KindStun).Dummies())
	assert.Equal(t, 2, New(1, model.KindStun, model.KindPoison, model.KindInvincible).Dummies())
}

func TestChooseOne_Ranges(t *testing.T) {
	src := New(42)
	c := model.NewCharacter("Alice", 10, 100, 0)

	seen := map[model.EffectKind]bool{}
	nils := 0
	for range 5000 {
		e := src.ChooseOne(c)
		if e == nil {
			nils++
			continue
		}
		require.Same(t, c, e.Owner())
		assert.True(t, e.Active())
		seen[e.Kind()] = true

		switch v := e.(type) {
		case *effect.DamageReduction:
			assert.GreaterOrEqual(t, v.Amount(), 5)
			assert.LessOrEqual(t, v.Amount(), 15)
		case *effect.Regenerate:
			assert.GreaterOrEqual(t, v.Turns(), 2)
			assert.LessOrEqual(t, v.Turns(), 4)
			assert.GreaterOrEqual(t, v.AmountPerTurn(), 3)
			assert.LessOrEqual(t, v.AmountPerTurn(), 7)
		case *effect.PoisonBlade:
			assert.Equal(t, 1, v.Turns())
			assert.GreaterOrEqual(t, v.PoisonTurns(), 2)
			assert.LessOrEqual(t, v.PoisonTurns(), 4)
			assert.GreaterOrEqual(t, v.PoisonPerTurn(), 2)
			assert.LessOrEqual(t, v.PoisonPerTurn(), 4)
		default:
			assert.Equal(t, 1, e.Turns())
		}
	}

	assert.Len(t, seen, len(DefaultOffered), "every offered kind drawn")
	assert.False(t, seen[model.KindStun])
	assert.False(t, seen[model.KindPoison])
	// 3 of 9 slots are dummies.
	assert.InDelta(t, 5000.0/3, float64(nils), 250)
}

func TestChooseN(t *testing.T) {
	src := New(7)
	c := model.NewCharacter("Bob", 10, 100, 0)

	offers := src.ChooseN(c, 3)
	require.Len(t, offers, 3)
	for _, e := range offers {
		if e != nil {
			assert.Same(t, c, e.Owner())
		}
	}
	assert.Empty(t, src.ChooseN(c, 0))
}

func TestSameSeedSameDraws(t *testing.T) {
	c := model.NewCharacter("Alice", 10, 100, 0)
	a, b := New(99), New(99)

	for range 50 {
		x, y := a.ChooseOne(c), b.ChooseOne(c)
		if x == nil || y == nil {
			assert.Equal(t, x == nil, y == nil)
			continue
		}
		assert.Equal(t, x.String(), y.String())
	}
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
