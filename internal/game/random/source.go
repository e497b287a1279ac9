// Package random offers status effects to players: a uniform draw over the
// offered kinds plus a number of "no effect" slots, with kind-specific
// parameters drawn from fixed ranges.
package random

import (
	"math"
	"math/rand/v2"

	"github.com/udisondev/bladeduel/internal/game/effect"
	"github.com/udisondev/bladeduel/internal/model"
)

// DefaultOffered lists the kinds a player can pick directly.
// Stun and Poison only arrive through blade hits.
var DefaultOffered = []model.EffectKind{
	model.KindInvincible,
	model.KindDoubleDamage,
	model.KindDamageReduction,
	model.KindRegenerate,
	model.KindStunBlade,
	model.KindPoisonBlade,
}

// pcgStream is the fixed second PCG word; the seed alone picks the sequence.
const pcgStream = 0x9e3779b97f4a7c15

// span is an inclusive integer range.
type span struct{ lo, hi int }

func (s span) draw(r *rand.Rand) int {
	return s.lo + r.IntN(s.hi-s.lo+1)
}

// paramRanges holds the Turns/Amount ranges per kind. Kinds missing here
// take no parameters.
var paramRanges = map[model.EffectKind]struct{ turns, amount span }{
	model.KindDamageReduction: {amount: span{5, 15}},
	model.KindRegenerate:      {turns: span{2, 4}, amount: span{3, 7}},
	model.KindPoisonBlade:     {turns: span{2, 4}, amount: span{2, 4}},
	model.KindPoison:          {turns: span{2, 4}, amount: span{2, 4}},
}

// Source draws offered effects. Not safe for concurrent use; the simulation
// gives every duel its own Source.
type Source struct {
	rng     *rand.Rand
	offered []model.EffectKind
	dummies int
}

// New returns a Source seeded with seed. With no kinds it offers
// DefaultOffered. The dummy slot count is half the offered kinds, rounded.
func New(seed int64, kinds ...model.EffectKind) *Source {
	if len(kinds) == 0 {
		kinds = DefaultOffered
	}
	return &Source{
		rng:     rand.New(rand.NewPCG(uint64(seed), pcgStream)),
		offered: append([]model.EffectKind(nil), kinds...),
		dummies: int(math.Round(float64(len(kinds)) / 2)),
	}
}

// Offered returns the kinds this source can produce.
func (s *Source) Offered() []model.EffectKind {
	return append([]model.EffectKind(nil), s.offered...)
}

// Dummies returns the number of "no effect" slots in each draw.
func (s *Source) Dummies() int { return s.dummies }

// ChooseOne draws one effect owned by c, or nil for a dummy slot.
func (s *Source) ChooseOne(c *model.Character) model.StatusEffect {
	i := s.rng.IntN(len(s.offered) + s.dummies)
	if i >= len(s.offered) {
		return nil
	}
	kind := s.offered[i]

	var p effect.Params
	if r, ok := paramRanges[kind]; ok {
		if r.turns.hi > 0 {
			p.Turns = r.turns.draw(s.rng)
		}
		if r.amount.hi > 0 {
			p.Amount = r.amount.draw(s.rng)
		}
	}
	return effect.New(kind, c, p)
}

// ChooseN draws n effects independently; the result may hold nils and
// repeated kinds.
func (s *Source) ChooseN(c *model.Character, n int) []model.StatusEffect {
	out := make([]model.StatusEffect, n)
	for i := range out {
		out[i] = s.ChooseOne(c)
	}
	return out
}
