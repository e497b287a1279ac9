package duel

import (
	"context"
	"math/rand/v2"

	"github.com/udisondev/bladeduel/internal/model"
)

// Bot picks uniformly among the offered effects.
type Bot struct {
	rng *rand.Rand
}

// NewBot returns a Bot seeded with seed.
func NewBot(seed int64) *Bot {
	return &Bot{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^botStream))}
}

const botStream = 0x5bd1e995

func (b *Bot) Choose(_ context.Context, _ *model.Character, offers []model.StatusEffect) (model.StatusEffect, error) {
	if len(offers) == 0 {
		return nil, nil
	}
	return offers[b.rng.IntN(len(offers))], nil
}
