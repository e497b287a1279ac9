// Package effect implements the status effect kinds and the composition
// engine that activates a group of effects as one scope.
package effect

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/bladeduel/internal/model"
)

// base carries the state every kind shares: kind, owner, remaining turns,
// the active flag and whether the effect is currently entered.
// Variants embed it and add their own Enter/Exit/String.
type base struct {
	kind    model.EffectKind
	owner   *model.Character
	turns   int
	active  bool
	entered bool
}

// newBase builds shared state. Effects start active; turns below one
// default to a single turn.
func newBase(kind model.EffectKind, owner *model.Character, turns int) base {
	if turns < 1 {
		turns = 1
	}
	return base{kind: kind, owner: owner, turns: turns, active: true}
}

func (b *base) Kind() model.EffectKind  { return b.kind }
func (b *base) Owner() *model.Character { return b.owner }
func (b *base) Turns() int              { return b.turns }
func (b *base) Active() bool            { return b.active }
func (b *base) SetActive(active bool)   { b.active = active }
func (b *base) Tick() int               { b.turns--; return b.turns }
func (b *base) Entered() bool           { return b.entered }

// NextAttackEffect delivers nothing by default.
func (b *base) NextAttackEffect(*model.Character) model.StatusEffect { return nil }

// enter registers self as active on the owner. Must run before any stat change.
func (b *base) enter(self model.StatusEffect) {
	if b.entered {
		panic(fmt.Sprintf("effect: %s entered twice", model.DescribeEffect(self)))
	}
	b.entered = true
	b.owner.AddEffect(self, true)
}

// exit counts a turn off self and drops it from the owner's store on expiry.
func (b *base) exit(self model.StatusEffect) {
	if !b.entered {
		panic(fmt.Sprintf("effect: %s exited without entering", model.DescribeEffect(self)))
	}
	b.entered = false
	b.owner.ExpireEffect(self)
}

func (b *base) logEnter(attrs ...any) {
	slog.Debug("effect entered", append([]any{"kind", b.kind, "owner", b.owner.Name(), "turns", b.turns}, attrs...)...)
}

func (b *base) logExit(attrs ...any) {
	slog.Debug("effect exited", append([]any{"kind", b.kind, "owner", b.owner.Name(), "turns", b.turns}, attrs...)...)
}
