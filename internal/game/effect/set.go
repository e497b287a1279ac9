package effect

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/udisondev/bladeduel/internal/model"
)

// Set is an ordered group of effects activated together.
//
// Enter runs every effect's Enter front to back; Exit runs Exit back to
// front over exactly the effects that were entered. Do wraps a function in
// that pair so exits run once whatever the function does.
type Set struct {
	effects  []model.StatusEffect
	acquired []model.StatusEffect
	entered  bool
}

// Merge appends next onto a copy of orig. An incoming effect equal to one
// already collected (same kind and owner) removes the earlier occurrence, so
// the newest instance wins and sits at the end. Nil entries are skipped.
func Merge(orig []model.StatusEffect, next ...model.StatusEffect) []model.StatusEffect {
	out := make([]model.StatusEffect, 0, len(orig)+len(next))
	for _, e := range orig {
		if e != nil {
			out = append(out, e)
		}
	}
	for _, e := range next {
		if e == nil {
			continue
		}
		if i := slices.IndexFunc(out, func(have model.StatusEffect) bool { return model.SameEffect(have, e) }); i >= 0 {
			out = slices.Delete(out, i, i+1)
		}
		out = append(out, e)
	}
	return out
}

// Compose merges groups left to right into one Set: each player's stored
// effects followed by the effects picked this turn.
func Compose(groups ...[]model.StatusEffect) *Set {
	var acc []model.StatusEffect
	for _, g := range groups {
		acc = Merge(acc, g...)
	}
	return &Set{effects: acc}
}

// Effects returns the composed effects in entry order.
func (s *Set) Effects() []model.StatusEffect {
	return slices.Clone(s.effects)
}

// Len returns the number of effects in the set.
func (s *Set) Len() int { return len(s.effects) }

// Entered reports whether the set is between Enter and Exit.
func (s *Set) Entered() bool { return s.entered }

// Enter enters every effect in order. Panics if the set is already entered.
func (s *Set) Enter() {
	if s.entered {
		panic("effect: set entered twice")
	}
	s.entered = true
	s.acquired = make([]model.StatusEffect, 0, len(s.effects))
	for _, e := range s.effects {
		e.Enter()
		s.acquired = append(s.acquired, e)
	}
	slog.Debug("effect set entered", "effects", len(s.acquired))
}

// Exit exits the entered effects in reverse order, each exactly once, and
// reports whether cause should be suppressed: only when the set is not
// empty and every effect asked for it. If an Exit panics the remaining
// effects are still exited and the first panic is re-raised afterwards.
func (s *Set) Exit(cause error) (suppress bool) {
	if !s.entered {
		panic("effect: set exited without entering")
	}
	acquired := s.acquired
	s.acquired = nil
	s.entered = false

	suppress = len(acquired) > 0
	var firstPanic any
	for i := len(acquired) - 1; i >= 0; i-- {
		func() {
			defer func() {
				if r := recover(); r != nil && firstPanic == nil {
					firstPanic = r
				}
			}()
			if !acquired[i].Exit(cause) {
				suppress = false
			}
		}()
	}
	if firstPanic != nil {
		panic(firstPanic)
	}

	slog.Debug("effect set exited", "effects", len(acquired), "suppress", suppress)
	return suppress
}

// Do enters the set, runs fn, and exits the set in a deferred block.
// fn's error is returned unless every effect suppressed it. A panic in fn
// is re-raised once all exits have run.
func (s *Set) Do(fn func() error) (err error) {
	if s.entered {
		panic("effect: set entered twice")
	}

	finished := false
	defer func() {
		if !s.entered {
			return
		}
		if finished {
			if s.Exit(err) {
				err = nil
			}
			return
		}
		r := recover()
		s.Exit(fmt.Errorf("effect scope panicked: %v", r))
		panic(r)
	}()

	s.Enter()
	err = fn()
	finished = true
	return err
}
