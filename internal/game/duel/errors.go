package duel

import (
	"errors"
	"fmt"

	"github.com/udisondev/bladeduel/internal/model"
)

// ErrConceded is returned by a Chooser when the player gives up.
var ErrConceded = errors.New("player conceded")

// ConcededError names the player who conceded.
type ConcededError struct {
	Player *model.Character
}

func (e *ConcededError) Error() string {
	return fmt.Sprintf("%s conceded", e.Player.Name())
}

func (e *ConcededError) Unwrap() error { return ErrConceded }
