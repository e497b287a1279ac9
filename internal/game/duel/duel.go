// Package duel runs the two-player turn loop: offer effects, let each
// player choose, activate the composed set around both attacks, then
// promote effects delivered during combat.
package duel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/udisondev/bladeduel/internal/game/effect"
	"github.com/udisondev/bladeduel/internal/model"
)

//go:generate go tool mockgen -destination=./mocks/duel_mock.go -package=mocks . Chooser,EffectSource,Reporter

// DefaultChoices is how many effects a player is offered per turn.
const DefaultChoices = 3

// EffectSource offers effects owned by a player. A nil entry means "no effect".
type EffectSource interface {
	ChooseOne(c *model.Character) model.StatusEffect
	ChooseN(c *model.Character, n int) []model.StatusEffect
}

// Chooser picks one of the offered effects for player. It returns
// ErrConceded when the player gives up.
type Chooser interface {
	Choose(ctx context.Context, player *model.Character, offers []model.StatusEffect) (model.StatusEffect, error)
}

// Reporter receives duel events. An error aborts the duel once the active
// effects have been unwound.
type Reporter interface {
	Report(ev Event) error
}

type nopReporter struct{}

func (nopReporter) Report(Event) error { return nil }

// Result represents the outcome of a duel.
type Result int

const (
	ResultContinue   Result = iota // Duel continues
	ResultPlayer1Won               // Only player 1 is alive
	ResultPlayer2Won               // Only player 2 is alive
	ResultDraw                     // Both fell in the same turn
	ResultConceded                 // A player gave up
	ResultTimeout                  // Turn limit reached with both alive
)

func (r Result) String() string {
	switch r {
	case ResultContinue:
		return "continue"
	case ResultPlayer1Won:
		return "player1_won"
	case ResultPlayer2Won:
		return "player2_won"
	case ResultDraw:
		return "draw"
	case ResultConceded:
		return "conceded"
	case ResultTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Outcome describes how a duel ended. Winner and Loser are nil for a draw
// or a timeout; on concede Loser is the conceding player.
type Outcome struct {
	Result  Result
	Winner  *model.Character
	Loser   *model.Character
	Turns   int
	MatchID uuid.UUID
}

// Option configures a Duel.
type Option func(*Duel)

// WithChoices sets how many effects are offered per turn (minimum 1).
func WithChoices(n int) Option {
	return func(d *Duel) {
		if n >= 1 {
			d.choices = n
		}
	}
}

// WithEscalation makes both characters gain one damage after every turn.
func WithEscalation(on bool) Option {
	return func(d *Duel) { d.escalate = on }
}

// WithMaxTurns ends the duel as a timeout after n turns. Zero means no limit.
func WithMaxTurns(n int) Option {
	return func(d *Duel) { d.maxTurns = max(n, 0) }
}

// WithReporter sets the event sink.
func WithReporter(r Reporter) Option {
	return func(d *Duel) {
		if r != nil {
			d.reporter = r
		}
	}
}

// WithMatchID overrides the generated match ID.
func WithMatchID(id uuid.UUID) Option {
	return func(d *Duel) { d.id = id }
}

// Duel is one match between two characters. Not safe for concurrent use.
type Duel struct {
	id       uuid.UUID
	players  [2]*model.Character
	src      EffectSource
	reporter Reporter
	choices  int
	escalate bool
	maxTurns int

	turn    int
	started bool
	log     *slog.Logger
}

// New creates a duel between p1 and p2 drawing offers from src.
func New(p1, p2 *model.Character, src EffectSource, opts ...Option) *Duel {
	d := &Duel{
		id:       uuid.New(),
		players:  [2]*model.Character{p1, p2},
		src:      src,
		reporter: nopReporter{},
		choices:  DefaultChoices,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = slog.With("match", d.id)
	return d
}

// ID returns the match ID.
func (d *Duel) ID() uuid.UUID { return d.id }

// Turn returns the number of the last turn started.
func (d *Duel) Turn() int { return d.turn }

// Players returns both characters, player 1 first.
func (d *Duel) Players() [2]*model.Character { return d.players }

// Finished reports whether at least one character is down.
func (d *Duel) Finished() bool {
	return !d.players[0].Alive() || !d.players[1].Alive()
}

// Run plays turns until a character falls, a player concedes or the turn
// limit is hit. The context is checked between turns.
func (d *Duel) Run(ctx context.Context, chooser Chooser) (Outcome, error) {
	if err := d.start(); err != nil {
		return Outcome{}, err
	}

	for !d.Finished() {
		if d.maxTurns > 0 && d.turn >= d.maxTurns {
			return d.finish(Outcome{Result: ResultTimeout})
		}
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}

		err := d.PlayTurn(ctx, chooser)
		var conceded *ConcededError
		if errors.As(err, &conceded) {
			return d.finish(Outcome{
				Result: ResultConceded,
				Winner: d.opponent(conceded.Player),
				Loser:  conceded.Player,
			})
		}
		if err != nil {
			return Outcome{}, err
		}
	}

	return d.finish(d.result())
}

// PlayTurn plays a single turn. On odd turns player 1 chooses first, on
// even turns player 2 does. A concession is returned as *ConcededError.
func (d *Duel) PlayTurn(ctx context.Context, chooser Chooser) error {
	if err := d.start(); err != nil {
		return err
	}
	d.turn++
	p1, p2 := d.players[0], d.players[1]

	if err := d.report(Event{Kind: EventTurnStarted}); err != nil {
		return err
	}
	if err := d.report(Event{Kind: EventCarriedOver}); err != nil {
		return err
	}

	order := [2]int{0, 1}
	if d.turn%2 == 0 {
		order = [2]int{1, 0}
	}
	var picks [2]model.StatusEffect
	for _, i := range order {
		pick, err := d.choose(ctx, chooser, d.players[i])
		if err != nil {
			return err
		}
		picks[i] = pick
	}

	set := effect.Compose(p1.Effects(), p2.Effects(), picks[:])
	err := set.Do(func() error {
		if err := d.report(Event{Kind: EventEffectsActive, Effects: set.Effects()}); err != nil {
			return err
		}
		if err := d.report(Event{Kind: EventBeforeCombat}); err != nil {
			return err
		}
		for _, pair := range [2][2]*model.Character{{p1, p2}, {p2, p1}} {
			res := pair[0].Attack(pair[1])
			if err := d.report(Event{Kind: EventAttack, Attacker: pair[0], Defender: pair[1], Attack: res}); err != nil {
				return err
			}
		}
		return d.report(Event{Kind: EventAfterCombat})
	})
	if err != nil {
		return fmt.Errorf("turn %d: %w", d.turn, err)
	}

	p1.PromoteInactiveEffects()
	p2.PromoteInactiveEffects()
	if d.escalate {
		p1.UpdateStatsAfterTurn()
		p2.UpdateStatsAfterTurn()
	}

	d.log.Debug("turn played",
		"turn", d.turn,
		"effects", set.Len(),
		"p1", p1.String(),
		"p2", p2.String())
	return nil
}

func (d *Duel) start() error {
	if d.started {
		return nil
	}
	d.started = true
	d.log.Debug("duel started", "p1", d.players[0].Name(), "p2", d.players[1].Name())
	return d.report(Event{Kind: EventDuelStarted})
}

func (d *Duel) choose(ctx context.Context, chooser Chooser, player *model.Character) (model.StatusEffect, error) {
	offers := d.src.ChooseN(player, d.choices)
	pick, err := chooser.Choose(ctx, player, offers)
	if errors.Is(err, ErrConceded) {
		return nil, &ConcededError{Player: player}
	}
	if err != nil {
		return nil, fmt.Errorf("choose effect for %s: %w", player.Name(), err)
	}
	if pick != nil && pick.Owner() != player {
		return nil, fmt.Errorf("choose effect for %s: picked %s owned by another character",
			player.Name(), pick.Kind())
	}
	return pick, nil
}

func (d *Duel) result() Outcome {
	p1, p2 := d.players[0], d.players[1]
	switch {
	case p1.Alive() && !p2.Alive():
		return Outcome{Result: ResultPlayer1Won, Winner: p1, Loser: p2}
	case p2.Alive() && !p1.Alive():
		return Outcome{Result: ResultPlayer2Won, Winner: p2, Loser: p1}
	case !p1.Alive() && !p2.Alive():
		return Outcome{Result: ResultDraw}
	default:
		return Outcome{Result: ResultContinue}
	}
}

func (d *Duel) finish(o Outcome) (Outcome, error) {
	o.Turns = d.turn
	o.MatchID = d.id

	d.log.Info("duel finished", "result", o.Result, "turns", o.Turns)
	if err := d.report(Event{Kind: EventDuelFinished, Outcome: &o}); err != nil {
		return o, err
	}
	return o, nil
}

func (d *Duel) opponent(c *model.Character) *model.Character {
	if c == d.players[0] {
		return d.players[1]
	}
	return d.players[0]
}

func (d *Duel) report(ev Event) error {
	ev.Turn = d.turn
	ev.Players = d.players
	if err := d.reporter.Report(ev); err != nil {
		return fmt.Errorf("report %s: %w", ev.Kind, err)
	}
	return nil
}
