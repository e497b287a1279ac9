// Package console renders a duel on a terminal and reads each player's
// choice from the input stream.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/udisondev/bladeduel/internal/game/duel"
	"github.com/udisondev/bladeduel/internal/i18n"
	"github.com/udisondev/bladeduel/internal/model"
)

const separatorWidth = 100

// Console implements duel.Reporter and duel.Chooser over a reader/writer
// pair. Not safe for concurrent use.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	color bool
	err   error
}

// Option configures a Console.
type Option func(*Console)

// WithColor turns ANSI colors on or off. Colors are on by default.
func WithColor(on bool) Option {
	return func(c *Console) { c.color = on }
}

// New creates a console reading choices from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:    bufio.NewReader(in),
		out:   out,
		color: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	_ duel.Reporter = (*Console)(nil)
	_ duel.Chooser  = (*Console)(nil)
)

// Report renders one duel event. It returns the first write error seen.
func (c *Console) Report(ev duel.Event) error {
	p1, p2 := ev.Players[0], ev.Players[1]

	switch ev.Kind {
	case duel.EventDuelStarted:
		c.heading("Before the fight starts:")
		c.characters(p1, p2)
		c.separator()
	case duel.EventTurnStarted:
		c.printf("\nTurn %s:\n", c.paint(ansiBlue, strconv.Itoa(ev.Turn)))
	case duel.EventCarriedOver:
		c.heading("Status effects carried over:")
		c.effects(p1, p2)
	case duel.EventEffectsActive:
		c.heading("Active status effects this turn:")
		c.effects(p1, p2)
	case duel.EventBeforeCombat:
		c.heading("Before combat:")
		c.characters(p1, p2)
	case duel.EventAfterCombat:
		c.heading("After combat:")
		c.characters(p1, p2)
		c.separator()
	case duel.EventDuelFinished:
		c.outcome(p1, p2, ev.Outcome)
	}
	return c.flushErr()
}

func (c *Console) outcome(p1, p2 *model.Character, o *duel.Outcome) {
	if o == nil {
		return
	}
	turns := c.turns(o.Turns)
	switch o.Result {
	case duel.ResultPlayer1Won, duel.ResultPlayer2Won:
		c.printf("\n%s won after %s!\n", c.name(o.Winner), turns)
	case duel.ResultDraw:
		c.printf("\n%s and %s destroyed each other after %s!\n", c.name(p1), c.name(p2), turns)
	case duel.ResultTimeout:
		c.printf("\n%s and %s are both still standing after %s.\n", c.name(p1), c.name(p2), turns)
	case duel.ResultConceded:
		c.printf("\n%s has conceded!\n", c.name(o.Loser))
	}
}

// Character renders stats with damage, health and shield colored.
func (c *Console) Character(ch *model.Character) string {
	return fmt.Sprintf("%s: %s damage, %s health (%s shield)",
		c.name(ch),
		c.paint(ansiGreen, strconv.Itoa(ch.Damage())),
		c.paint(ansiRed, strconv.Itoa(ch.Health())),
		c.paint(ansiBlue, strconv.Itoa(ch.Shield())))
}

// name highlights a trailing player number ("Player 1").
func (c *Console) name(ch *model.Character) string {
	n := ch.Name()
	i := strings.LastIndexByte(n, ' ')
	if i < 0 {
		return n
	}
	if _, err := strconv.Atoi(n[i+1:]); err != nil {
		return n
	}
	return n[:i+1] + c.paint(ansiYellow, n[i+1:])
}

func (c *Console) turns(n int) string {
	s := i18n.Turns(n)
	num := strconv.Itoa(n)
	return c.paint(ansiBlue, num) + strings.TrimPrefix(s, num)
}

func (c *Console) heading(s string) {
	c.printf("\n%s\n", c.paint(ansiCyan, s))
}

func (c *Console) separator() {
	c.printf("\n%s\n", c.paint(ansiMagenta, strings.Repeat("-", separatorWidth)))
}

func (c *Console) characters(players ...*model.Character) {
	for _, p := range players {
		c.printf("%s\n", c.Character(p))
	}
}

func (c *Console) effects(players ...*model.Character) {
	none := true
	for _, p := range players {
		for _, e := range p.Effects() {
			none = false
			c.printf("%s: %s\n", c.name(p), e)
		}
	}
	if none {
		c.printf("None\n")
	}
}

// printf writes to out, remembering the first failure.
func (c *Console) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		c.err = fmt.Errorf("write console: %w", err)
	}
}

func (c *Console) flushErr() error {
	err := c.err
	c.err = nil
	return err
}
