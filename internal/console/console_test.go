package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/bladeduel/internal/game/duel"
	"github.com/udisondev/bladeduel/internal/game/effect"
	"github.com/udisondev/bladeduel/internal/model"
)

func plain(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, WithColor(false)), &out
}

func players() [2]*model.Character {
	return [2]*model.Character{
		model.NewCharacter("Player 1", 10, 100, 0),
		model.NewCharacter("Player 2", 10, 95, 3),
	}
}

func TestChoose_ValidSelection(t *testing.T) {
	c, out := plain("2\n")
	p := model.NewCharacter("Player 1", 10, 100, 0)
	offers := []model.StatusEffect{nil, effect.NewDamageReduction(p, 7), effect.NewInvincible(p)}

	got, err := c.Choose(context.Background(), p, offers)

	require.NoError(t, err)
	assert.Same(t, offers[1], got)
	assert.Equal(t, "\nPlayer 1, your choices are:\n\n"+
		"1: No status effect :(\n"+
		"2: Damage Reduction by 7\n"+
		"3: Invincible\n"+
		"\nEnter your choice now (or concede): ", out.String())
}

func TestChoose_RepromptsUntilValid(t *testing.T) {
	c, out := plain("0\nabc\n4\n  1 \n")
	p := model.NewCharacter("Alice", 10, 100, 0)
	offers := []model.StatusEffect{effect.NewStun(p), nil, nil}

	got, err := c.Choose(context.Background(), p, offers)

	require.NoError(t, err)
	assert.Same(t, offers[0], got)
	assert.Equal(t, 3, strings.Count(out.String(), "Not accepted. Try again: "))
}

func TestChoose_NoEffectPick(t *testing.T) {
	c, _ := plain("3\n")
	p := model.NewCharacter("Alice", 10, 100, 0)

	got, err := c.Choose(context.Background(), p, make([]model.StatusEffect, 3))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestChoose_Concede(t *testing.T) {
	for name, input := range map[string]string{
		"word":         "concede\n",
		"after typo":   "9\nconcede\n",
		"end of input": "",
		"eof on retry": "x\n",
	} {
		t.Run(name, func(t *testing.T) {
			c, _ := plain(input)
			p := model.NewCharacter("Alice", 10, 100, 0)

			_, err := c.Choose(context.Background(), p, make([]model.StatusEffect, 3))
			assert.ErrorIs(t, err, duel.ErrConceded)
		})
	}
}

func TestChoose_LastLineWithoutNewline(t *testing.T) {
	c, _ := plain("1")
	p := model.NewCharacter("Alice", 10, 100, 0)
	offers := []model.StatusEffect{effect.NewStun(p)}

	got, err := c.Choose(context.Background(), p, offers)
	require.NoError(t, err)
	assert.Same(t, offers[0], got)
}

func TestChoose_ContextCancelled(t *testing.T) {
	c, _ := plain("1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Choose(ctx, model.NewCharacter("Alice", 10, 100, 0), make([]model.StatusEffect, 1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReport_DuelStarted(t *testing.T) {
	c, out := plain("")

	require.NoError(t, c.Report(duel.Event{Kind: duel.EventDuelStarted, Players: players()}))

	assert.Equal(t, "\nBefore the fight starts:\n"+
		"Player 1: 10 damage, 100 health (0 shield)\n"+
		"Player 2: 10 damage, 95 health (3 shield)\n"+
		"\n"+strings.Repeat("-", 100)+"\n", out.String())
}

func TestReport_Effects(t *testing.T) {
	c, out := plain("")
	ps := players()

	require.NoError(t, c.Report(duel.Event{Kind: duel.EventCarriedOver, Players: ps}))
	assert.Equal(t, "\nStatus effects carried over:\nNone\n", out.String())

	out.Reset()
	ps[1].AddEffect(effect.NewRegenerate(ps[1], 2, 4), true)
	require.NoError(t, c.Report(duel.Event{Kind: duel.EventEffectsActive, Players: ps}))
	assert.Equal(t, "\nActive status effects this turn:\n"+
		"Player 2: Regenerate 4 health per turn for 2 turns\n", out.String())
}

func TestReport_TurnAndCombat(t *testing.T) {
	c, out := plain("")
	ps := players()

	require.NoError(t, c.Report(duel.Event{Kind: duel.EventTurnStarted, Turn: 4, Players: ps}))
	require.NoError(t, c.Report(duel.Event{Kind: duel.EventAttack, Players: ps}))
	require.NoError(t, c.Report(duel.Event{Kind: duel.EventAfterCombat, Players: ps}))

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "\nTurn 4:\n\nAfter combat:\n"), s)
	assert.True(t, strings.HasSuffix(s, strings.Repeat("-", 100)+"\n"))
}

func TestReport_Outcomes(t *testing.T) {
	ps := players()
	tests := []struct {
		name    string
		outcome duel.Outcome
		want    string
	}{
		{"win", duel.Outcome{Result: duel.ResultPlayer2Won, Winner: ps[1], Loser: ps[0], Turns: 7}, "\nPlayer 2 won after 7 turns!\n"},
		{"single turn", duel.Outcome{Result: duel.ResultPlayer1Won, Winner: ps[0], Loser: ps[1], Turns: 1}, "\nPlayer 1 won after 1 turn!\n"},
		{"draw", duel.Outcome{Result: duel.ResultDraw, Turns: 10}, "\nPlayer 1 and Player 2 destroyed each other after 10 turns!\n"},
		{"conceded", duel.Outcome{Result: duel.ResultConceded, Winner: ps[0], Loser: ps[1], Turns: 2}, "\nPlayer 2 has conceded!\n"},
		{"timeout", duel.Outcome{Result: duel.ResultTimeout, Turns: 50}, "\nPlayer 1 and Player 2 are both still standing after 50 turns.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := plain("")
			require.NoError(t, c.Report(duel.Event{Kind: duel.EventDuelFinished, Players: ps, Outcome: &tt.outcome}))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestColors(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)
	ch := model.NewCharacter("Player 1", 10, 100, 2)

	assert.Equal(t, "Player \033[33m1\033[0m: \033[32m10\033[0m damage, \033[31m100\033[0m health (\033[34m2\033[0m shield)",
		c.Character(ch))
	assert.Equal(t, "\033[34m3\033[0m turns", c.turns(3))
}

func TestName_OnlyTrailingNumberHighlighted(t *testing.T) {
	c := New(strings.NewReader(""), &bytes.Buffer{})

	assert.Equal(t, "Alice", c.name(model.NewCharacter("Alice", 1, 1, 0)))
	assert.Equal(t, "Sir Robin", c.name(model.NewCharacter("Sir Robin", 1, 1, 0)))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestReport_WriteError(t *testing.T) {
	c := New(strings.NewReader(""), failingWriter{})

	err := c.Report(duel.Event{Kind: duel.EventBeforeCombat, Players: players()})
	assert.ErrorContains(t, err, "write console")
}

func TestFullDuelTranscript(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader(strings.Repeat("1\n", 40))
	c := New(in, &out, WithColor(false))

	p1 := model.NewCharacter("Player 1", 10, 100, 0)
	p2 := model.NewCharacter("Player 2", 10, 100, 0)
	d := duel.New(p1, p2, emptyOffers{}, duel.WithReporter(c))

	o, err := d.Run(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, duel.ResultDraw, o.Result)

	s := out.String()
	assert.Equal(t, 10, strings.Count(s, "\nTurn "))
	assert.Contains(t, s, "Player 1 and Player 2 destroyed each other after 10 turns!")
}

type emptyOffers struct{}

func (emptyOffers) ChooseOne(*model.Character) model.StatusEffect { return nil }
func (emptyOffers) ChooseN(_ *model.Character, n int) []model.StatusEffect {
	return make([]model.StatusEffect, n)
}
