package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/udisondev/bladeduel/internal/game/duel"
	"github.com/udisondev/bladeduel/internal/model"
)

const concedeWord = "concede"

// Choose lists the offers numbered from 1 and reads a selection, asking
// again until the input is a valid number or "concede". Conceding and end
// of input both return duel.ErrConceded.
func (c *Console) Choose(ctx context.Context, player *model.Character, offers []model.StatusEffect) (model.StatusEffect, error) {
	c.printf("\n%s, your choices are:\n\n", c.name(player))
	for i, e := range offers {
		label := c.paint(ansiBlue, strconv.Itoa(i+1))
		if e == nil {
			c.printf("%s: No status effect %s\n", label, c.paint(ansiBlue, ":("))
			continue
		}
		c.printf("%s: %s\n", label, e)
	}
	c.printf("\nEnter your choice now (or %s): %s", c.paint(ansiRed, concedeWord), c.raw(ansiMagenta))

	for {
		if err := c.flushErr(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, err := c.readLine()
		c.printf("%s", c.raw(ansiNormal))
		if errors.Is(err, io.EOF) {
			return nil, duel.ErrConceded
		}
		if err != nil {
			return nil, err
		}

		if line == concedeWord {
			return nil, duel.ErrConceded
		}
		if n, ok := parseChoice(line, len(offers)); ok {
			return offers[n-1], c.flushErr()
		}
		c.printf("Not accepted. Try again: %s", c.raw(ansiMagenta))
	}
}

// readLine returns the next trimmed line. A final line without a newline
// is returned before io.EOF.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("read choice: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func parseChoice(s string, n int) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > n {
		return 0, false
	}
	return v, true
}
