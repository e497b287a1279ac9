package duel

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/bladeduel/internal/game/random"
	"github.com/udisondev/bladeduel/internal/model"
)

// DefaultSimulationMaxTurns caps bot duels when no limit is configured, so
// fighters that cannot hurt each other still finish.
const DefaultSimulationMaxTurns = 1000

// PlayerSpec describes a starting character.
type PlayerSpec struct {
	Name   string
	Damage int
	Health int
	Shield int
}

// Character builds a fresh character with these stats.
func (p PlayerSpec) Character() *model.Character {
	return model.NewCharacter(p.Name, p.Damage, p.Health, p.Shield)
}

// SimulationConfig configures a batch of bot-vs-bot duels.
type SimulationConfig struct {
	Players  [2]PlayerSpec
	Seed     int64
	Choices  int
	Escalate bool
	MaxTurns int
	Offered  []model.EffectKind
	Matches  int
	Workers  int
}

// Stats aggregates a simulation batch.
type Stats struct {
	Matches      int
	Player1Wins  int
	Player2Wins  int
	Draws        int
	Timeouts     int
	AverageTurns float64
	LongestDuel  int
}

// matchSeed spreads per-match seeds so neighbouring matches do not share
// PCG state.
func matchSeed(base int64, i int) int64 {
	return base + int64(i)*0x9e3779b9
}

// Simulate runs cfg.Matches independent duels between bots on at most
// cfg.Workers goroutines. Every duel owns its characters, effect source and
// bot, so runs with the same seed produce the same stats.
func Simulate(ctx context.Context, cfg SimulationConfig) (Stats, error) {
	if cfg.Matches < 1 {
		return Stats{}, fmt.Errorf("simulate: matches must be positive, got %d", cfg.Matches)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = DefaultSimulationMaxTurns
	}

	outcomes := make([]Outcome, cfg.Matches)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range cfg.Matches {
		g.Go(func() error {
			seed := matchSeed(cfg.Seed, i)
			d := New(cfg.Players[0].Character(), cfg.Players[1].Character(),
				random.New(seed, cfg.Offered...),
				WithChoices(cfg.Choices),
				WithEscalation(cfg.Escalate),
				WithMaxTurns(maxTurns),
			)
			out, err := d.Run(gctx, NewBot(seed))
			if err != nil {
				return fmt.Errorf("match %d: %w", i, err)
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	stats := aggregate(outcomes)
	slog.Info("simulation finished",
		"matches", stats.Matches,
		"p1_wins", stats.Player1Wins,
		"p2_wins", stats.Player2Wins,
		"draws", stats.Draws,
		"timeouts", stats.Timeouts)
	return stats, nil
}

func aggregate(outcomes []Outcome) Stats {
	s := Stats{Matches: len(outcomes)}
	total := 0
	for _, o := range outcomes {
		switch o.Result {
		case ResultPlayer1Won:
			s.Player1Wins++
		case ResultPlayer2Won:
			s.Player2Wins++
		case ResultDraw:
			s.Draws++
		case ResultTimeout:
			s.Timeouts++
		}
		total += o.Turns
		s.LongestDuel = max(s.LongestDuel, o.Turns)
	}
	if s.Matches > 0 {
		s.AverageTurns = float64(total) / float64(s.Matches)
	}
	return s
}
