// duel runs a two-player status effect duel in the terminal.
//
// Usage:
//
//	go run ./cmd/duel
//	go run ./cmd/duel -simulate 10000
//	BLADEDUEL_CONFIG=my.yaml BLADEDUEL_SEED=42 go run ./cmd/duel
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/bladeduel/internal/config"
	"github.com/udisondev/bladeduel/internal/console"
	"github.com/udisondev/bladeduel/internal/game/duel"
	"github.com/udisondev/bladeduel/internal/game/random"
)

const DuelConfigPath = "config/duel.yaml"

func main() {
	simulate := flag.Int("simulate", 0, "run N bot-vs-bot duels and print stats instead of playing")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, *simulate); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, simulate int) error {
	cfgPath := DuelConfigPath
	if p := os.Getenv("BLADEDUEL_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadDuel(cfgPath)
	if err != nil {
		return fmt.Errorf("loading duel config: %w", err)
	}

	logOut := io.Writer(os.Stderr)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			return fmt.Errorf("seeding: %w", err)
		}
	}
	slog.Info("bladeduel starting", "log_level", cfg.LogLevel, "seed", seed, "config", cfgPath)

	if simulate > 0 {
		return runSimulation(ctx, cfg, seed, simulate)
	}
	return runInteractive(ctx, cfg, seed)
}

func runInteractive(ctx context.Context, cfg config.Duel, seed int64) error {
	offered, err := cfg.Offered()
	if err != nil {
		return err
	}
	specs := cfg.PlayerSpecs()
	con := console.New(os.Stdin, os.Stdout, console.WithColor(cfg.Color))
	d := duel.New(specs[0].Character(), specs[1].Character(), random.New(seed, offered...),
		duel.WithChoices(cfg.ChoicesPerTurn),
		duel.WithEscalation(cfg.EscalateDamage),
		duel.WithMaxTurns(cfg.MaxTurns),
		duel.WithReporter(con),
	)

	type result struct {
		outcome duel.Outcome
		err     error
	}
	done := make(chan result, 1)
	go func() {
		o, err := d.Run(ctx, con)
		done <- result{o, err}
	}()

	// Reading stdin cannot be interrupted, so a signal ends the session here.
	select {
	case <-ctx.Done():
		return nil
	case r := <-done:
		if r.err != nil {
			return fmt.Errorf("duel %s: %w", d.ID(), r.err)
		}
		slog.Debug("duel outcome", "result", r.outcome.Result, "turns", r.outcome.Turns)
		return nil
	}
}

func runSimulation(ctx context.Context, cfg config.Duel, seed int64, matches int) error {
	simCfg, err := cfg.SimulationConfig(seed, matches)
	if err != nil {
		return err
	}
	stats, err := duel.Simulate(ctx, simCfg)
	if err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	fmt.Printf("matches:        %d\n", stats.Matches)
	fmt.Printf("%-15s %d\n", simCfg.Players[0].Name+" wins:", stats.Player1Wins)
	fmt.Printf("%-15s %d\n", simCfg.Players[1].Name+" wins:", stats.Player2Wins)
	fmt.Printf("draws:          %d\n", stats.Draws)
	fmt.Printf("timeouts:       %d\n", stats.Timeouts)
	fmt.Printf("average turns:  %.2f\n", stats.AverageTurns)
	fmt.Printf("longest duel:   %d\n", stats.LongestDuel)
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
