package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/bladeduel/internal/game/duel"
	"github.com/udisondev/bladeduel/internal/game/effect"
	"github.com/udisondev/bladeduel/internal/model"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Duel holds all configuration for a duel session.
// Values come from defaults, then the YAML file, then BLADEDUEL_* env vars.
type Duel struct {
	// Logging
	LogLevel string `yaml:"log_level" env:"BLADEDUEL_LOG_LEVEL"`
	LogFile  string `yaml:"log_file"  env:"BLADEDUEL_LOG_FILE"` // empty = stderr

	// Game rules
	Seed           int64    `yaml:"seed"             env:"BLADEDUEL_SEED"` // 0 = random
	ChoicesPerTurn int      `yaml:"choices_per_turn" env:"BLADEDUEL_CHOICES_PER_TURN"`
	EscalateDamage bool     `yaml:"escalate_damage"  env:"BLADEDUEL_ESCALATE_DAMAGE"`
	MaxTurns       int      `yaml:"max_turns"        env:"BLADEDUEL_MAX_TURNS"` // 0 = unlimited
	OfferedEffects []string `yaml:"offered_effects"  env:"BLADEDUEL_OFFERED_EFFECTS" envSeparator:","`

	// Presentation
	Color   bool `yaml:"color" env:"BLADEDUEL_COLOR"`
	NoColor bool `yaml:"-"     env:"NO_COLOR"`

	Players    []Player   `yaml:"players"`
	Simulation Simulation `yaml:"simulation"`
}

// Player holds a character's starting stats.
type Player struct {
	Name   string `yaml:"name"`
	Damage int    `yaml:"damage"`
	Health int    `yaml:"health"`
	Shield int    `yaml:"shield"`
}

// Simulation configures the headless bot batch.
type Simulation struct {
	Matches int `yaml:"matches" env:"BLADEDUEL_SIM_MATCHES"`
	Workers int `yaml:"workers" env:"BLADEDUEL_SIM_WORKERS"` // 0 = GOMAXPROCS
}

// DefaultDuel returns Duel config with sensible defaults.
func DefaultDuel() Duel {
	return Duel{
		LogLevel:       "info",
		ChoicesPerTurn: duel.DefaultChoices,
		Color:          true,
		Players: []Player{
			{Name: "Player 1", Damage: 10, Health: 100},
			{Name: "Player 2", Damage: 10, Health: 100},
		},
		Simulation: Simulation{
			Matches: 1000,
		},
	}
}

// LoadDuel loads config from a YAML file and applies env overrides.
// If the file doesn't exist, defaults are used.
func LoadDuel(path string) (Duel, error) {
	cfg := DefaultDuel()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.NoColor {
		cfg.Color = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the rules a duel needs to start.
func (c Duel) Validate() error {
	if len(c.Players) != 2 {
		return fmt.Errorf("%w: need exactly 2 players, got %d", ErrInvalid, len(c.Players))
	}
	if strings.TrimSpace(c.Players[0].Name) == "" || strings.TrimSpace(c.Players[1].Name) == "" {
		return fmt.Errorf("%w: player names must not be empty", ErrInvalid)
	}
	if c.Players[0].Name == c.Players[1].Name {
		return fmt.Errorf("%w: duplicate player name %q", ErrInvalid, c.Players[0].Name)
	}
	for _, p := range c.Players {
		switch {
		case p.Health <= 0:
			return fmt.Errorf("%w: %s: health must be positive", ErrInvalid, p.Name)
		case p.Damage < 0:
			return fmt.Errorf("%w: %s: damage must not be negative", ErrInvalid, p.Name)
		case p.Shield < 0:
			return fmt.Errorf("%w: %s: shield must not be negative", ErrInvalid, p.Name)
		}
	}
	if c.ChoicesPerTurn < 1 {
		return fmt.Errorf("%w: choices_per_turn must be at least 1", ErrInvalid)
	}
	if c.MaxTurns < 0 {
		return fmt.Errorf("%w: max_turns must not be negative", ErrInvalid)
	}
	if c.Simulation.Matches < 0 || c.Simulation.Workers < 0 {
		return fmt.Errorf("%w: simulation matches and workers must not be negative", ErrInvalid)
	}
	if _, err := c.Offered(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Offered parses OfferedEffects. Nil means the default offer set.
func (c Duel) Offered() ([]model.EffectKind, error) {
	if len(c.OfferedEffects) == 0 {
		return nil, nil
	}
	kinds := make([]model.EffectKind, 0, len(c.OfferedEffects))
	for _, name := range c.OfferedEffects {
		k, err := effect.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("offered_effects: %w", err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// PlayerSpecs returns both players as duel specs.
func (c Duel) PlayerSpecs() [2]duel.PlayerSpec {
	var specs [2]duel.PlayerSpec
	for i := range specs {
		p := c.Players[i]
		specs[i] = duel.PlayerSpec{Name: p.Name, Damage: p.Damage, Health: p.Health, Shield: p.Shield}
	}
	return specs
}

// SimulationConfig assembles a bot batch from this config and seed.
func (c Duel) SimulationConfig(seed int64, matches int) (duel.SimulationConfig, error) {
	offered, err := c.Offered()
	if err != nil {
		return duel.SimulationConfig{}, err
	}
	if matches <= 0 {
		matches = c.Simulation.Matches
	}
	return duel.SimulationConfig{
		Players:  c.PlayerSpecs(),
		Seed:     seed,
		Choices:  c.ChoicesPerTurn,
		Escalate: c.EscalateDamage,
		MaxTurns: c.MaxTurns,
		Offered:  offered,
		Matches:  matches,
		Workers:  c.Simulation.Workers,
	}, nil
}
