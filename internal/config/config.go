// Package config provides simulation configuration loading and
// validation for the randwalk toolkit. Configs are YAML by default;
// the legacy JSON shape is accepted as well.
package config

import (
	"fmt"

	"github.com/vovakirdan/randwalk/internal/walk"
)

// Config is the full simulation configuration as read from a file.
// Fields left empty mean "feature disabled"; that resolution happens
// once in ToParams, never per step.
type Config struct {
	WalkerType     int  `yaml:"walker_type" json:"walker_type"`
	NumSimulations int  `yaml:"num_simulations" json:"num_simulations"`
	NumSteps       int  `yaml:"num_steps" json:"num_steps"`
	SaveResults    Flag `yaml:"save_results" json:"save_results"`
	PlotStatistics Flag `yaml:"plot_statistics" json:"plot_statistics"`

	Obstacles RectList `yaml:"obstacles" json:"obstacles"`
	Gates     GateList `yaml:"gates" json:"gates"`

	// Movement tuning for the non-biased walkers.
	Diagonals   bool `yaml:"diagonals" json:"diagonals"`
	MinStep     int  `yaml:"min_step" json:"min_step"`
	MaxStep     int  `yaml:"max_step" json:"max_step"`
	LatticeSize int  `yaml:"lattice_size" json:"lattice_size"`

	// Biased walker tuning. Direction accepts the legacy
	// "beginning of axis" spelling as an alias for "origin".
	BiasedWalkerDirection  string  `yaml:"biased_walker_direction" json:"biased_walker_direction"`
	BiasedWalkerIncreasing Flag    `yaml:"biased_walker_increasing" json:"biased_walker_increasing"`
	BiasPercent            int     `yaml:"bias_percent" json:"bias_percent"`
	BiasRamp               float64 `yaml:"bias_ramp" json:"bias_ramp"`

	RestartStep        IntList `yaml:"restart_step" json:"restart_step"`
	RestartProbability float64 `yaml:"restart_probability" json:"restart_probability"`

	ExitRadius float64 `yaml:"exit_radius" json:"exit_radius"`
}

// Default returns the built-in configuration: a uniform walker,
// 100 simulations of 500 steps, exit radius 10, no field features.
func Default() Config {
	return Config{
		WalkerType:         int(walk.WalkerUniform),
		NumSimulations:     100,
		NumSteps:           500,
		MinStep:            1,
		MaxStep:            3,
		LatticeSize:        1,
		BiasPercent:        50,
		BiasRamp:           1,
		RestartProbability: 0.5,
		ExitRadius:         10,
	}
}

// applyDefaults restores the loader's absent-field sentinels. Every
// other field keeps exactly what the file set: Parse seeds the struct
// from Default(), so absent fields already hold their defaults and an
// explicit 0 (say exit_radius: 0 to disable the exit check) survives.
func (c *Config) applyDefaults() {
	d := Default()
	if c.NumSimulations == -1 {
		c.NumSimulations = d.NumSimulations
	}
	if c.NumSteps == -1 {
		c.NumSteps = d.NumSteps
	}
}

// Validate checks batch-level fields. Run-level parameters get a
// second, deeper validation inside the walk package.
func (c Config) Validate() error {
	if c.NumSimulations < 1 || c.NumSimulations > walk.MaxNumSimulations {
		return fmt.Errorf("config: num_simulations must be in 1..%d, got %d",
			walk.MaxNumSimulations, c.NumSimulations)
	}
	if c.NumSteps < 0 || c.NumSteps > walk.MaxNumSteps {
		return fmt.Errorf("config: num_steps must be in 0..%d, got %d",
			walk.MaxNumSteps, c.NumSteps)
	}
	if _, err := c.ToParams(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ToParams converts the file representation into validated run
// parameters for the engine.
func (c Config) ToParams() (walk.Params, error) {
	p := walk.Params{
		WalkerType:         walk.WalkerType(c.WalkerType),
		NumSteps:           c.NumSteps,
		Diagonals:          c.Diagonals,
		MinStep:            c.MinStep,
		MaxStep:            c.MaxStep,
		LatticeSize:        c.LatticeSize,
		BiasDirection:      biasDirection(c.BiasedWalkerDirection),
		BiasPercent:        c.BiasPercent,
		BiasIncreasing:     bool(c.BiasedWalkerIncreasing),
		BiasRamp:           c.BiasRamp,
		RestartSteps:       c.RestartStep,
		RestartProbability: c.RestartProbability,
		ExitRadius:         c.ExitRadius,
	}

	for _, r := range c.Obstacles {
		p.Obstacles = append(p.Obstacles, walk.NewRect(r[0], r[1], r[2], r[3]))
	}
	for _, g := range c.Gates {
		p.Gates = append(p.Gates, walk.Gate{
			Area:   walk.NewRect(g.Rect[0], g.Rect[1], g.Rect[2], g.Rect[3]),
			Target: walk.P(g.Target[0], g.Target[1]),
		})
	}

	if err := p.Validate(); err != nil {
		return walk.Params{}, err
	}
	return p, nil
}

// biasDirection maps config spellings onto the engine enum.
func biasDirection(s string) walk.BiasDirection {
	switch s {
	case "beginning of axis", "origin":
		return walk.BiasOrigin
	default:
		return walk.BiasDirection(s)
	}
}
