package walk

import (
	"errors"
	"testing"
)

func TestValidateCodes(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Params)
		wantCode string
	}{
		{"bad walker type", func(p *Params) { p.WalkerType = 0 }, "INVALID_WALKER_TYPE"},
		{"negative steps", func(p *Params) { p.NumSteps = -1 }, "INVALID_NUM_STEPS"},
		{"steps over limit", func(p *Params) { p.NumSteps = MaxNumSteps + 1 }, "INVALID_NUM_STEPS"},
		{"inverted step range", func(p *Params) {
			p.WalkerType = WalkerRandomLength
			p.MinStep, p.MaxStep = 5, 2
		}, "INVALID_STEP_RANGE"},
		{"zero min step", func(p *Params) {
			p.WalkerType = WalkerRandomLength
			p.MinStep = 0
		}, "INVALID_STEP_RANGE"},
		{"bad lattice size", func(p *Params) {
			p.WalkerType = WalkerLattice
			p.LatticeSize = 0
		}, "INVALID_LATTICE_SIZE"},
		{"bad bias direction", func(p *Params) {
			p.WalkerType = WalkerBiased
			p.BiasDirection = "sideways"
		}, "INVALID_BIAS_DIRECTION"},
		{"bias percent over 100", func(p *Params) {
			p.WalkerType = WalkerBiased
			p.BiasDirection = BiasUp
			p.BiasPercent = 101
		}, "INVALID_BIAS_PERCENT"},
		{"negative ramp", func(p *Params) {
			p.WalkerType = WalkerBiased
			p.BiasDirection = BiasUp
			p.BiasIncreasing = true
			p.BiasRamp = -1
		}, "INVALID_BIAS_RAMP"},
		{"obstacle covers origin", func(p *Params) {
			p.Obstacles = []Rect{NewRect(-1, -1, 1, 1)}
		}, "OBSTACLE_AT_ORIGIN"},
		{"gate target blocked", func(p *Params) {
			p.Obstacles = []Rect{NewRect(5, 5, 6, 6)}
			p.Gates = []Gate{{Area: NewRect(1, 1, 2, 2), Target: P(5, 5)}}
		}, "GATE_TARGET_BLOCKED"},
		{"non-positive restart step", func(p *Params) {
			p.RestartSteps = []int{0}
		}, "INVALID_RESTART_STEP"},
		{"restart probability over 1", func(p *Params) {
			p.RestartSteps = []int{5}
			p.RestartProbability = 1.5
		}, "INVALID_RESTART_PROBABILITY"},
		{"negative exit radius", func(p *Params) { p.ExitRadius = -1 }, "INVALID_EXIT_RADIUS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)

			err := p.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %v is not a ValidationError", err)
			}
			if verr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", verr.Code, tt.wantCode)
			}
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	// Defaults and a fully loaded config both pass.
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("default params rejected: %v", err)
	}

	p := DefaultParams()
	p.WalkerType = WalkerBiased
	p.BiasDirection = BiasOrigin
	p.BiasIncreasing = true
	p.Obstacles = []Rect{NewRect(10, 10, 12, 12)}
	p.Gates = []Gate{{Area: NewRect(5, 5, 6, 6), Target: Origin}}
	p.RestartSteps = []int{50}
	p.RestartProbability = 1
	if err := p.Validate(); err != nil {
		t.Errorf("loaded params rejected: %v", err)
	}

	// Zero steps is a legal no-op walk.
	p = DefaultParams()
	p.NumSteps = 0
	if err := p.Validate(); err != nil {
		t.Errorf("zero-step params rejected: %v", err)
	}
}
