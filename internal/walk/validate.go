package walk

import "fmt"

// ValidationError contains details about a configuration failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks run parameters and fails fast on the first problem.
// The engine is only constructed after validation passes, so a walk in
// progress can never hit a configuration error.
func (p Params) Validate() error {
	switch p.WalkerType {
	case WalkerUniform, WalkerRandomLength, WalkerLattice, WalkerBiased:
	default:
		return ValidationError{
			Code:    "INVALID_WALKER_TYPE",
			Message: fmt.Sprintf("walker_type must be 1..4, got %d", int(p.WalkerType)),
		}
	}

	if p.NumSteps < 0 || p.NumSteps > MaxNumSteps {
		return ValidationError{
			Code:    "INVALID_NUM_STEPS",
			Message: fmt.Sprintf("num_steps must be in 0..%d, got %d", MaxNumSteps, p.NumSteps),
		}
	}

	if p.WalkerType == WalkerRandomLength {
		if p.MinStep < 1 || p.MaxStep < p.MinStep {
			return ValidationError{
				Code:    "INVALID_STEP_RANGE",
				Message: fmt.Sprintf("step range must satisfy 1 <= min <= max, got [%d,%d]", p.MinStep, p.MaxStep),
			}
		}
	}

	if p.WalkerType == WalkerLattice && p.LatticeSize < 1 {
		return ValidationError{
			Code:    "INVALID_LATTICE_SIZE",
			Message: fmt.Sprintf("lattice_size must be >= 1, got %d", p.LatticeSize),
		}
	}

	if p.WalkerType == WalkerBiased {
		switch p.BiasDirection {
		case BiasUp, BiasDown, BiasLeft, BiasRight, BiasOrigin:
		default:
			return ValidationError{
				Code:    "INVALID_BIAS_DIRECTION",
				Message: fmt.Sprintf("bias direction must be up, down, left, right or origin, got %q", p.BiasDirection),
			}
		}
		if p.BiasPercent < 0 || p.BiasPercent > 100 {
			return ValidationError{
				Code:    "INVALID_BIAS_PERCENT",
				Message: fmt.Sprintf("bias percent must be in 0..100, got %d", p.BiasPercent),
			}
		}
		if p.BiasIncreasing && p.BiasRamp < 0 {
			return ValidationError{
				Code:    "INVALID_BIAS_RAMP",
				Message: fmt.Sprintf("bias ramp must be >= 0, got %g", p.BiasRamp),
			}
		}
	}

	for i, r := range p.Obstacles {
		if r.XMin > r.XMax || r.YMin > r.YMax {
			return ValidationError{
				Code:    "INVALID_OBSTACLE",
				Message: fmt.Sprintf("obstacle %d has unnormalized bounds %s", i, r),
			}
		}
		if r.Contains(Origin) {
			return ValidationError{
				Code:    "OBSTACLE_AT_ORIGIN",
				Message: fmt.Sprintf("obstacle %d %s covers the origin; walks could never start", i, r),
			}
		}
	}

	field := NewObstacleField(p.Obstacles)
	for i, g := range p.Gates {
		if g.Area.XMin > g.Area.XMax || g.Area.YMin > g.Area.YMax {
			return ValidationError{
				Code:    "INVALID_GATE",
				Message: fmt.Sprintf("gate %d has unnormalized bounds %s", i, g.Area),
			}
		}
		if field.Blocked(g.Target) {
			return ValidationError{
				Code:    "GATE_TARGET_BLOCKED",
				Message: fmt.Sprintf("gate %d target %s lies inside an obstacle", i, g.Target),
			}
		}
	}

	if len(p.RestartSteps) > 0 {
		for _, s := range p.RestartSteps {
			if s <= 0 {
				return ValidationError{
					Code:    "INVALID_RESTART_STEP",
					Message: fmt.Sprintf("restart steps must be positive, got %d", s),
				}
			}
		}
		if p.RestartProbability <= 0 || p.RestartProbability > 1 {
			return ValidationError{
				Code:    "INVALID_RESTART_PROBABILITY",
				Message: fmt.Sprintf("restart probability must be in (0,1], got %g", p.RestartProbability),
			}
		}
	}

	if p.ExitRadius < 0 {
		return ValidationError{
			Code:    "INVALID_EXIT_RADIUS",
			Message: fmt.Sprintf("exit radius must be >= 0, got %g", p.ExitRadius),
		}
	}

	return nil
}
