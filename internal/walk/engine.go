package walk

// Phase represents the engine's position in its lifecycle.
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseExited        // exit radius crossed, walk keeps recording
	PhaseTerminated    // step budget exhausted
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseExited:
		return "Exited"
	case PhaseTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// WalkerState is the mutable per-run state, updated in place once per step.
type WalkerState struct {
	Pos      Position
	Step     int
	Trace    []Position // Trace[i] is the position after step i; Trace[0] is the origin
	ExitStep int        // first step at or beyond the exit radius, -1 if never
}

// StepEvent describes what happened during one engine step.
type StepEvent struct {
	Step      int
	From      Position
	Candidate Position
	Pos       Position
	Rejected  bool // candidate landed in an obstacle, walker stayed put
	GateIndex int  // index of the gate that fired, -1 otherwise
	Restarted bool
	ExitedNow bool
	Phase     Phase
}

// RunResult is the immutable summary of a completed run.
type RunResult struct {
	Index          int
	Seed           uint64
	Final          Position
	FinalDist      float64
	DistFromXAxis  int
	DistFromYAxis  int
	ExitStep       int // -1 if the exit radius was never reached
	XAxisCrossings int // sign changes of the Y coordinate
	RejectedSteps  int
	GateTeleports  int
	Restarts       int
	Trace          []Position
}

// Engine drives one simulation run to completion. Per step it applies,
// in fixed order: movement policy, obstacle rejection, gate teleport,
// restart reset, trace bookkeeping, exit-radius detection, termination.
type Engine struct {
	params    Params
	policy    MovementPolicy
	obstacles *ObstacleField
	gates     *GateSet
	restart   *RestartRule
	rng       *RNG
	seed      uint64

	phase Phase
	state WalkerState

	crossings int
	rejected  int
	teleports int
	restarts  int
}

// NewEngine validates params and constructs a run engine seeded with
// its own RNG stream. All collaborator misconfiguration surfaces here,
// never mid-walk.
func NewEngine(p Params, seed uint64) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		params:    p,
		policy:    p.policy(),
		obstacles: NewObstacleField(p.Obstacles),
		gates:     NewGateSet(p.Gates),
		restart:   NewRestartRule(p.RestartSteps, p.RestartProbability),
		rng:       NewRNG(seed),
		seed:      seed,
	}
	e.reset()
	return e, nil
}

func (e *Engine) reset() {
	e.phase = PhaseRunning
	e.state = WalkerState{
		Pos:      Origin,
		Trace:    append(make([]Position, 0, e.params.NumSteps+1), Origin),
		ExitStep: -1,
	}
	if e.params.NumSteps == 0 {
		e.phase = PhaseTerminated
	}
}

// Phase returns the engine's current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// State returns a copy of the current walker state.
func (e *Engine) State() WalkerState {
	return e.state
}

// Params returns the run parameters.
func (e *Engine) Params() Params {
	return e.params
}

// Step advances the walk by one step. Calling Step after termination
// returns the terminal event unchanged.
func (e *Engine) Step() StepEvent {
	if e.phase == PhaseTerminated {
		return StepEvent{
			Step:      e.state.Step,
			From:      e.state.Pos,
			Pos:       e.state.Pos,
			GateIndex: -1,
			Phase:     PhaseTerminated,
		}
	}

	step := e.state.Step + 1
	from := e.state.Pos

	ev := StepEvent{Step: step, From: from, GateIndex: -1}

	// 1-2. Candidate position from the movement policy.
	dx, dy := e.policy.NextStep(step, from, e.rng)
	candidate := from.Add(dx, dy)
	ev.Candidate = candidate

	// 3-4. Obstacle check: reject-and-stay. A rejected step still
	// consumes a turn.
	pos := candidate
	if e.obstacles.Blocked(candidate) {
		pos = from
		ev.Rejected = true
		e.rejected++
	} else if pos != from {
		// 5. Gates only see accepted steps that actually moved; the
		// teleport is atomic. A zero-delta step (an origin-biased
		// walker sitting at the origin) never re-trips a gate.
		if target, idx, ok := e.gates.Check(pos); ok {
			pos = target
			ev.GateIndex = idx
			e.teleports++
		}
	}

	// 6. Probabilistic restart back to the origin.
	if e.restart.MaybeRestart(step, e.rng) {
		pos = Origin
		ev.Restarted = true
		e.restarts++
	}

	// 7. Bookkeeping.
	if (from.Y > 0 && pos.Y < 0) || (from.Y < 0 && pos.Y > 0) {
		e.crossings++
	}
	e.state.Pos = pos
	e.state.Step = step
	e.state.Trace = append(e.state.Trace, pos)
	ev.Pos = pos

	// 8. Exit radius: the first crossing freezes the exit step.
	if e.params.ExitRadius > 0 && e.phase == PhaseRunning && pos.Dist() >= e.params.ExitRadius {
		e.state.ExitStep = step
		e.phase = PhaseExited
		ev.ExitedNow = true
	}

	// 9. Termination by step budget.
	if step == e.params.NumSteps {
		e.phase = PhaseTerminated
	}
	ev.Phase = e.phase

	return ev
}

// Run drives the walk to termination and returns its immutable result.
func (e *Engine) Run() RunResult {
	for e.phase != PhaseTerminated {
		e.Step()
	}
	return e.Result()
}

// Result converts the terminal walker state into a RunResult.
func (e *Engine) Result() RunResult {
	final := e.state.Pos
	return RunResult{
		Seed:           e.seed,
		Final:          final,
		FinalDist:      final.Dist(),
		DistFromXAxis:  final.DistFromXAxis(),
		DistFromYAxis:  final.DistFromYAxis(),
		ExitStep:       e.state.ExitStep,
		XAxisCrossings: e.crossings,
		RejectedSteps:  e.rejected,
		GateTeleports:  e.teleports,
		Restarts:       e.restarts,
		Trace:          e.state.Trace,
	}
}
