package walk

// ObstacleField reports whether a target position is blocked.
// Lookup is linear over the configured rectangles; obstacle counts
// are small so no spatial index is needed.
type ObstacleField struct {
	rects []Rect
}

// NewObstacleField creates a field from normalized rectangles.
func NewObstacleField(rects []Rect) *ObstacleField {
	return &ObstacleField{rects: rects}
}

// Blocked returns true if the position lies inside any obstacle.
func (f *ObstacleField) Blocked(p Position) bool {
	for _, r := range f.rects {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Rects returns the configured obstacle rectangles.
func (f *ObstacleField) Rects() []Rect {
	return f.rects
}

// Gate is a rectangular region that teleports the walker to a target
// position when entered.
type Gate struct {
	Area   Rect
	Target Position
}

// GateSet evaluates gates in configuration order. When a position lies
// inside overlapping gates, the first one configured wins.
type GateSet struct {
	gates []Gate
}

// NewGateSet creates a gate set preserving configuration order.
func NewGateSet(gates []Gate) *GateSet {
	return &GateSet{gates: gates}
}

// Check returns the teleport target and the gate's index if the
// position triggers a gate, or ok=false otherwise.
func (g *GateSet) Check(p Position) (target Position, index int, ok bool) {
	for i, gate := range g.gates {
		if gate.Area.Contains(p) {
			return gate.Target, i, true
		}
	}
	return Position{}, -1, false
}

// Gates returns the configured gates.
func (g *GateSet) Gates() []Gate {
	return g.gates
}

// RestartRule resets the walker to the origin at configured trigger
// steps. Each trigger fires with the configured probability; a
// probability of 1 makes the reset deterministic.
type RestartRule struct {
	steps       map[int]bool
	probability float64
}

// NewRestartRule creates a restart rule. An empty step list disables
// the rule entirely.
func NewRestartRule(steps []int, probability float64) *RestartRule {
	m := make(map[int]bool, len(steps))
	for _, s := range steps {
		m[s] = true
	}
	return &RestartRule{steps: m, probability: probability}
}

// Enabled returns true if any trigger steps are configured.
func (r *RestartRule) Enabled() bool {
	return len(r.steps) > 0
}

// MaybeRestart reports whether an origin reset fires at this step.
// Consumes RNG state only on trigger steps so non-trigger steps do not
// perturb the stream.
func (r *RestartRule) MaybeRestart(step int, rng *RNG) bool {
	if !r.steps[step] {
		return false
	}
	return rng.Float() < r.probability
}
