package walk

// WalkerType selects the movement policy for a run.
type WalkerType int

const (
	WalkerUniform      WalkerType = 1 // uniform over unit directions
	WalkerRandomLength WalkerType = 2 // uniform direction, random magnitude
	WalkerLattice      WalkerType = 3 // unit directions scaled to a lattice
	WalkerBiased       WalkerType = 4 // weighted toward a configured direction
)

// String returns the string representation of a walker type.
func (t WalkerType) String() string {
	switch t {
	case WalkerUniform:
		return "uniform"
	case WalkerRandomLength:
		return "random-length"
	case WalkerLattice:
		return "lattice"
	case WalkerBiased:
		return "biased"
	default:
		return "unknown"
	}
}

// BiasDirection names the direction a biased walker is skewed toward.
// BiasOrigin skews toward stepping back to the origin.
type BiasDirection string

const (
	BiasUp     BiasDirection = "up"
	BiasDown   BiasDirection = "down"
	BiasLeft   BiasDirection = "left"
	BiasRight  BiasDirection = "right"
	BiasOrigin BiasDirection = "origin"
)

// MovementPolicy decides the step vector for each step of a walk.
// Implementations never fail; they always return a valid delta.
// step is the 1-based number of the step being taken. pos is the
// walker's position before the step, needed by origin-seeking bias.
type MovementPolicy interface {
	NextStep(step int, pos Position, rng *RNG) (dx, dy int)
}

var cardinalDirs = []Dir{DirUp, DirRight, DirDown, DirLeft}

var allDirs = []Dir{
	DirUp, DirRight, DirDown, DirLeft,
	DirUpRight, DirDownRight, DirDownLeft, DirUpLeft,
}

// UniformPolicy steps one unit in a uniformly chosen direction.
type UniformPolicy struct {
	dirs []Dir
}

// NewUniformPolicy creates a uniform policy over 4 directions,
// or 8 when diagonals is true.
func NewUniformPolicy(diagonals bool) *UniformPolicy {
	dirs := cardinalDirs
	if diagonals {
		dirs = allDirs
	}
	return &UniformPolicy{dirs: dirs}
}

// NextStep implements MovementPolicy.
func (p *UniformPolicy) NextStep(_ int, _ Position, rng *RNG) (int, int) {
	return p.dirs[rng.Intn(len(p.dirs))].Delta()
}

// RandomLengthPolicy steps in a uniformly chosen direction with a
// magnitude drawn uniformly from [MinStep, MaxStep].
type RandomLengthPolicy struct {
	dirs    []Dir
	minStep int
	maxStep int
}

// NewRandomLengthPolicy creates a random-length policy.
func NewRandomLengthPolicy(minStep, maxStep int, diagonals bool) *RandomLengthPolicy {
	dirs := cardinalDirs
	if diagonals {
		dirs = allDirs
	}
	return &RandomLengthPolicy{dirs: dirs, minStep: minStep, maxStep: maxStep}
}

// NextStep implements MovementPolicy.
func (p *RandomLengthPolicy) NextStep(_ int, _ Position, rng *RNG) (int, int) {
	dx, dy := p.dirs[rng.Intn(len(p.dirs))].Delta()
	length := rng.IntRange(p.minStep, p.maxStep)
	return dx * length, dy * length
}

// LatticePolicy restricts steps to multiples of a fixed cell size.
type LatticePolicy struct {
	dirs []Dir
	size int
}

// NewLatticePolicy creates a lattice policy with the given cell size.
func NewLatticePolicy(size int, diagonals bool) *LatticePolicy {
	dirs := cardinalDirs
	if diagonals {
		dirs = allDirs
	}
	return &LatticePolicy{dirs: dirs, size: size}
}

// NextStep implements MovementPolicy.
func (p *LatticePolicy) NextStep(_ int, _ Position, rng *RNG) (int, int) {
	dx, dy := p.dirs[rng.Intn(len(p.dirs))].Delta()
	return dx * p.size, dy * p.size
}

// BiasedPolicy skews the direction distribution toward one direction.
// All five options (up, down, left, right, toward-origin) start with
// equal weight; the favored option's weight is raised by percent/100.
// When increasing is set, the effective percent ramps linearly with the
// step number and is capped at 100.
type BiasedPolicy struct {
	direction  BiasDirection
	percent    int
	increasing bool
	ramp       float64
}

// NewBiasedPolicy creates a biased policy.
func NewBiasedPolicy(direction BiasDirection, percent int, increasing bool, ramp float64) *BiasedPolicy {
	return &BiasedPolicy{
		direction:  direction,
		percent:    percent,
		increasing: increasing,
		ramp:       ramp,
	}
}

// biasedOptions lists the selectable moves in a fixed order:
// up, down, left, right, toward-origin.
var biasedOptions = []BiasDirection{BiasUp, BiasDown, BiasLeft, BiasRight, BiasOrigin}

func (p *BiasedPolicy) effectivePercent(step int) float64 {
	pct := float64(p.percent)
	if p.increasing {
		pct += p.ramp * float64(step)
	}
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// NextStep implements MovementPolicy.
func (p *BiasedPolicy) NextStep(step int, pos Position, rng *RNG) (int, int) {
	weights := [5]float64{1, 1, 1, 1, 1}
	for i, opt := range biasedOptions {
		if opt == p.direction {
			weights[i] += p.effectivePercent(step) / 100
			break
		}
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}

	pick := rng.Float() * total
	choice := len(biasedOptions) - 1
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if pick < cumulative {
			choice = i
			break
		}
	}

	switch biasedOptions[choice] {
	case BiasUp:
		return DirUp.Delta()
	case BiasDown:
		return DirDown.Delta()
	case BiasLeft:
		return DirLeft.Delta()
	case BiasRight:
		return DirRight.Delta()
	default:
		target := pos.TowardOrigin()
		return target.X - pos.X, target.Y - pos.Y
	}
}
