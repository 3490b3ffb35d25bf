package walk

// Limits on run dimensions. Batches beyond these are almost certainly
// configuration mistakes and get rejected up front.
const (
	MaxNumSteps       = 100000
	MaxNumSimulations = 10000
)

// Params configures a single walk run. All feature fields use explicit
// "disabled" zero values: no obstacles, no gates, no restart steps, no
// exit radius. Validation happens once, before any run starts.
type Params struct {
	WalkerType WalkerType
	NumSteps   int

	// Direction set shared by uniform, random-length and lattice policies.
	Diagonals bool

	// Random-length policy magnitude range.
	MinStep int
	MaxStep int

	// Lattice policy cell size.
	LatticeSize int

	// Biased policy settings.
	BiasDirection  BiasDirection
	BiasPercent    int
	BiasIncreasing bool
	BiasRamp       float64

	Obstacles []Rect
	Gates     []Gate

	// Restart triggers. Empty RestartSteps disables restarts.
	RestartSteps       []int
	RestartProbability float64

	// ExitRadius records the first step at which the walker reaches this
	// distance from the origin. 0 disables exit tracking.
	ExitRadius float64
}

// DefaultParams returns run parameters with sensible defaults:
// a plain uniform walker, 100 steps, exit radius 10.
func DefaultParams() Params {
	return Params{
		WalkerType:         WalkerUniform,
		NumSteps:           100,
		MinStep:            1,
		MaxStep:            3,
		LatticeSize:        1,
		BiasPercent:        50,
		BiasRamp:           1,
		RestartProbability: 0.5,
		ExitRadius:         10,
	}
}

// policy builds the movement policy for these params.
// Assumes Validate has passed.
func (p Params) policy() MovementPolicy {
	switch p.WalkerType {
	case WalkerRandomLength:
		return NewRandomLengthPolicy(p.MinStep, p.MaxStep, p.Diagonals)
	case WalkerLattice:
		return NewLatticePolicy(p.LatticeSize, p.Diagonals)
	case WalkerBiased:
		return NewBiasedPolicy(p.BiasDirection, p.BiasPercent, p.BiasIncreasing, p.BiasRamp)
	default:
		return NewUniformPolicy(p.Diagonals)
	}
}
