package walk

// RNG is a deterministic pseudo-random number generator (xorshift64).
// Each run owns its own stream so runs are reproducible and can execute
// in parallel without shared state.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = 88172645463325252 // Default seed
	}
	return &RNG{state: seed}
}

// RunSeed derives the seed for run index i from a batch base seed.
// Distinct runs get distinct, well-separated streams.
func RunSeed(base uint64, i int) uint64 {
	return base + uint64(i)*0x9E3779B97F4A7C15
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns a random int in [lo, hi] inclusive.
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Bool returns a random boolean.
func (r *RNG) Bool() bool {
	return r.Next()&1 == 1
}
