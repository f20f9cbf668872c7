package sim

import (
	"math"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Source ===

// Source is the single pseudo-random generator shared by the population
// initializer, the event functions, and the engine's shuffle. It is seeded
// exactly once at construction and never reseeded, so a run's output is a
// pure function of the SimulationKey and the sequence of draw requests.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type Source struct {
	key SimulationKey
	rng *rand.Rand
}

// NewSource creates a seeded Source from a SimulationKey.
func NewSource(key SimulationKey) *Source {
	return &Source{
		key: key,
		rng: rand.New(rand.NewSource(int64(key))),
	}
}

// Key returns the SimulationKey used to create this Source.
func (s *Source) Key() SimulationKey {
	return s.key
}

// Uniform draws a uniform real in [a, b).
func (s *Source) Uniform(a, b float64) float64 {
	return a + (b-a)*s.rng.Float64()
}

// Bernoulli draws true with probability p.
func (s *Source) Bernoulli(p float64) bool {
	return s.rng.Float64() < p
}

// Geometric draws the number of failures before the first success of a
// Bernoulli(p) trial, P(k) = (1-p)^k * p, via inversion of the geometric CDF.
// p must be in (0, 1].
func (s *Source) Geometric(p float64) int {
	if p <= 0 || p > 1 {
		panic("Geometric: p must be in (0, 1]")
	}
	u := s.rng.Float64()
	if u == 0 {
		u = math.SmallestNonzeroFloat64 // prevent log(0) → -Inf
	}
	// For p == 1, log(1-p) is -Inf and the ratio underflows to zero:
	// the first trial always succeeds.
	return int(math.Floor(math.Log(u) / math.Log(1-p)))
}

// Shuffle applies a uniform random permutation of n elements through swap.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}
