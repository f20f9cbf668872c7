package sim

import "fmt"

// Population is the ordered, mutable collection of agents for one run.
// Size is fixed: no births or deaths are modeled. Order carries no meaning
// between steps — the engine shuffles it before every step's event pass so
// no positional bias can leak into order-dependent future events.
type Population []Agent

// NewPopulation initializes size agents, each independently randomized in
// O(1) draws. It consumes exactly size x 3 draws from src, in per-agent
// order sex, age, stage.
func NewPopulation(size int, src *Source) (Population, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cannot initialize population of size %d: %w", size, ErrDegenerateInput)
	}
	pop := make(Population, size)
	for i := range pop {
		pop[i].randomize(src)
	}
	return pop, nil
}

// Shuffle applies a uniform random permutation drawn from src.
func (p Population) Shuffle(src *Source) {
	src.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
}

// Infected counts agents with a nonzero infection stage.
func (p Population) Infected() int {
	n := 0
	for i := range p {
		if p[i].Infected() {
			n++
		}
	}
	return n
}

// Prevalence is the infected fraction of the population. The empty case is
// unreachable through NewPopulation, which rejects size zero.
func (p Population) Prevalence() float64 {
	return float64(p.Infected()) / float64(len(p))
}
