// sim/simulator.go
package sim

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that owns the population, the shared random
// Source, and the per-step update loop. A run is single-threaded and
// synchronous; the Source and Population are owned exclusively by the
// simulator's call stack for its duration.
type Simulator struct {
	Params     Parameters
	Population Population
	Source     *Source
	Reporter   *Reporter
	Metrics    *Metrics
	Step       int
}

// NewSimulator validates params, seeds the Source, initializes the
// population, and wires the reporter to out. A zero or negative population
// size is rejected here so the prevalence division can never hit zero.
func NewSimulator(params Parameters, out io.Writer, csvOut bool) (*Simulator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	src := NewSource(NewSimulationKey(params.Seed))
	pop, err := NewPopulation(params.PopulationSize, src)
	if err != nil {
		return nil, err
	}
	return &Simulator{
		Params:     params,
		Population: pop,
		Source:     src,
		Reporter:   NewReporter(out, csvOut),
		Metrics:    NewMetrics(),
	}, nil
}

// Run executes exactly NumIterations steps. No early exit, no convergence
// check: the run length is deterministic.
func (s *Simulator) Run() {
	n := s.Params.NumIterations()
	logrus.Infof("Starting run: %d agents, %d steps of %g years, seed=%d",
		len(s.Population), n, s.Params.TimeStep, int64(s.Source.Key()))
	for i := 0; i < n; i++ {
		s.step(i)
	}
	logrus.Infof("Simulation ended after %d steps", n)
}

// step advances the simulation by one iteration, in strict order: shuffle,
// prevalence snapshot, per-agent events, report.
func (s *Simulator) step(i int) {
	// Shuffling first removes any bias from the original agent order; for
	// neighbor-dependent events such as partner matching this is vital.
	s.Population.Shuffle(s.Source)

	// One prevalence value per step, computed before any agent is updated,
	// so every agent's exposure trial sees the same epidemic state.
	prevalence := s.Population.Prevalence()
	if risk := s.Params.ForceInfection * s.Params.ProbNewPartner * prevalence; risk > 1 {
		logrus.Warnf("step %d: infection risk %g exceeds 1, clamping; check ProbNewPartner/ForceInfection", i, risk)
	}

	for j := range s.Population {
		Infect(&s.Population[j], prevalence, s.Params.ProbNewPartner, s.Params.ForceInfection, s.Source)
		Age(&s.Population[j], s.Params.TimeStep)
	}
	s.Step++

	date := s.Params.StartDate + float64(i)/DaysPerYear
	s.Reporter.Report(date, s.Population)
	s.Metrics.Observe(s.Population.Infected(), s.Population.Prevalence())
}
