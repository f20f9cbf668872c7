package sim

import (
	"errors"
	"fmt"
	"math"
)

// DaysPerYear converts between calendar dates and daily iteration indices
// in the per-step report.
const DaysPerYear = 365.0

// ErrDegenerateInput marks configurations that would make the prevalence
// computation divide by zero. Check with errors.Is.
var ErrDegenerateInput = errors.New("population must be non-empty")

// Parameters is the typed configuration for one simulation run, replacing
// the original hash-map-of-strings parameter table so that a missing or
// mistyped key is impossible by construction.
//
// TimeStep and ProbNewPartner are coupled: ProbNewPartner is a per-step
// probability, so changing the step size without rescaling it changes the
// epidemiological meaning of the run. The engine does not auto-rescale.
type Parameters struct {
	NumYears       float64 // total simulated duration in years
	TimeStep       float64 // years per step
	StartDate      float64 // calendar year offset used in report lines
	ProbNewPartner float64 // per-step probability of a new sexual contact
	ForceInfection float64 // per-contact transmission probability given an HIV+ contact
	PopulationSize int     // number of agents, fixed for the run
	Seed           int64   // seed for the shared random Source
}

// DefaultParameters returns the documented default run configuration:
// two years simulated in daily steps, starting at 2015.
func DefaultParameters() Parameters {
	return Parameters{
		NumYears:       2.0,
		TimeStep:       1.0 / DaysPerYear,
		StartDate:      2015.0,
		ProbNewPartner: 0.022,
		ForceInfection: 0.1,
		PopulationSize: 10000,
		Seed:           23,
	}
}

// Validate fails fast on configurations that would change the meaning of a
// run or crash it, rather than letting the engine silently default.
func (p Parameters) Validate() error {
	if p.NumYears <= 0 || math.IsNaN(p.NumYears) {
		return fmt.Errorf("NumYears must be positive, got %v", p.NumYears)
	}
	if p.TimeStep <= 0 || math.IsNaN(p.TimeStep) {
		return fmt.Errorf("TimeStep must be positive, got %v", p.TimeStep)
	}
	if p.ProbNewPartner < 0 || p.ProbNewPartner > 1 || math.IsNaN(p.ProbNewPartner) {
		return fmt.Errorf("ProbNewPartner must be a probability in [0,1], got %v", p.ProbNewPartner)
	}
	if p.ForceInfection < 0 || p.ForceInfection > 1 || math.IsNaN(p.ForceInfection) {
		return fmt.Errorf("ForceInfection must be a probability in [0,1], got %v", p.ForceInfection)
	}
	if p.PopulationSize <= 0 {
		return fmt.Errorf("PopulationSize %d: %w", p.PopulationSize, ErrDegenerateInput)
	}
	return nil
}

// NumIterations is the fixed number of steps a run executes:
// floor(NumYears / TimeStep). The loop has no early exit.
func (p Parameters) NumIterations() int {
	return int(math.Floor(p.NumYears / p.TimeStep))
}
