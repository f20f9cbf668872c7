// Per-step reporting and run-level aggregate metrics.

package sim

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Reporter emits the per-step time series and the verbose demographic
// summary. It is strictly read-only over the population: calling it twice
// on the same snapshot produces identical output both times.
type Reporter struct {
	out io.Writer
	csv bool
}

// NewReporter creates a Reporter writing to out. In CSV mode the header row
// is written immediately so that every subsequent Report call is one data
// row, keeping Report idempotent.
func NewReporter(out io.Writer, csv bool) *Reporter {
	r := &Reporter{out: out, csv: csv}
	if csv {
		fmt.Fprintln(out, "date,infected,prevalence")
	}
	return r
}

// Report emits one line for the given date: infected count and prevalence.
func (r *Reporter) Report(date float64, pop Population) {
	infected := pop.Infected()
	prevalence := float64(infected) / float64(len(pop))
	if r.csv {
		fmt.Fprintf(r.out, "%g,%d,%g\n", date, infected, prevalence)
	} else {
		fmt.Fprintf(r.out, "%g Num infected: %d Prevalence: %g\n", date, infected, prevalence)
	}
}

// VerboseSummary emits the demographic block: male count, age extremes and
// mean, and the infection-stage histogram. The driver calls it before and
// after a run as a sanity check; it is not part of the step loop.
func (r *Reporter) VerboseSummary(pop Population) {
	males := 0
	var stages [NumStages]int
	ages := make([]float64, len(pop))
	for i := range pop {
		stages[pop[i].Stage]++
		if pop[i].Sex == Male {
			males++
		}
		ages[i] = pop[i].Age
	}
	fmt.Fprintf(r.out, "Males: %d\n", males)
	fmt.Fprintf(r.out, "Youngest: %g\n", floats.Min(ages))
	fmt.Fprintf(r.out, "Oldest: %g\n", floats.Max(ages))
	fmt.Fprintf(r.out, "Average age: %g\n", stat.Mean(ages, nil))
	for stage, n := range stages {
		fmt.Fprintf(r.out, "HIV %d %d\n", stage, n)
	}
}

// Metrics aggregates statistics across a run for final reporting.
type Metrics struct {
	Steps          int     // number of completed steps
	InitialCount   int     // infected count before the first step
	FinalCount     int     // infected count after the last step
	PeakPrevalence float64 // maximum per-step prevalence observed
	InfectedSeries []int   // infected count after each step
}

// NewMetrics returns an empty Metrics ready to observe a run.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Observe records one step's post-update infected count and prevalence.
func (m *Metrics) Observe(infected int, prevalence float64) {
	if m.Steps == 0 {
		m.InitialCount = infected
	}
	m.Steps++
	m.FinalCount = infected
	m.InfectedSeries = append(m.InfectedSeries, infected)
	if prevalence > m.PeakPrevalence {
		m.PeakPrevalence = prevalence
	}
}

// NewInfections is the net growth of the epidemic over the observed steps.
func (m *Metrics) NewInfections() int {
	return m.FinalCount - m.InitialCount
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(out io.Writer) {
	fmt.Fprintln(out, "=== Simulation Metrics ===")
	fmt.Fprintf(out, "Steps completed      : %d\n", m.Steps)
	if m.Steps > 0 {
		fmt.Fprintf(out, "Infected (first step): %d\n", m.InitialCount)
		fmt.Fprintf(out, "Infected (last step) : %d\n", m.FinalCount)
		fmt.Fprintf(out, "New infections       : %d\n", m.NewInfections())
		fmt.Fprintf(out, "Peak prevalence      : %g\n", m.PeakPrevalence)
	}
}
