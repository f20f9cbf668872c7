package sim

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func demoPopulation() Population {
	return Population{
		{Sex: Male, Age: 15, Stage: StageUninfected},
		{Sex: Male, Age: 20, Stage: StagePrimary},
		{Sex: Female, Age: 25, Stage: 5},
	}
}

func TestReporter_Report_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.Report(2015.0, demoPopulation())

	line := buf.String()
	assert.Contains(t, line, "2015")
	assert.Contains(t, line, "Num infected: 2")
	assert.Contains(t, line, "Prevalence: 0.6666666666666666")
}

func TestReporter_Report_Idempotent(t *testing.T) {
	// GIVEN one unmodified population snapshot
	pop := demoPopulation()
	var bufA, bufB bytes.Buffer

	// WHEN the same reporter call runs twice
	NewReporter(&bufA, false).Report(2015.0, pop)
	NewReporter(&bufB, false).Report(2015.0, pop)

	// THEN both outputs are identical and the population is untouched
	assert.Equal(t, bufA.String(), bufB.String())
	assert.Equal(t, demoPopulation(), pop)
}

func TestReporter_Report_IdempotentOnSameWriter(t *testing.T) {
	pop := demoPopulation()
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.Report(2015.0, pop)
	first := buf.String()
	buf.Reset()
	r.Report(2015.0, pop)

	assert.Equal(t, first, buf.String())
}

func TestReporter_CSVMode_HeaderThenRows(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true)

	r.Report(2015.0, demoPopulation())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "date,infected,prevalence", lines[0])
	assert.Equal(t, "2015,2,0.6666666666666666", lines[1])
}

func TestReporter_VerboseSummary_DemographicFields(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.VerboseSummary(demoPopulation())

	out := buf.String()
	assert.Contains(t, out, "Males: 2\n")
	assert.Contains(t, out, "Youngest: 15\n")
	assert.Contains(t, out, "Oldest: 25\n")
	assert.Contains(t, out, "Average age: 20\n")
	assert.Contains(t, out, "HIV 0 1\n")
	assert.Contains(t, out, "HIV 1 1\n")
	assert.Contains(t, out, "HIV 2 0\n")
	assert.Contains(t, out, "HIV 3 0\n")
	assert.Contains(t, out, "HIV 4 0\n")
	assert.Contains(t, out, "HIV 5 1\n")
}

func TestMetrics_ObserveAccumulatesSeries(t *testing.T) {
	m := NewMetrics()

	m.Observe(10, 0.1)
	m.Observe(12, 0.12)
	m.Observe(15, 0.15)

	assert.Equal(t, 3, m.Steps)
	assert.Equal(t, 10, m.InitialCount)
	assert.Equal(t, 15, m.FinalCount)
	assert.Equal(t, 5, m.NewInfections())
	assert.Equal(t, []int{10, 12, 15}, m.InfectedSeries)
	assert.Equal(t, 0.15, m.PeakPrevalence)
}

func TestMetrics_PrintIncludesRunTotals(t *testing.T) {
	m := NewMetrics()
	m.Observe(10, 0.1)
	m.Observe(14, 0.14)

	var buf bytes.Buffer
	m.Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "Simulation Metrics")
	assert.Contains(t, out, "Steps completed      : 2")
	assert.Contains(t, out, "New infections       : 4")
}
