package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/epi-abm/epi-abm/sim"
)

// Scenario mirrors the named parameter table of a run. Every field is a
// pointer so an absent key leaves the corresponding default untouched.
type Scenario struct {
	NumYears       *float64 `yaml:"num_years"`
	TimeStep       *float64 `yaml:"time_step"`
	StartDate      *float64 `yaml:"start_date"`
	ProbNewPartner *float64 `yaml:"prob_new_partner"`
	ForceInfection *float64 `yaml:"force_infection"`
	PopulationSize *int     `yaml:"population_size"`
	Seed           *int64   `yaml:"seed"`
}

// loadScenario parses a YAML scenario file and overlays its values on base.
// Strict field checking: a misspelled key is an error, not a silent default,
// since a silently dropped parameter changes the epidemiological meaning of
// the run.
func loadScenario(path string, base sim.Parameters) (sim.Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read scenario file: %w", err)
	}
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return base, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	if sc.NumYears != nil {
		base.NumYears = *sc.NumYears
	}
	if sc.TimeStep != nil {
		base.TimeStep = *sc.TimeStep
	}
	if sc.StartDate != nil {
		base.StartDate = *sc.StartDate
	}
	if sc.ProbNewPartner != nil {
		base.ProbNewPartner = *sc.ProbNewPartner
	}
	if sc.ForceInfection != nil {
		base.ForceInfection = *sc.ForceInfection
	}
	if sc.PopulationSize != nil {
		base.PopulationSize = *sc.PopulationSize
	}
	if sc.Seed != nil {
		base.Seed = *sc.Seed
	}
	return base, nil
}
