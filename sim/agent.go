package sim

// Sex of an agent, set once at creation and immutable for the run.
type Sex int

const (
	Male Sex = iota
	Female
)

func (s Sex) String() string {
	if s == Male {
		return "male"
	}
	return "female"
}

// Infection stages. Stage 0 is uninfected; 1 is primary infection; 2-5 are
// successive clinical stages. The infection event only ever moves an agent
// from StageUninfected to StagePrimary; later stages appear only in the
// initial population and never regress.
const (
	StageUninfected uint = 0
	StagePrimary    uint = 1
	StageMax        uint = 5
)

// NumStages is the number of infection stage buckets [0, StageMax].
const NumStages = int(StageMax) + 1

// Agent is the data record for one individual. It is a plain aggregate;
// Age and Stage are mutated only by the event functions in event.go so the
// stage-monotonicity and age-monotonicity invariants stay in one place.
type Agent struct {
	Sex   Sex
	Age   float64 // years, >= 0
	Stage uint    // infection stage in [0, StageMax]
}

// Infected reports whether the agent carries the virus at any stage.
func (a *Agent) Infected() bool {
	return a.Stage > StageUninfected
}

// randomize draws the agent's initial attributes. The draw order — sex,
// then age, then infection stage — is part of the reproducibility contract:
// reordering the draws changes every subsequent value from the Source.
func (a *Agent) randomize(src *Source) {
	if src.Bernoulli(0.5) {
		a.Sex = Female
	} else {
		a.Sex = Male
	}
	a.Age = src.Uniform(15.0, 20.0)
	a.Stage = uint(min(src.Geometric(0.9), int(StageMax)))
}
