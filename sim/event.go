package sim

// The two per-agent transition rules applied on every step. They are the
// only code that mutates an Agent after initialization; richer events
// (partner matching, stage progression, mortality, treatment) would slot
// in alongside them with the same shape.

// Infect exposes an uninfected agent to the virus for one step.
//
// Already-infected agents are untouched and consume no draw. Otherwise the
// per-step risk is ForceInfection x ProbNewPartner x prevalence; a single
// Uniform(0,1) draw below the risk moves the agent to StagePrimary.
// Prevalence is computed once per step before any agent is updated, so
// every agent in a step sees the same value and the trials are independent.
//
// A risk outside [0,1] (parameter misconfiguration) is clamped here; the
// engine logs the anomaly once per step.
func Infect(a *Agent, prevalence, probNewPartner, forceInfection float64, src *Source) {
	if a.Stage != StageUninfected {
		return
	}
	risk := forceInfection * probNewPartner * prevalence
	if risk > 1 {
		risk = 1
	}
	if risk < 0 {
		risk = 0
	}
	if src.Uniform(0.0, 1.0) < risk {
		a.Stage = StagePrimary
	}
}

// Age advances an agent's age by the elapsed simulated time in years.
// Unconditional, no failure modes.
func Age(a *Agent, elapsed float64) {
	a.Age += elapsed
}
