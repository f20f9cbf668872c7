// Package sim provides the core engine for a discrete-time stochastic
// agent-based simulation of HIV transmission in a closed population.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - agent.go: the Agent record (sex, age, infection stage) and its initial draws
//   - event.go: the per-agent transition rules (infection exposure, aging)
//   - simulator.go: the per-step loop: shuffle, prevalence snapshot, events, report
//
// # Reproducibility
//
// All randomness flows through a single Source (rng.go) seeded once from a
// SimulationKey. Given the same key, the same parameters, and the same
// sequence of draw requests, a run produces bit-for-bit identical output.
// The per-agent initialization draw order (sex, then age, then stage) is
// part of that contract. Anyone parallelizing the per-agent event pass must
// either preserve the sequential draw order or switch to per-agent derived
// streams; the current engine is strictly single-threaded.
//
// # Scope
//
// The engine models infection exposure against a per-step prevalence and
// aging, nothing else: no partner networks, no stage progression past
// primary infection, no mortality, no treatment. Those belong to external
// collaborators that could feed richer inputs (e.g. per-agent contact
// counts) without changing the engine's contract.
package sim
