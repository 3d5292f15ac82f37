package gale

import "math/rand/v2"

// Env bundles the process-wide simulation state: the mode flags every
// entity reads during Update/Draw, the current windmill selection, and the
// random source used for spawn placement and cloud wrapping. It is passed
// explicitly rather than held in package globals so the core stays
// deterministic and testable (fixed seed + fixed input = fixed behavior).
//
// One Env, one Scene, one goroutine. Nothing here is safe for concurrent
// use, and nothing needs to be: the run loop dispatches ticks and key
// events strictly serially.
type Env struct {
	// Day selects the day palette and enables sun rays. Night otherwise.
	Day bool
	// Paused gates every entity Update uniformly. Draw still runs.
	Paused bool
	// AnimateCelestial gates the sun/moon phase animation.
	AnimateCelestial bool
	// SelectedWindmill is the 1-based position of the selected windmill in
	// the scene's windmill view. 0 means no selection. Always 0 or a live
	// windmill; Scene.Clear resets it.
	SelectedWindmill int

	// Rand drives cloud re-randomization and spawn placement.
	Rand *rand.Rand

	// selectedID is the identity of the selected windmill, refreshed by
	// Scene.DrawAll before entities draw. Derived state; never set directly.
	selectedID int
}

// NewEnv returns the program-start state: day mode, running, celestial
// animation on, windmill 1 selected, RNG seeded from seed.
func NewEnv(seed uint64) *Env {
	return &Env{
		Day:              true,
		AnimateCelestial: true,
		SelectedWindmill: 1,
		Rand:             rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// SelectedIdentity returns the identity of the windmill the selection
// currently resolves to, or 0. Valid after the most recent Scene.DrawAll.
func (e *Env) SelectedIdentity() int {
	return e.selectedID
}

// randBetween returns a uniform value in [min, max).
func randBetween(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
