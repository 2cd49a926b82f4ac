package xcover

// Callback is the narrow interface the Engine uses to surface solutions,
// per-iteration cooperation points, abort notification, and completion. All
// four hooks receive the Matrix so a callback can request an abort or (in
// the future) compute progress from column state.
type Callback interface {
	// OnSolution is called with a defensive copy of the currently selected
	// row IDs whenever the header list is empty (every column covered).
	OnSolution(sol []int, m *Matrix)
	// OnIteration is called once per recursion level; it is the cooperation
	// point, and the abort flag is checked right after it returns.
	OnIteration(m *Matrix)
	// OnAbort is called exactly once, the first time an abort request is
	// observed, while the search unwinds.
	OnAbort(m *Matrix)
	// OnFinish is called once, just before Solve returns, when the search
	// tree was exhausted without being aborted.
	OnFinish()
}

// BaseCallback supplies no-op implementations of every Callback method so
// that a concrete callback can embed it and override only the hooks it
// cares about.
type BaseCallback struct{}

func (BaseCallback) OnSolution(_ []int, _ *Matrix) {}

func (BaseCallback) OnIteration(_ *Matrix) {}

func (BaseCallback) OnAbort(_ *Matrix) {}

func (BaseCallback) OnFinish() {}

// SolutionCallback is the simplest useful Callback: it just accumulates
// every solution it is handed.
type SolutionCallback struct {
	BaseCallback
	Solutions [][]int
}

func (c *SolutionCallback) OnSolution(sol []int, _ *Matrix) {
	c.Solutions = append(c.Solutions, sol)
}
