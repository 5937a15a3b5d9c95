package textrun

// Middleware intercepts Builder steps, allowing custom behavior before/after execution.
// Each field wraps one step: it receives the step parameters and a next
// function that runs the default implementation.
type Middleware struct {
	// ResolveColors wraps color resolution for every cell and cursor.
	ResolveColors func(start RunStart, next func(RunStart) Colors) Colors

	// FinishRun wraps the hand-off of a finished run to the output list.
	// Not calling next drops the run.
	FinishRun func(run TextRun, next func(TextRun))
}

// Merge copies the non-nil hooks of other into m.
func (m *Middleware) Merge(other *Middleware) {
	if other == nil {
		return
	}

	if other.ResolveColors != nil {
		m.ResolveColors = other.ResolveColors
	}
	if other.FinishRun != nil {
		m.FinishRun = other.FinishRun
	}
}
