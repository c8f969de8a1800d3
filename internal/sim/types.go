package sim

import "github.com/san-kum/diffsim/internal/diffusion"

// Params holds everything a run needs. Immutable for the duration of a run.
type Params struct {
	Diffusivity   float64
	DomainSize    float64
	Spacing       float64
	Origin        float64
	Steps         int
	BoundaryLeft  float64
	BoundaryRight float64

	// RecordEvery thins the profile history: every k-th step is kept,
	// plus the initial and final profiles. Zero or one keeps every step.
	RecordEvery int
}

// Metric accumulates a scalar over the profiles seen during a run.
type Metric interface {
	Name() string
	Observe(c diffusion.Field, t float64)
	Value() float64
	Reset()
}

// Observer is notified with the current profile and elapsed simulated time
// at the top of every step. Purely observational; no feedback into the run.
type Observer interface {
	OnStep(c diffusion.Field, t float64)
}

// Result is the outcome of a run. Profiles[0] is the initial field; the
// final field is always the last entry regardless of RecordEvery.
type Result struct {
	Grid     *diffusion.Grid
	Dt       float64
	Profiles []diffusion.Field
	Times    []float64
	Metrics  map[string]float64

	StepsTaken int
}

// Final returns the last recorded profile, or nil when nothing was recorded.
func (r *Result) Final() diffusion.Field {
	if len(r.Profiles) == 0 {
		return nil
	}
	return r.Profiles[len(r.Profiles)-1]
}
