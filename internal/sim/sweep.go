package sim

import (
	"context"
	"sync"
)

// Sweep runs one independent simulation per diffusivity value. Runs share
// nothing: each gets its own Simulator and its own field buffer, so the
// strictly sequential ordering inside a single run is preserved.
type Sweep struct {
	base          Params
	diffusivities []float64
	metrics       []func() Metric
}

func NewSweep(base Params, diffusivities []float64) *Sweep {
	return &Sweep{base: base, diffusivities: diffusivities}
}

// AddMetric registers a metric constructor; each run gets a fresh instance.
func (sw *Sweep) AddMetric(newMetric func() Metric) {
	sw.metrics = append(sw.metrics, newMetric)
}

func (sw *Sweep) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, len(sw.diffusivities))
	errs := make([]error, len(sw.diffusivities))

	var wg sync.WaitGroup
	for i, d := range sw.diffusivities {
		wg.Add(1)
		go func(idx int, diffusivity float64) {
			defer wg.Done()

			p := sw.base
			p.Diffusivity = diffusivity

			s := New(p)
			for _, newMetric := range sw.metrics {
				s.AddMetric(newMetric())
			}

			results[idx], errs[idx] = s.Run(ctx)
		}(i, d)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
