package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/diffsim/internal/diffusion"
)

// Simulator owns one diffusion run: it builds the grid, the stable time step
// and the initial profile, then drives the explicit stepper for the requested
// number of steps, reasserting the fixed boundary values after every step.
//
// A run is strictly sequential. The Simulator holds the only reference to the
// concentration field it mutates; observers and metrics see the live buffer
// and must not retain or modify it.
type Simulator struct {
	params    Params
	metrics   []Metric
	observers []Observer
}

func New(params Params) *Simulator {
	return &Simulator{
		params:    params,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Params() Params { return s.params }

// Run executes the full simulation. On cancellation the partial result is
// returned along with ctx.Err(). No other error leaves the field in a
// partially stepped state: parameters are validated before anything is built.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	p := s.params
	if err := p.validate(); err != nil {
		return nil, err
	}

	grid, err := diffusion.NewGrid(p.Origin, p.DomainSize, p.Spacing)
	if err != nil {
		return nil, err
	}
	if grid.Len() < 3 && p.Steps > 0 {
		return nil, fmt.Errorf("%w: grid has %d points", diffusion.ErrFieldTooShort, grid.Len())
	}

	dt, err := diffusion.StableTimeStep(p.Spacing, p.Diffusivity)
	if err != nil {
		return nil, err
	}

	c := diffusion.StepProfile(grid.Len(), p.BoundaryLeft, p.BoundaryRight)

	stride := p.RecordEvery
	if stride < 1 {
		stride = 1
	}

	result := &Result{
		Grid:     grid,
		Dt:       dt,
		Profiles: make([]diffusion.Field, 0, p.Steps/stride+2),
		Times:    make([]float64, 0, p.Steps/stride+2),
		Metrics:  make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	t := 0.0
	result.Profiles = append(result.Profiles, c.Clone())
	result.Times = append(result.Times, t)

	for k := 0; k < p.Steps; k++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range s.metrics {
			m.Observe(c, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(c, t)
		}

		if err := diffusion.Step(c, p.Spacing, dt, p.Diffusivity); err != nil {
			return result, err
		}
		c[0] = p.BoundaryLeft
		c[len(c)-1] = p.BoundaryRight

		t = float64(k+1) * dt
		result.StepsTaken++

		if (k+1)%stride == 0 || k == p.Steps-1 {
			result.Profiles = append(result.Profiles, c.Clone())
			result.Times = append(result.Times, t)
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (p Params) validate() error {
	if p.Diffusivity <= 0 {
		return fmt.Errorf("%w: diffusivity must be positive, got %g", diffusion.ErrInvalidParameter, p.Diffusivity)
	}
	if p.DomainSize <= 0 {
		return fmt.Errorf("%w: domain size must be positive, got %g", diffusion.ErrInvalidParameter, p.DomainSize)
	}
	if p.Spacing <= 0 {
		return fmt.Errorf("%w: spacing must be positive, got %g", diffusion.ErrInvalidParameter, p.Spacing)
	}
	if p.Steps < 0 {
		return fmt.Errorf("%w: step count must be non-negative, got %d", diffusion.ErrInvalidParameter, p.Steps)
	}
	return nil
}
