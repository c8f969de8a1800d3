package analysis

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/diffsim/internal/sim"
)

func TestDeviations(t *testing.T) {
	profiles := [][]float64{
		{500, 375, 250, 125, 0}, // exact ramp
		{500, 500, 500, 0, 0},   // step
	}

	dev := Deviations(profiles, 500, 0)
	if len(dev) != 2 {
		t.Fatalf("expected 2 deviations, got %d", len(dev))
	}
	if dev[0] > 1e-12 {
		t.Errorf("ramp deviation should be zero, got %g", dev[0])
	}
	if dev[1] <= dev[0] {
		t.Errorf("step should deviate more than ramp: %g vs %g", dev[1], dev[0])
	}
}

func TestDeviationsDegenerate(t *testing.T) {
	dev := Deviations([][]float64{{}, {1}}, 500, 0)
	if dev[0] != 0 || dev[1] != 0 {
		t.Errorf("short profiles should yield zero deviation: %v", dev)
	}
}

func TestDecayRateSynthetic(t *testing.T) {
	// dev(t) = 3*exp(-2t) must fit to rate 2 exactly.
	times := make([]float64, 50)
	devs := make([]float64, 50)
	for i := range times {
		times[i] = float64(i) * 0.1
		devs[i] = 3 * math.Exp(-2*times[i])
	}

	rate := DecayRate(times, devs)
	if math.Abs(rate-2) > 1e-9 {
		t.Errorf("expected rate 2, got %g", rate)
	}
}

func TestDecayRateTooFewSamples(t *testing.T) {
	if rate := DecayRate([]float64{0}, []float64{1}); rate != 0 {
		t.Errorf("expected 0 for a single sample, got %g", rate)
	}
	if rate := DecayRate([]float64{0, 1}, []float64{0, -1}); rate != 0 {
		t.Errorf("expected 0 for non-positive deviations, got %g", rate)
	}
}

func TestDecayRateFromRun(t *testing.T) {
	run := func(d float64) float64 {
		p := sim.Params{
			Diffusivity:   d,
			DomainSize:    30,
			Spacing:       0.5,
			Steps:         4000,
			BoundaryLeft:  500,
			BoundaryRight: 0,
			RecordEvery:   50,
		}
		result, err := sim.New(p).Run(context.Background())
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}

		profiles := make([][]float64, len(result.Profiles))
		for i, c := range result.Profiles {
			profiles[i] = c
		}
		return DecayRate(result.Times, Deviations(profiles, 500, 0))
	}

	slow := run(100)
	fast := run(200)

	if slow <= 0 {
		t.Fatalf("expected positive relaxation rate, got %g", slow)
	}
	if fast <= slow {
		t.Errorf("doubling diffusivity should speed relaxation: %g vs %g", fast, slow)
	}
}
