package metrics

import (
	"math"

	"github.com/san-kum/diffsim/internal/diffusion"
)

// Flatness is the RMS deviation of the profile from the steady-state linear
// ramp between the two boundary concentrations. It decays toward zero as a
// Dirichlet run relaxes.
type Flatness struct {
	name        string
	left, right float64
	current     float64
	samples     int
}

func NewFlatness(left, right float64) *Flatness {
	return &Flatness{name: "flatness", left: left, right: right}
}

func (f *Flatness) Name() string { return f.name }

func (f *Flatness) Observe(c diffusion.Field, t float64) {
	f.samples++
	n := len(c)
	if n < 2 {
		f.current = 0
		return
	}

	sum := 0.0
	for i, v := range c {
		ramp := f.left + (f.right-f.left)*float64(i)/float64(n-1)
		d := v - ramp
		sum += d * d
	}
	f.current = math.Sqrt(sum / float64(n))
}

// Value returns the most recently observed RMS deviation.
func (f *Flatness) Value() float64 {
	return f.current
}

func (f *Flatness) Reset() {
	f.current = 0
	f.samples = 0
}
