package metrics

import "github.com/san-kum/diffsim/internal/diffusion"

// Bounds measures how often the profile stays inside the band spanned by the
// two boundary concentrations. Under the discrete maximum principle a stable
// run never leaves the band, so a value below 1.0 is the signature of an
// unstable time step.
type Bounds struct {
	name       string
	lo, hi     float64
	violations int
	samples    int
}

func NewBounds(left, right float64) *Bounds {
	lo, hi := left, right
	if lo > hi {
		lo, hi = hi, lo
	}
	return &Bounds{name: "bounds", lo: lo, hi: hi}
}

func (b *Bounds) Name() string { return b.name }

func (b *Bounds) Observe(c diffusion.Field, t float64) {
	b.samples++
	for _, v := range c {
		if v < b.lo || v > b.hi {
			b.violations++
			break
		}
	}
}

// Value returns the fraction of observed profiles that stayed in band.
func (b *Bounds) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *Bounds) Reset() {
	b.violations = 0
	b.samples = 0
}
