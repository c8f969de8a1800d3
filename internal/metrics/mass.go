package metrics

import "github.com/san-kum/diffsim/internal/diffusion"

// Mass tracks the total concentration over the interior of the field. With
// fixed unequal boundaries mass drifts toward the steady-state value as the
// profile relaxes; with equal boundaries it converges to boundary*interior.
type Mass struct {
	name    string
	current float64
	samples int
}

func NewMass() *Mass {
	return &Mass{name: "mass"}
}

func (m *Mass) Name() string { return m.name }

func (m *Mass) Observe(c diffusion.Field, t float64) {
	m.current = c.InteriorSum()
	m.samples++
}

// Value returns the most recently observed interior mass.
func (m *Mass) Value() float64 {
	return m.current
}

func (m *Mass) Reset() {
	m.current = 0
	m.samples = 0
}
