package diffusion

// StepProfile builds the initial concentration field: a step function with
// left on indices [0, n/2) and right on [n/2, n), the jump at the domain
// midpoint.
//
// For n=0 the result is empty; for n=1 it holds a single element equal to
// right, because the left half [0, 0) is empty under integer halving.
func StepProfile(n int, left, right float64) Field {
	c := make(Field, n)
	half := n / 2
	for i := range c {
		if i < half {
			c[i] = left
		} else {
			c[i] = right
		}
	}
	return c
}
