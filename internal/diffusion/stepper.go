package diffusion

import "fmt"

// StableTimeStep returns 0.5*dx²/D, the von Neumann stability bound for the
// explicit FTCS scheme halved for safety margin. A larger step does not lose
// accuracy gracefully; it diverges.
func StableTimeStep(dx, diffusivity float64) (float64, error) {
	if dx <= 0 {
		return 0, fmt.Errorf("%w: grid spacing must be positive, got %g", ErrInvalidParameter, dx)
	}
	if diffusivity <= 0 {
		return 0, fmt.Errorf("%w: diffusivity must be positive, got %g", ErrInvalidParameter, diffusivity)
	}
	return 0.5 * dx * dx / diffusivity, nil
}

// Step applies one explicit FTCS update to the interior of c, in place.
// Every interior point reads its neighbors from the field as it was when the
// call began, never from values already updated in the same pass. The two
// boundary points are left untouched; reasserting fixed boundary values after
// each step is the caller's job.
//
// Stability is not checked here. Calling with dt above the bound from
// StableTimeStep produces unbounded growth, not an error.
func Step(c Field, dx, dt, diffusivity float64) error {
	if len(c) < 3 {
		return fmt.Errorf("%w: got %d", ErrFieldTooShort, len(c))
	}
	if dx <= 0 {
		return fmt.Errorf("%w: grid spacing must be positive, got %g", ErrInvalidParameter, dx)
	}

	r := diffusivity * dt / (dx * dx)

	// Carry the pre-update values along the sweep so only two scalars are
	// needed for snapshot semantics, not a full copy of the field.
	prev := c[0]
	for i := 1; i < len(c)-1; i++ {
		cur := c[i]
		c[i] += r * (c[i+1] - 2*cur + prev)
		prev = cur
	}
	return nil
}
