package diffusion

import "errors"

// Domain errors for the numerical core.
var (
	// ErrInvalidParameter indicates a non-positive spacing, diffusivity,
	// domain size, or time step passed to a component.
	ErrInvalidParameter = errors.New("diffusion: invalid parameter")

	// ErrFieldTooShort indicates a concentration field with fewer than
	// three points, which has no interior to update.
	ErrFieldTooShort = errors.New("diffusion: field shorter than 3 points")
)
