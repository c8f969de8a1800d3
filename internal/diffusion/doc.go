// Package diffusion provides the numerical core for one-dimensional
// constant-diffusivity diffusion on a uniform grid.
//
// The package defines the building blocks a simulation run is assembled from:
//
//   - [Grid]: evenly spaced spatial coordinates
//   - [Field]: the concentration values, one per grid point
//   - [StepProfile]: the initial step-function concentration
//   - [StableTimeStep]: the von Neumann stability bound, halved
//   - [Step]: one explicit FTCS update of a field's interior
//
// The discretized equation solved by [Step]:
//
//	C[i] += D*dt/dx² * (C[i+1] - 2*C[i] + C[i-1])
//
// with all neighbor values read from the field as it was before the call
// (the scheme is explicit and assumes simultaneous updates).
//
// Step never validates stability. A dt larger than the bound returned by
// [StableTimeStep] produces growing oscillations rather than an error; the
// caller owns that contract.
package diffusion
