// Package analysis provides post-run analysis of diffusion profiles.
//
// A Dirichlet diffusion run relaxes toward the linear steady-state ramp
// between its boundary values, and the deviation from that ramp decays
// exponentially. The package measures that decay:
//
//   - [Deviations]: RMS distance of each recorded profile from the ramp
//   - [DecayRate]: least-squares exponential relaxation rate
//
// # Relaxation rate
//
// For the continuous equation the slowest mode decays at D*(pi/L)²; the
// fitted rate approaches it as the grid is refined:
//
//	dev := analysis.Deviations(profiles, left, right)
//	rate := analysis.DecayRate(times, dev)
package analysis
