// Package viz renders concentration profiles in the terminal.
//
// Two collaborators live here, both strictly downstream of the simulation:
// [PlotProfile] draws a profile as an asciigraph line plot, and [Reporter]
// writes one human-readable line per time step when plotting is disabled.
// Neither feeds anything back into the run.
//
// The live view ([NewLive]) wraps a run in a Bubble Tea program that steps
// the field at a fixed frame rate.
package viz
