package diffusion

import (
	"fmt"
	"math"
)

// Grid is an immutable sequence of evenly spaced spatial coordinates
// spanning [origin, origin+domainSize).
type Grid struct {
	origin  float64
	spacing float64
	coords  []float64
}

// NewGrid builds the coordinates origin, origin+spacing, origin+2*spacing, ...
// stopping strictly before origin+domainSize. The point count is
// ceil(domainSize/spacing).
func NewGrid(origin, domainSize, spacing float64) (*Grid, error) {
	if spacing <= 0 {
		return nil, fmt.Errorf("%w: spacing must be positive, got %g", ErrInvalidParameter, spacing)
	}
	if domainSize <= 0 {
		return nil, fmt.Errorf("%w: domain size must be positive, got %g", ErrInvalidParameter, domainSize)
	}

	n := int(math.Ceil(domainSize / spacing))
	coords := make([]float64, n)
	for i := range coords {
		coords[i] = origin + float64(i)*spacing
	}

	return &Grid{origin: origin, spacing: spacing, coords: coords}, nil
}

func (g *Grid) Len() int         { return len(g.coords) }
func (g *Grid) Origin() float64  { return g.origin }
func (g *Grid) Spacing() float64 { return g.spacing }

// Coords returns the coordinate slice. Callers must not modify it.
func (g *Grid) Coords() []float64 { return g.coords }
