package diffusion

import "math"

// Field is a concentration profile, one value per grid point.
type Field []float64

func (f Field) Clone() Field {
	c := make(Field, len(f))
	copy(c, f)
	return c
}

func (f Field) IsValid() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Sum returns the total concentration over all points.
func (f Field) Sum() float64 {
	sum := 0.0
	for _, v := range f {
		sum += v
	}
	return sum
}

// InteriorSum returns the total concentration excluding the two boundary
// points. Zero for fields shorter than three points.
func (f Field) InteriorSum() float64 {
	if len(f) < 3 {
		return 0
	}
	sum := 0.0
	for _, v := range f[1 : len(f)-1] {
		sum += v
	}
	return sum
}

func (f Field) Min() float64 {
	if len(f) == 0 {
		return 0
	}
	min := f[0]
	for _, v := range f[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func (f Field) Max() float64 {
	if len(f) == 0 {
		return 0
	}
	max := f[0]
	for _, v := range f[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
