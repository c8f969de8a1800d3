package analysis

import "math"

// Deviations returns the RMS distance of each profile from the linear ramp
// between left and right. One value per profile; zero for profiles shorter
// than two points.
func Deviations(profiles [][]float64, left, right float64) []float64 {
	out := make([]float64, len(profiles))
	for k, c := range profiles {
		n := len(c)
		if n < 2 {
			continue
		}
		sum := 0.0
		for i, v := range c {
			ramp := left + (right-left)*float64(i)/float64(n-1)
			d := v - ramp
			sum += d * d
		}
		out[k] = math.Sqrt(sum / float64(n))
	}
	return out
}

// DecayRate fits dev(t) = A*exp(-rate*t) by least squares on ln(dev) and
// returns the rate. Non-positive deviations are skipped; fewer than two
// usable samples yield zero. A positive rate means the profile is relaxing.
func DecayRate(times, deviations []float64) float64 {
	n := len(times)
	if len(deviations) < n {
		n = len(deviations)
	}

	var sumT, sumY, sumTT, sumTY float64
	count := 0
	for i := 0; i < n; i++ {
		if deviations[i] <= 0 {
			continue
		}
		t, y := times[i], math.Log(deviations[i])
		sumT += t
		sumY += y
		sumTT += t * t
		sumTY += t * y
		count++
	}
	if count < 2 {
		return 0
	}

	denom := float64(count)*sumTT - sumT*sumT
	if denom == 0 {
		return 0
	}
	slope := (float64(count)*sumTY - sumT*sumY) / denom
	return -slope
}
