package signal

import "math"

// PhaseStep returns the phase increment between consecutive table entries
// when phaseRange is swept in samples steps.
func PhaseStep(phaseRange float64, samples int) float64 {
	return phaseRange / float64(samples)
}

// SineTable samples sin over [0, phaseRange) at samples evenly spaced
// phases. Entry i holds sin(i * phaseRange/samples); the end point itself
// is never sampled.
func SineTable(phaseRange float64, samples int) []float64 {
	if samples <= 0 {
		return []float64{}
	}
	out := make([]float64, samples)
	step := PhaseStep(phaseRange, samples)
	for i := range out {
		out[i] = math.Sin(step * float64(i))
	}
	return out
}
