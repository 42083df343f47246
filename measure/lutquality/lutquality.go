// Package lutquality measures how faithfully a quantized sine table
// reproduces the ideal sine: per-entry reconstruction error in LSB and,
// for tables spanning whole cycles, FFT-based SINAD, SFDR and ENOB.
package lutquality

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/sinlut/dsp/quantize"
)

const cycleTolerance = 1e-9

// Config describes how the codes were produced.
type Config struct {
	PhaseRange float64
	BitWidth   int
}

// Result holds table quality measurements.
type Result struct {
	Samples     int
	MinCode     int
	PeakCode    int
	MaxErrorLSB float64
	RMSErrorLSB float64

	// Spectral is set when the fields below were computed.
	Spectral bool
	Cycles   int
	SINAD    float64 // dB
	SFDR     float64 // dB
	ENOB     float64 // bits
}

// Analyze measures codes against sin(i*PhaseRange/len(codes)) scaled to
// full scale. Spectral metrics need a power-of-two length and a phase range
// that is a whole number of cycles below Nyquist.
func Analyze(codes []int, cfg Config) Result {
	n := len(codes)
	if n == 0 {
		return Result{}
	}

	res := Result{
		Samples:  n,
		MinCode:  codes[0],
		PeakCode: codes[0],
	}

	m := float64(quantize.MaxMagnitude(cfg.BitWidth))
	step := cfg.PhaseRange / float64(n)
	sumSq := 0.0
	for i, c := range codes {
		res.MinCode = min(res.MinCode, c)
		res.PeakCode = max(res.PeakCode, c)

		e := math.Abs(float64(c) - math.Sin(step*float64(i))*m)
		res.MaxErrorLSB = math.Max(res.MaxErrorLSB, e)
		sumSq += e * e
	}
	res.RMSErrorLSB = math.Sqrt(sumSq / float64(n))

	cycles, ok := wholeCycles(cfg.PhaseRange, n)
	if !ok || m <= 0 {
		return res
	}
	if spectral(codes, m, cycles, &res) {
		res.Spectral = true
		res.Cycles = cycles
	}
	return res
}

func wholeCycles(phaseRange float64, n int) (int, bool) {
	if n < 4 || n&(n-1) != 0 {
		return 0, false
	}
	c := phaseRange / (2 * math.Pi)
	k := math.Round(c)
	if math.Abs(c-k) > cycleTolerance || k < 1 || int(k) >= n/2 {
		return 0, false
	}
	return int(k), true
}

func spectral(codes []int, fullScale float64, k int, res *Result) bool {
	n := len(codes)
	in := make([]complex128, n)
	for i, c := range codes {
		in[i] = complex(float64(c)/fullScale, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return false
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return false
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	// DC is excluded from both noise and spurs.
	signal := power[k]
	noise, spur := 0.0, 0.0
	for j := 1; j < bins; j++ {
		if j == k {
			continue
		}
		noise += power[j]
		spur = math.Max(spur, power[j])
	}

	res.SINAD = ratioDB(signal, noise)
	res.SFDR = ratioDB(signal, spur)
	res.ENOB = (res.SINAD - 1.76) / 6.02
	return true
}

func ratioDB(num, den float64) float64 {
	if den == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(num/den)
}
