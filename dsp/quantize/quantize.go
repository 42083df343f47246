// Package quantize maps normalized samples in [-1, +1] to signed
// fixed-point integer codes and converts codes to and from their
// two's-complement bit patterns.
package quantize

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// MaxMagnitude returns the largest code magnitude of a signed bits-wide
// word that keeps the range symmetric: 2^(bits-1) - 1.
func MaxMagnitude(bits int) int {
	return 1<<(bits-1) - 1
}

// Quantize scales src by MaxMagnitude(bits) and rounds each value into dst.
// dst must be at least len(src) long.
//
// Rounding is math.Round: halfway cases round away from zero.
func Quantize(dst []int, src []float64, bits int) {
	if len(src) == 0 {
		return
	}
	scaled := make([]float64, len(src))
	vecmath.ScaleBlock(scaled, src, float64(MaxMagnitude(bits)))
	for i, v := range scaled {
		dst[i] = int(math.Round(v))
	}
}

// Value quantizes a single sample. It matches Quantize element-wise.
func Value(x float64, bits int) int {
	return int(math.Round(x * float64(MaxMagnitude(bits))))
}

// Mask returns a mask covering the low bits bits of a word.
func Mask(bits int) uint64 {
	return uint64(1)<<bits - 1
}

// TwosComplement returns the bits-wide two's-complement pattern of v.
func TwosComplement(v, bits int) uint64 {
	return uint64(v) & Mask(bits)
}

// FromTwosComplement sign-extends a bits-wide pattern back to a signed value.
func FromTwosComplement(u uint64, bits int) int {
	shift := 64 - bits
	return int(int64(u<<shift) >> shift)
}
