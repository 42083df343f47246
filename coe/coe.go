// Package coe writes memory-initialization (.coe) files: a radix
// declaration followed by a comma-delimited, semicolon-terminated vector of
// integer values, one per line.
//
// A table of three 16-bit values in radix 16 is written as
//
//	memory_initialization_radix=16;
//	memory_initialization_vector=
//	0000,
//	7FFF,
//	8001;
package coe

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/sinlut/dsp/quantize"
)

// Radix selects the textual number base of the vector entries.
type Radix int

const (
	// Radix10 writes plain signed decimal integers.
	Radix10 Radix = 10
	// Radix16 writes uppercase, zero-padded two's-complement bit patterns.
	Radix16 Radix = 16
)

// String returns the radix as it appears in the file header.
func (r Radix) String() string {
	return strconv.Itoa(int(r))
}

// HexDigits returns the number of hex digits needed for a bits-wide word.
func HexDigits(bits int) int {
	return (bits + 3) / 4
}

// FormatValue renders v as a vector entry without delimiter.
//
// Radix16 masks v to bits bits and pads to HexDigits(bits) uppercase digits.
// Any other radix renders the signed decimal value unchanged.
func FormatValue(v, bits int, radix Radix) string {
	if radix == Radix16 {
		return fmt.Sprintf("%0*X", HexDigits(bits), quantize.TwosComplement(v, bits))
	}
	return strconv.Itoa(v)
}
