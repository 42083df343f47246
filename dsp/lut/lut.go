// Package lut builds quantized sine lookup tables and writes them as
// memory-initialization files.
//
// Generation and serialization are separate steps: Generate is a pure
// function of a Config, and WriteFile hands its result to package coe.
package lut

import (
	"github.com/cwbudde/sinlut/coe"
	"github.com/cwbudde/sinlut/dsp/quantize"
	"github.com/cwbudde/sinlut/dsp/signal"
)

// Generate returns the NumSamples quantized sine codes described by cfg.
//
// Entry i is round(sin(i*PhaseRange/NumSamples) * (2^(BitWidth-1)-1)),
// rounded half away from zero. Parameters are not validated.
func Generate(cfg Config) []int {
	samples := signal.SineTable(cfg.PhaseRange, cfg.NumSamples)
	out := make([]int, len(samples))
	quantize.Quantize(out, samples, cfg.BitWidth)
	return out
}

// WriteFile generates the table for cfg and writes it to path, replacing
// any existing content.
func WriteFile(path string, cfg Config) error {
	return coe.WriteFile(path, cfg.Radix, cfg.BitWidth, Generate(cfg))
}
