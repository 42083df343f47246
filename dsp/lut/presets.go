package lut

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/sinlut/coe"
)

// ErrUnknownPreset is returned by Preset for names not in Presets.
var ErrUnknownPreset = errors.New("lut: unknown preset")

// DefaultFile is the file name both presets are written to.
const DefaultFile = "sin_LUT.coe"

// QuarterWave is the 512-entry, 16-bit quarter-period table in radix 16.
// Entries rise from 0 toward full scale without reaching π/2.
func QuarterWave() Config {
	return Config{
		NumSamples: 512,
		BitWidth:   16,
		PhaseRange: math.Pi / 2,
		Radix:      coe.Radix16,
	}
}

// FullWave is the 1024-entry, 16-bit full-period table in radix 10.
func FullWave() Config {
	return Config{
		NumSamples: 1024,
		BitWidth:   16,
		PhaseRange: 2 * math.Pi,
		Radix:      coe.Radix10,
	}
}

// NamedConfig pairs a preset with its name.
type NamedConfig struct {
	Name   string
	Config Config
}

// Presets returns the named configurations in a stable order.
func Presets() []NamedConfig {
	return []NamedConfig{
		{"quarter", QuarterWave()},
		{"full", FullWave()},
	}
}

// Preset looks up a configuration by name.
func Preset(name string) (Config, error) {
	for _, p := range Presets() {
		if p.Name == name {
			return p.Config, nil
		}
	}
	return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
