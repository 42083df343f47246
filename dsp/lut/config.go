package lut

import (
	"fmt"

	"github.com/cwbudde/sinlut/coe"
	"github.com/cwbudde/sinlut/dsp/quantize"
)

// Config is the complete parameter set of a sine table.
type Config struct {
	// NumSamples is the number of table entries.
	NumSamples int
	// BitWidth is the signed fixed-point word width of each entry.
	BitWidth int
	// PhaseRange is the total phase swept by the table, in radians.
	// Entry i sits at phase i*PhaseRange/NumSamples.
	PhaseRange float64
	// Radix is the number base used when the table is written out.
	Radix coe.Radix
}

// Option mutates a Config.
type Option func(*Config)

// WithNumSamples sets the table length.
func WithNumSamples(n int) Option {
	return func(cfg *Config) {
		cfg.NumSamples = n
	}
}

// WithBitWidth sets the word width.
func WithBitWidth(bits int) Option {
	return func(cfg *Config) {
		cfg.BitWidth = bits
	}
}

// WithPhaseRange sets the swept phase in radians.
func WithPhaseRange(phase float64) Option {
	return func(cfg *Config) {
		cfg.PhaseRange = phase
	}
}

// WithRadix sets the output radix.
func WithRadix(radix coe.Radix) Option {
	return func(cfg *Config) {
		cfg.Radix = radix
	}
}

// NewConfig returns base with opts applied in order.
func NewConfig(base Config, opts ...Option) Config {
	cfg := base
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// MaxMagnitude returns the largest code magnitude, 2^(BitWidth-1) - 1.
func (c Config) MaxMagnitude() int {
	return quantize.MaxMagnitude(c.BitWidth)
}

// HexDigits returns the width of a radix-16 entry.
func (c Config) HexDigits() int {
	return coe.HexDigits(c.BitWidth)
}

// PhaseStep returns the phase distance between adjacent entries.
func (c Config) PhaseStep() float64 {
	return c.PhaseRange / float64(c.NumSamples)
}

func (c Config) String() string {
	return fmt.Sprintf("samples=%d bits=%d phase=%.6f radix=%s",
		c.NumSamples, c.BitWidth, c.PhaseRange, c.Radix)
}
