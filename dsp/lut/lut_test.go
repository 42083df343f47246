package lut

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cwbudde/sinlut/coe"
	"github.com/cwbudde/sinlut/dsp/quantize"
	"github.com/cwbudde/sinlut/internal/testutil"
)

func writeAndParse(t *testing.T, cfg Config) testutil.COEFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := WriteFile(path, cfg); err != nil {
		t.Fatalf("WriteFile(%v) error = %v", cfg, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	f, err := testutil.ParseCOE(data)
	if err != nil {
		t.Fatalf("ParseCOE() error = %v", err)
	}
	return f
}

func decode(t *testing.T, f testutil.COEFile, bits int) []int {
	t.Helper()
	out := make([]int, len(f.Tokens))
	for i, tok := range f.Tokens {
		switch f.Radix {
		case 16:
			u, err := strconv.ParseUint(tok, 16, 64)
			if err != nil {
				t.Fatalf("entry %d %q: %v", i, tok, err)
			}
			out[i] = quantize.FromTwosComplement(u, bits)
		case 10:
			v, err := strconv.Atoi(tok)
			if err != nil {
				t.Fatalf("entry %d %q: %v", i, tok, err)
			}
			out[i] = v
		default:
			t.Fatalf("unexpected radix %d", f.Radix)
		}
	}
	return out
}

func TestQuarterWaveFile(t *testing.T) {
	cfg := QuarterWave()
	f := writeAndParse(t, cfg)

	if f.Radix != 16 {
		t.Fatalf("radix = %d, want 16", f.Radix)
	}
	if len(f.Tokens) != 512 {
		t.Fatalf("entries = %d, want 512", len(f.Tokens))
	}
	if f.Tokens[0] != "0000" || f.Delims[0] != ',' {
		t.Fatalf("line 0 = %q%c, want 0000,", f.Tokens[0], f.Delims[0])
	}
	if f.Tokens[511] != "7FFF" || f.Delims[511] != ';' {
		t.Fatalf("line 511 = %q%c, want 7FFF;", f.Tokens[511], f.Delims[511])
	}

	values := decode(t, f, cfg.BitWidth)
	testutil.RequireCodeNear(t, "last", values[511], 32767, 1)
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			t.Fatalf("quarter wave decreases at %d: %d < %d", i, values[i], values[i-1])
		}
	}
}

func TestFullWaveFile(t *testing.T) {
	cfg := FullWave()
	f := writeAndParse(t, cfg)

	if f.Radix != 10 {
		t.Fatalf("radix = %d, want 10", f.Radix)
	}
	if len(f.Tokens) != 1024 {
		t.Fatalf("entries = %d, want 1024", len(f.Tokens))
	}
	if f.Tokens[0] != "0" || f.Delims[0] != ',' {
		t.Fatalf("line 0 = %q%c, want 0,", f.Tokens[0], f.Delims[0])
	}

	values := decode(t, f, cfg.BitWidth)
	testutil.RequireCodeNear(t, "values[256]", values[256], 32767, 1)
	testutil.RequireCodeNear(t, "values[768]", values[768], -32767, 1)
	testutil.RequireCodeNear(t, "values[512]", values[512], 0, 1)
}

func TestFileProperties(t *testing.T) {
	configs := []Config{
		QuarterWave(),
		FullWave(),
		NewConfig(FullWave(), WithRadix(coe.Radix16)),
		NewConfig(QuarterWave(), WithRadix(coe.Radix10)),
		NewConfig(FullWave(), WithNumSamples(100), WithBitWidth(12), WithRadix(coe.Radix16)),
		NewConfig(FullWave(), WithNumSamples(33), WithBitWidth(14)),
		NewConfig(QuarterWave(), WithNumSamples(7), WithBitWidth(5), WithPhaseRange(math.Pi)),
		NewConfig(FullWave(), WithNumSamples(1), WithBitWidth(8), WithRadix(coe.Radix16)),
	}
	for _, cfg := range configs {
		t.Run(cfg.String(), func(t *testing.T) {
			f := writeAndParse(t, cfg)
			if f.Radix != int(cfg.Radix) {
				t.Fatalf("radix = %d, want %d", f.Radix, cfg.Radix)
			}
			if len(f.Tokens) != cfg.NumSamples {
				t.Fatalf("entries = %d, want %d", len(f.Tokens), cfg.NumSamples)
			}
			for i, d := range f.Delims {
				want := byte(',')
				if i == len(f.Delims)-1 {
					want = ';'
				}
				if d != want {
					t.Fatalf("entry %d delimiter = %q, want %q", i, d, want)
				}
			}

			if cfg.Radix == coe.Radix16 {
				for i, tok := range f.Tokens {
					if len(tok) != cfg.HexDigits() {
						t.Fatalf("entry %d %q: want %d digits", i, tok, cfg.HexDigits())
					}
					if strings.Trim(tok, "0123456789ABCDEF") != "" {
						t.Fatalf("entry %d %q: not uppercase hex", i, tok)
					}
				}
			}

			m := float64(cfg.MaxMagnitude())
			values := decode(t, f, cfg.BitWidth)
			step := cfg.PhaseStep()
			for i, v := range values {
				if math.Abs(float64(v)) > m {
					t.Fatalf("entry %d = %d outside ±%v", i, v, m)
				}
				ideal := math.Sin(float64(i) * step)
				if err := math.Abs(float64(v)/m - ideal); err > 1/m {
					t.Fatalf("entry %d: %d/%v differs from sin by %v > 1 LSB", i, v, m, err)
				}
			}
		})
	}
}

func TestGenerateMatchesFile(t *testing.T) {
	cfg := NewConfig(FullWave(), WithRadix(coe.Radix16))
	f := writeAndParse(t, cfg)
	values := decode(t, f, cfg.BitWidth)
	gen := Generate(cfg)
	for i := range gen {
		if gen[i] != values[i] {
			t.Fatalf("entry %d: file %d, Generate %d", i, values[i], gen[i])
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(QuarterWave())
	b := Generate(QuarterWave())
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("entry %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestGenerateHalfLSBError(t *testing.T) {
	cfg := FullWave()
	got := Generate(cfg)
	ideal := make([]float64, cfg.NumSamples)
	for i := range ideal {
		ideal[i] = math.Sin(float64(i)*cfg.PhaseStep()) * float64(cfg.MaxMagnitude())
	}
	if e := testutil.MaxCodeError(got, ideal); e < 0 || e > 0.5 {
		t.Fatalf("max error = %v LSB, want <= 0.5", e)
	}
}

func TestGenerateEmpty(t *testing.T) {
	if got := Generate(NewConfig(FullWave(), WithNumSamples(0))); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := WriteFile(path, FullWave()); err != nil {
		t.Fatal(err)
	}
	small := NewConfig(FullWave(), WithNumSamples(4))
	if err := WriteFile(path, small); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "memory_initialization_radix=10;\nmemory_initialization_vector=\n0,\n32767,\n0,\n-32767;\n"
	if string(data) != want {
		t.Fatalf("file = %q, want %q", data, want)
	}
}

func TestPreset(t *testing.T) {
	for _, p := range Presets() {
		cfg, err := Preset(p.Name)
		if err != nil {
			t.Fatalf("Preset(%q) error = %v", p.Name, err)
		}
		if cfg != p.Config {
			t.Fatalf("Preset(%q) = %v, want %v", p.Name, cfg, p.Config)
		}
	}
	if _, err := Preset("triangle"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("Preset(triangle) error = %v, want ErrUnknownPreset", err)
	}
}

func TestNewConfigDoesNotMutateBase(t *testing.T) {
	base := QuarterWave()
	_ = NewConfig(base, WithNumSamples(3), nil, WithBitWidth(8))
	if base != QuarterWave() {
		t.Fatalf("base mutated: %v", base)
	}
}

func TestConfigDerived(t *testing.T) {
	cfg := QuarterWave()
	if cfg.MaxMagnitude() != 32767 {
		t.Fatalf("MaxMagnitude = %d", cfg.MaxMagnitude())
	}
	if cfg.HexDigits() != 4 {
		t.Fatalf("HexDigits = %d", cfg.HexDigits())
	}
	if cfg.PhaseStep() != math.Pi/1024 {
		t.Fatalf("PhaseStep = %v", cfg.PhaseStep())
	}
}
