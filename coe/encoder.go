package coe

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const (
	radixKey  = "memory_initialization_radix"
	vectorKey = "memory_initialization_vector"
)

// Encoder writes a single COE table to an underlying writer.
type Encoder struct {
	w     *bufio.Writer
	radix Radix
	bits  int
}

// NewEncoder returns an Encoder writing bits-wide values in the given radix.
func NewEncoder(w io.Writer, radix Radix, bits int) *Encoder {
	return &Encoder{
		w:     bufio.NewWriter(w),
		radix: radix,
		bits:  bits,
	}
}

// Encode writes the header and values, then flushes. Every entry but the
// last ends with a comma; the last ends with a semicolon. An empty table
// produces the header only.
func (e *Encoder) Encode(values []int) error {
	if _, err := fmt.Fprintf(e.w, "%s=%s;\n%s=\n", radixKey, e.radix, vectorKey); err != nil {
		return fmt.Errorf("coe: write header: %w", err)
	}

	for i, v := range values {
		delim := ','
		if i == len(values)-1 {
			delim = ';'
		}
		if _, err := e.w.WriteString(FormatValue(v, e.bits, e.radix)); err != nil {
			return fmt.Errorf("coe: write entry %d: %w", i, err)
		}
		if _, err := e.w.WriteRune(delim); err != nil {
			return fmt.Errorf("coe: write entry %d: %w", i, err)
		}
		if err := e.w.WriteByte('\n'); err != nil {
			return fmt.Errorf("coe: write entry %d: %w", i, err)
		}
	}

	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("coe: flush: %w", err)
	}
	return nil
}

// WriteFile creates or truncates path and encodes values into it.
// The file is closed on every return path.
func WriteFile(path string, radix Radix, bits int, values []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("coe: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("coe: close %s: %w", path, cerr)
		}
	}()

	return NewEncoder(f, radix, bits).Encode(values)
}
