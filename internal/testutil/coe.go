package testutil

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// COEFile is a parsed memory-initialization file.
type COEFile struct {
	Radix int
	// Tokens holds the vector entries with their delimiters stripped.
	Tokens []string
	// Delims holds the delimiter that ended each entry (',' or ';').
	Delims []byte
}

// ParseCOE parses the layout written by package coe: a radix line, a vector
// line, then one entry per line ending with ',' or ';'.
func ParseCOE(data []byte) (COEFile, error) {
	var f COEFile
	sc := bufio.NewScanner(bytes.NewReader(data))

	if !sc.Scan() {
		return f, fmt.Errorf("missing radix line")
	}
	radixLine := sc.Text()
	const radixPrefix = "memory_initialization_radix="
	if !strings.HasPrefix(radixLine, radixPrefix) || !strings.HasSuffix(radixLine, ";") {
		return f, fmt.Errorf("bad radix line %q", radixLine)
	}
	radix, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(radixLine, radixPrefix), ";"))
	if err != nil {
		return f, fmt.Errorf("bad radix line %q: %w", radixLine, err)
	}
	f.Radix = radix

	if !sc.Scan() || sc.Text() != "memory_initialization_vector=" {
		return f, fmt.Errorf("missing vector line")
	}

	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			return f, fmt.Errorf("empty line after entry %d", len(f.Tokens))
		}
		delim := line[len(line)-1]
		if delim != ',' && delim != ';' {
			return f, fmt.Errorf("entry %d %q has no delimiter", len(f.Tokens), line)
		}
		f.Tokens = append(f.Tokens, line[:len(line)-1])
		f.Delims = append(f.Delims, delim)
	}
	return f, sc.Err()
}
