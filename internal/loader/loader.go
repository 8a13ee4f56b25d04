// Package loader handles reading hex text input files.
package loader

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Loader reads hex text files and returns their non-blank lines.
type Loader struct{}

// New creates a new hex text loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the given file and returns its lines with surrounding
// whitespace removed. Blank lines are dropped, the order of the remaining
// lines is preserved.
func (l *Loader) Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	lines, err := l.LoadReader(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return lines, nil
}

// LoadReader returns the trimmed non-blank lines of the reader content.
func (l *Loader) LoadReader(r io.Reader) ([]string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
