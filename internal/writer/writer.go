// Package writer implements the output of record lines.
package writer

import (
	"fmt"
	"io"
)

// Writer writes newline terminated lines to an underlying io.Writer.
type Writer struct {
	writer io.Writer
	lines  int
}

// New creates a new line writer.
func New(writer io.Writer) *Writer {
	return &Writer{
		writer: writer,
	}
}

// WriteLine writes the line followed by a newline.
func (w *Writer) WriteLine(line string) error {
	if _, err := fmt.Fprintf(w.writer, "%s\n", line); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	w.lines++
	return nil
}

// Lines returns the number of lines written successfully.
func (w *Writer) Lines() int {
	return w.lines
}
