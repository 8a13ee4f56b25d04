package writer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	assert.NoError(t, w.WriteLine(":0100100042AD"))
	assert.NoError(t, w.WriteLine(":0000000000"))
	assert.Equal(t, ":0100100042AD\n:0000000000\n", buf.String())
	assert.Equal(t, 2, w.Lines())
}

func TestWriteLineError(t *testing.T) {
	errWrite := errors.New("disk full")
	w := New(failingWriter{err: errWrite})

	err := w.WriteLine(":0100100042AD")
	assert.True(t, errors.Is(err, errWrite))
	assert.Equal(t, 0, w.Lines())
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}
