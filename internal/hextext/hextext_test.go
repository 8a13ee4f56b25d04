package hextext

import (
	"encoding/hex"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{name: "upper case", input: "02AB1D00", want: []byte{0x02, 0xAB, 0x1D, 0x00}},
		{name: "lower case", input: "deadbeef", want: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{name: "mixed case", input: "C0fFeE", want: []byte{0xC0, 0xFF, 0xEE}},
		{name: "empty", input: "", want: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		errContain string
	}{
		{name: "odd length", input: "02AB1", errContain: "odd length 5"},
		{name: "single digit", input: "A", errContain: "odd length 1"},
		{name: "invalid high digit", input: "02G1", errContain: "position 2"},
		{name: "invalid low digit", input: "020X", errContain: "position 3"},
		{name: "embedded space", input: "02 B", errContain: "position 2"},
		{name: "prefix", input: "0x12", errContain: "position 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedHexText))
			assert.ErrorContains(t, err, tt.errContain)
			assert.Nil(t, got)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))

	for range 100 {
		data := make([]byte, rnd.Intn(64))
		_, _ = rnd.Read(data)

		got, err := Parse(strings.ToUpper(hex.EncodeToString(data)))
		assert.NoError(t, err)
		assert.Equal(t, data, got)
	}
}

func TestParseLines(t *testing.T) {
	t.Run("concatenates in order", func(t *testing.T) {
		lines := []string{"02AB1D00", "DEADBEEF", "DEADC0DE", "C0FFEE00"}
		got, err := ParseLines(lines)
		assert.NoError(t, err)
		assert.Equal(t, []byte{
			0x02, 0xAB, 0x1D, 0x00, 0xDE, 0xAD, 0xBE, 0xEF,
			0xDE, 0xAD, 0xC0, 0xDE, 0xC0, 0xFF, 0xEE, 0x00,
		}, got)
	})

	t.Run("reports failing line", func(t *testing.T) {
		got, err := ParseLines([]string{"0011", "DEADBEE", "C0DE"})
		assert.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, ErrMalformedHexText))

		var lineErr *LineError
		assert.True(t, errors.As(err, &lineErr))
		assert.Equal(t, 2, lineErr.Line)
		assert.ErrorContains(t, err, "line 2")
	})
}
