package ihex

import (
	"errors"
	"fmt"
	"strings"
)

// MaxDataLength is the maximum number of data bytes in a single record.
const MaxDataLength = 16

const hexDigits = "0123456789ABCDEF"

// ErrInvalidRecordLength is returned when a record would carry more than
// MaxDataLength data bytes.
var ErrInvalidRecordLength = errors.New("invalid record length")

// RecordType indicates the type of an Intel HEX record.
type RecordType byte

// Data is the only record type this package emits.
const Data RecordType = 0x00

// Record is a single Intel HEX record before serialization.
type Record struct {
	Address uint16
	Type    RecordType
	Data    []byte
}

// Format returns the textual representation of the record.
func (r Record) Format() (string, error) {
	return FormatRecord(r.Data, r.Address, r.Type)
}

// FormatRecord renders a record in the canonical :LLAAAATTDD..CC form using
// upper case hex digits.
func FormatRecord(data []byte, address uint16, typ RecordType) (string, error) {
	if len(data) > MaxDataLength {
		return "", fmt.Errorf("%w: %d bytes exceed maximum of %d",
			ErrInvalidRecordLength, len(data), MaxDataLength)
	}

	// length, address high, address low, type
	image := make([]byte, 0, 4+len(data)+1)
	image = append(image, byte(len(data)), byte(address>>8), byte(address), byte(typ))
	image = append(image, data...)
	image = append(image, Checksum(image))

	buf := &strings.Builder{}
	buf.Grow(1 + 2*len(image))
	buf.WriteByte(':')
	for _, b := range image {
		buf.WriteByte(hexDigits[b>>4])
		buf.WriteByte(hexDigits[b&0x0f])
	}
	return buf.String(), nil
}
