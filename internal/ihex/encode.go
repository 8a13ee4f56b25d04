package ihex

import "fmt"

// LineEmitter receives one formatted record line at a time.
type LineEmitter func(line string) error

// Encode splits data into records of MaxDataLength bytes, the last one
// possibly shorter, and passes each formatted data record to emit in
// ascending address order. The address of a record is its offset in data
// truncated to 16 bits, buffers larger than 64 KiB wrap around.
func Encode(data []byte, emit LineEmitter) error {
	remaining := len(data)
	for i := 0; remaining > 0; {
		toWrite := min(remaining, MaxDataLength)
		rec := Record{
			Address: uint16(i),
			Type:    Data,
			Data:    data[i : i+toWrite],
		}

		line, err := rec.Format()
		if err != nil {
			return fmt.Errorf("formatting record at offset %d: %w", i, err)
		}
		if err := emit(line); err != nil {
			return fmt.Errorf("emitting record at address 0x%04X: %w", rec.Address, err)
		}

		i += toWrite
		remaining -= toWrite
	}
	return nil
}

// Lines returns all data record lines for the given data.
func Lines(data []byte) ([]string, error) {
	lines := make([]string, 0, (len(data)+MaxDataLength-1)/MaxDataLength)
	err := Encode(data, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}
