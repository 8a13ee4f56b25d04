// Package options contains the program options.
package options

// Program options of the converter.
type Program struct {
	Input  string `flag:"i" usage:"input hex text file"`
	Output string `flag:"o" usage:"output .hex file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.txt)"`

	SkipInvalid bool `flag:"skip-invalid" usage:"skip lines that are not valid hex text instead of aborting"`
	Debug       bool `flag:"debug" usage:"enable debug logging"`
	Quiet       bool `flag:"q" usage:"quiet mode"`
}
