// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/ihexgen/internal/options"
	"github.com/retroenv/ihexgen/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ErrOutputIsInput is returned when the output file would overwrite the input file.
var ErrOutputIsInput = errors.New("output file is the input file")

// ErrNoMatchingFiles is returned when a batch pattern matches no files.
var ErrNoMatchingFiles = errors.New("no files match the batch pattern")

// ProcessFile converts the input file of the options and writes the records
// to the output file, or to stdout if no output file is set. The output is
// only written once the whole conversion succeeded.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	if opts.Output != "" && filepath.Clean(opts.Output) == filepath.Clean(opts.Input) {
		return fmt.Errorf("converting %s: %w", opts.Input, ErrOutputIsInput)
	}

	var buf bytes.Buffer

	pipe := pipeline.New(logger)
	result, err := pipe.Execute(ctx, opts, &buf)
	if err != nil {
		return fmt.Errorf("converting %s: %w", opts.Input, err)
	}

	if err := writeOutput(opts, &buf); err != nil {
		return err
	}

	if !opts.Quiet {
		logger.Info("Conversion finished",
			log.String("output", outputName(opts)),
			log.Int("bytes", result.Bytes),
			log.Int("records", result.Records),
		)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatchingFiles, opts.Batch)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".hex"
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("ihexgen", log.String("version", versionString(version, commit, date)))
}

func versionString(version, commit, date string) string {
	return buildinfo.Version(version, commit, date)
}

func writeOutput(opts options.Program, buf *bytes.Buffer) error {
	if opts.Output == "" {
		if _, err := io.Copy(os.Stdout, buf); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(opts.Output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return nil
}

func outputName(opts options.Program) string {
	if opts.Output == "" {
		return "stdout"
	}
	return opts.Output
}
