// Package pipeline orchestrates the conversion workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/ihexgen/internal/hextext"
	"github.com/retroenv/ihexgen/internal/ihex"
	"github.com/retroenv/ihexgen/internal/loader"
	"github.com/retroenv/ihexgen/internal/options"
	"github.com/retroenv/ihexgen/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Result contains statistics of a finished conversion.
type Result struct {
	Lines   int // input lines read
	Skipped int // input lines skipped as invalid
	Bytes   int // data bytes encoded
	Records int // records written
}

// Pipeline orchestrates the complete conversion workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new conversion pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute loads the input file of the options and writes its Intel HEX
// data records to the writer.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, w io.Writer) (*Result, error) {
	lines, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading input lines: %w", err)
	}

	if !opts.Quiet {
		p.logger.Info("Processing hex text",
			log.String("file", opts.Input),
			log.Int("lines", len(lines)),
		)
	}

	return p.ExecuteWithLines(ctx, opts, lines, w)
}

// ExecuteWithLines runs the conversion for already loaded input lines.
// All lines are parsed before the first record is written, a parse failure
// therefore never results in partial output.
func (p *Pipeline) ExecuteWithLines(ctx context.Context, opts options.Program, lines []string, w io.Writer) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := &Result{Lines: len(lines)}

	data, err := p.parseLines(ctx, opts, lines, result)
	if err != nil {
		return nil, err
	}
	result.Bytes = len(data)

	p.logger.Debug("Parsed input",
		log.Int("bytes", len(data)),
		log.Int("skipped", result.Skipped),
	)
	if len(data) > 0x10000 {
		p.logger.Warn("Input exceeds 64 KiB, record addresses wrap around",
			log.Int("bytes", len(data)),
		)
	}

	lineWriter := writer.New(w)
	emit := func(line string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return lineWriter.WriteLine(line)
	}

	if err := ihex.Encode(data, emit); err != nil {
		return nil, fmt.Errorf("encoding records: %w", err)
	}
	result.Records = lineWriter.Lines()

	p.logger.Debug("Wrote records", log.Int("records", result.Records))
	return result, nil
}

// parseLines parses all lines and concatenates their bytes. Depending on the
// options, invalid lines abort the conversion or are skipped with a warning.
func (p *Pipeline) parseLines(ctx context.Context, opts options.Program, lines []string, result *Result) ([]byte, error) {
	if !opts.SkipInvalid {
		data, err := hextext.ParseLines(lines)
		if err != nil {
			return nil, fmt.Errorf("parsing input: %w", err)
		}
		return data, nil
	}

	var data []byte
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		b, err := hextext.Parse(line)
		if err != nil {
			p.logger.Warn("Skipping invalid line",
				log.Int("line", i+1),
				log.Err(err),
			)
			result.Skipped++
			continue
		}
		data = append(data, b...)
	}

	return data, nil
}
