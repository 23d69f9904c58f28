// Package converter runs a parser and a printer over files on disk.
package converter

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/meshconv/pkg/formats"
	"github.com/Faultbox/meshconv/pkg/mesh"
)

// Errors returned by Converter.
var (
	ErrNoParser    = errors.New("no parser set")
	ErrNoPrinter   = errors.New("no printer set")
	ErrNoModel     = errors.New("no model parsed")
	ErrCannotParse = errors.New("cannot parse input")
	ErrCannotWrite = errors.New("cannot write output")
)

// Converter owns one parser, one printer and the last model parsed.
// It is not safe for concurrent use.
type Converter struct {
	parser  formats.Parser
	printer formats.Printer
	model   *mesh.Model
	log     *zap.Logger
}

// New creates a converter. Either capability may be nil and set later. A nil
// log discards output.
func New(parser formats.Parser, printer formats.Printer, log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{parser: parser, printer: printer, log: log}
}

// SetParser replaces the parser.
func (c *Converter) SetParser(p formats.Parser) { c.parser = p }

// SetPrinter replaces the printer.
func (c *Converter) SetPrinter(p formats.Printer) { c.printer = p }

// Model returns the last successfully parsed model, or nil.
func (c *Converter) Model() *mesh.Model { return c.model }

// Parse reads path with the parser and keeps the result. A failed parse
// discards any model from an earlier call.
func (c *Converter) Parse(path string) error {
	if c.parser == nil {
		return ErrNoParser
	}
	c.model = nil

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCannotParse, err)
	}
	defer f.Close()

	start := time.Now()
	m, err := c.parser.Parse(f)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCannotParse, path, err)
	}

	c.model = m
	c.log.Debug("parsed",
		zap.String("path", path),
		zap.Int("positions", len(m.Positions)),
		zap.Int("triangles", m.TriangleCount()),
		zap.Duration("took", time.Since(start)))
	return nil
}

// Print writes the current model to path with the printer, replacing any
// existing file. A failed print removes the partial output.
func (c *Converter) Print(path string) (err error) {
	if c.printer == nil {
		return ErrNoPrinter
	}
	if c.model == nil {
		return ErrNoModel
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCannotWrite, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
		if err == nil {
			return
		}
		if !errors.Is(err, ErrCannotWrite) {
			err = fmt.Errorf("%w: %s: %w", ErrCannotWrite, path, err)
		}
		if rmErr := os.Remove(path); rmErr != nil {
			c.log.Warn("removing partial output", zap.String("path", path), zap.Error(rmErr))
		}
	}()

	if err := c.printer.Print(f, c.model); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCannotWrite, path, err)
	}

	c.log.Debug("printed", zap.String("path", path), zap.Int("triangles", c.model.TriangleCount()))
	return nil
}

// Edit changes a parsed model in place before it is printed.
type Edit func(*mesh.Model) error

// Convert parses in and prints the result to out.
func (c *Converter) Convert(in, out string) error {
	return c.ConvertWith(in, out)
}

// ConvertWith parses in, applies edits in order and prints the result to out.
// Nothing is written if an edit fails.
func (c *Converter) ConvertWith(in, out string, edits ...Edit) error {
	log := c.log
	c.log = log.With(zap.Stringer("run", uuid.Must(uuid.NewV7())))
	defer func() { c.log = log }()

	start := time.Now()
	if err := c.Parse(in); err != nil {
		c.log.Error("conversion failed", zap.String("input", in), zap.Error(err))
		return err
	}
	for _, edit := range edits {
		if err := edit(c.model); err != nil {
			c.log.Error("conversion failed", zap.String("input", in), zap.Error(err))
			return err
		}
	}
	if err := c.Print(out); err != nil {
		c.log.Error("conversion failed", zap.String("output", out), zap.Error(err))
		return err
	}

	c.log.Info("converted",
		zap.String("input", in),
		zap.String("output", out),
		zap.Int("triangles", c.model.TriangleCount()),
		zap.Duration("took", time.Since(start)))
	return nil
}
