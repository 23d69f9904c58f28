// Package formats provides readers and writers for mesh file formats.
package formats

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/meshconv/pkg/mesh"
)

// ErrUnsupportedFormat is returned when no reader or writer is registered
// for a format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Parser builds a model from an input stream.
type Parser interface {
	Parse(r io.Reader) (*mesh.Model, error)
}

// Printer serializes a model to an output stream.
type Printer interface {
	Print(w io.Writer, m *mesh.Model) error
}

// Printer format names.
const (
	FormatSTL      = "stl"
	FormatSTLASCII = "stl-ascii"
)

var parsers = map[string]func(log *zap.Logger) Parser{
	".obj": func(log *zap.Logger) Parser { return &OBJParser{Logger: log} },
}

var printers = map[string]func(header string) Printer{
	FormatSTL:      func(header string) Printer { return &STLPrinter{Header: header} },
	FormatSTLASCII: func(header string) Printer { return &STLTextPrinter{Name: header} },
}

// ParserFor returns the parser registered for a file extension such as ".obj".
func ParserFor(ext string, log *zap.Logger) (Parser, error) {
	newParser, ok := parsers[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("%w: input %q", ErrUnsupportedFormat, ext)
	}
	return newParser(log), nil
}

// PrinterFor returns the printer registered under name. header is the
// binary header text or the ASCII solid name.
func PrinterFor(name, header string) (Printer, error) {
	newPrinter, ok := printers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: output %q", ErrUnsupportedFormat, name)
	}
	return newPrinter(header), nil
}

// PrinterNames lists the registered printer formats.
func PrinterNames() []string {
	names := make([]string, 0, len(printers))
	for name := range printers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
