package formats

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParserFor(t *testing.T) {
	tests := []struct {
		ext     string
		wantErr bool
	}{
		{".obj", false},
		{".OBJ", false},
		{".stl", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			p, err := ParserFor(tt.ext, nil)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParserFor failed: %v", err)
			}
			if _, ok := p.(*OBJParser); !ok {
				t.Errorf("expected *OBJParser, got %T", p)
			}
		})
	}
}

func TestPrinterFor(t *testing.T) {
	p, err := PrinterFor(FormatSTL, "hdr")
	if err != nil {
		t.Fatalf("PrinterFor(stl) failed: %v", err)
	}
	if sp, ok := p.(*STLPrinter); !ok || sp.Header != "hdr" {
		t.Errorf("expected *STLPrinter with header, got %#v", p)
	}

	p, err = PrinterFor("STL-ASCII", "name")
	if err != nil {
		t.Fatalf("PrinterFor(stl-ascii) failed: %v", err)
	}
	if tp, ok := p.(*STLTextPrinter); !ok || tp.Name != "name" {
		t.Errorf("expected *STLTextPrinter with name, got %#v", p)
	}

	if _, err := PrinterFor("ply", ""); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestPrinterNames(t *testing.T) {
	names := PrinterNames()
	if len(names) != 2 || names[0] != FormatSTL || names[1] != FormatSTLASCII {
		t.Errorf("got %v, want [%s %s]", names, FormatSTL, FormatSTLASCII)
	}
}

// Parsing then printing through the interfaces, as the converter does.
func TestParsePrintPipeline(t *testing.T) {
	obj := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1 4//1
`
	parser, _ := ParserFor(".obj", nil)
	printer, _ := PrinterFor(FormatSTL, "")

	m, err := parser.Parse(strings.NewReader(obj))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var buf bytes.Buffer
	if err := printer.Print(&buf, m); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if buf.Len() != STLSize(2) {
		t.Errorf("expected %d bytes, got %d", STLSize(2), buf.Len())
	}
}
