// Wavefront OBJ parser for triangle meshes.
package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/Faultbox/meshconv/pkg/encoding"
	"github.com/Faultbox/meshconv/pkg/math"
	"github.com/Faultbox/meshconv/pkg/mesh"
)

// OBJ format errors.
var (
	ErrRead = errors.New("reading OBJ data")
)

// ParseError reports the line an OBJ parse failed on.
type ParseError struct {
	Line  int    // 1-based line number
	Label string // Directive of the failing line ("v", "f", ...)
	Token string // Offending face token, if any
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("obj line %d (%s, %q): %v", e.Line, e.Label, e.Token, e.Err)
	}
	return fmt.Sprintf("obj line %d (%s): %v", e.Line, e.Label, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// OBJParser reads vertex positions, texture coordinates, normals and
// polygonal faces from OBJ text. Other directives are skipped.
type OBJParser struct {
	Logger       *zap.Logger // Optional; defaults to a no-op logger
	CapacityHint int         // Initial capacity of the model arrays
}

// ParseOBJ parses OBJ text with default settings.
func ParseOBJ(r io.Reader) (*mesh.Model, error) {
	return (&OBJParser{}).Parse(r)
}

// Parse reads r line by line and returns the triangulated model.
// No model is returned when any line fails.
func (p *OBJParser) Parse(r io.Reader) (*mesh.Model, error) {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}

	d := &objDecoder{
		model:   mesh.New(p.CapacityHint),
		skipped: make(map[string]int),
		log:     log,
	}

	br := bufio.NewReader(encoding.NewTextReader(r))
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			d.line++
			if perr := d.processLine(line); perr != nil {
				return nil, perr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: after line %d: %w", ErrRead, d.line, err)
		}
	}

	if err := d.checkReferences(); err != nil {
		return nil, err
	}

	log.Debug("parsed OBJ",
		zap.Int("lines", d.line),
		zap.Int("positions", len(d.model.Positions)),
		zap.Int("texcoords", len(d.model.TexCoords)),
		zap.Int("normals", len(d.model.Normals)),
		zap.Int("triangles", len(d.model.Faces)),
		zap.Int("skipped", d.skippedLines()),
	)
	return d.model, nil
}

// objDecoder carries the state of one parse.
type objDecoder struct {
	model     *mesh.Model
	line      int
	faceLines []int // Source line of each triangle in model.Faces
	skipped   map[string]int
	log       *zap.Logger
}

func (d *objDecoder) processLine(line string) error {
	line = strings.TrimFunc(line, unicode.IsSpace)
	if line == "" {
		return nil
	}

	label, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		label, rest = line[:i], line[i:]
	}

	var err error
	token := ""
	switch {
	case label == "v":
		err = d.processPosition(rest)
	case label == "vt":
		err = d.processTexCoord(rest)
	case label == "vn":
		err = d.processNormal(rest)
	case label == "f":
		token, err = d.processFace(rest)
	case strings.HasPrefix(label, "#"):
		// comment
	default:
		if d.skipped[label] == 0 {
			d.log.Debug("skipping unsupported directive", zap.String("label", label), zap.Int("line", d.line))
		}
		d.skipped[label]++
	}

	if err != nil {
		return &ParseError{Line: d.line, Label: label, Token: token, Err: err}
	}
	return nil
}

func (d *objDecoder) processPosition(text string) error {
	values := [4]float64{0, 0, 0, 1}
	if _, err := ReadNumbers(text, values[:], 3, 4); err != nil {
		return err
	}
	d.model.Positions = append(d.model.Positions, math.Vec4{
		X: float32(values[0]),
		Y: float32(values[1]),
		Z: float32(values[2]),
		W: float32(values[3]),
	})
	return nil
}

func (d *objDecoder) processTexCoord(text string) error {
	var values [3]float64
	if _, err := ReadNumbers(text, values[:], 1, 3); err != nil {
		return err
	}
	d.model.TexCoords = append(d.model.TexCoords, vec3(values))
	return nil
}

func (d *objDecoder) processNormal(text string) error {
	var values [3]float64
	if _, err := ReadNumbers(text, values[:], 3, 3); err != nil {
		return err
	}
	d.model.Normals = append(d.model.Normals, vec3(values))
	return nil
}

func (d *objDecoder) skippedLines() int {
	total := 0
	for _, n := range d.skipped {
		total += n
	}
	return total
}

func vec3(v [3]float64) math.Vec3 {
	return math.Vec3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}
}
