package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	gomath "math"
	"strings"
	"testing"

	"github.com/Faultbox/meshconv/pkg/math"
	"github.com/Faultbox/meshconv/pkg/mesh"
)

// makeQuad returns a unit square in the z=0 plane split into two triangles,
// with normals on every vertex.
func makeQuad() *mesh.Model {
	m := mesh.New(4)
	m.Positions = append(m.Positions,
		math.Point(0, 0, 0),
		math.Point(1, 0, 0),
		math.Point(1, 1, 0),
		math.Vec4{X: 0, Y: 1, Z: 0, W: 3},
	)
	m.Normals = append(m.Normals, math.Vec3{Z: 1}, math.Vec3{Z: -1})
	m.Faces = append(m.Faces,
		mesh.Face{{Position: 0, Texture: mesh.Absent, Normal: 0}, {Position: 1, Texture: mesh.Absent, Normal: 1}, {Position: 2, Texture: mesh.Absent, Normal: 1}},
		mesh.Face{{Position: 0, Texture: mesh.Absent, Normal: 1}, {Position: 2, Texture: mesh.Absent, Normal: 0}, {Position: 3, Texture: mesh.Absent, Normal: 0}},
	)
	return m
}

func readVec3(t *testing.T, data []byte) math.Vec3 {
	t.Helper()
	return math.Vec3{
		X: gomath.Float32frombits(binary.LittleEndian.Uint32(data)),
		Y: gomath.Float32frombits(binary.LittleEndian.Uint32(data[4:])),
		Z: gomath.Float32frombits(binary.LittleEndian.Uint32(data[8:])),
	}
}

func TestWriteSTL_Layout(t *testing.T) {
	m := makeQuad()
	var buf bytes.Buffer

	if err := WriteSTL(&buf, m, "meshconv"); err != nil {
		t.Fatalf("WriteSTL failed: %v", err)
	}
	data := buf.Bytes()

	if len(data) != STLSize(2) {
		t.Fatalf("expected %d bytes, got %d", STLSize(2), len(data))
	}
	if len(data) != 80+4+2*(12*4+2) {
		t.Fatalf("size formula mismatch: %d", len(data))
	}

	header := string(data[:80])
	if !strings.HasPrefix(header, "meshconv") || strings.TrimRight(header, " ") != "meshconv" {
		t.Errorf("header should be space padded text, got %q", header)
	}
	if count := binary.LittleEndian.Uint32(data[80:84]); count != 2 {
		t.Errorf("expected triangle count 2, got %d", count)
	}

	tests := []struct {
		name   string
		offset int
		want   math.Vec3
	}{
		{"triangle 0 normal from first vertex", 84, math.Vec3{Z: 1}},
		{"triangle 0 vertex 0", 84 + 12, math.Vec3{}},
		{"triangle 0 vertex 1", 84 + 24, math.Vec3{X: 1}},
		{"triangle 0 vertex 2", 84 + 36, math.Vec3{X: 1, Y: 1}},
		{"triangle 1 normal from first vertex", 134, math.Vec3{Z: -1}},
		{"triangle 1 vertex 2 drops w", 134 + 36, math.Vec3{Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readVec3(t, data[tt.offset:]); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	for _, off := range []int{84 + 48, 134 + 48} {
		if attr := binary.LittleEndian.Uint16(data[off:]); attr != 0 {
			t.Errorf("attribute byte count at %d: got %d, want 0", off, attr)
		}
	}
}

func TestWriteSTL_EmptyModel(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, mesh.New(0), ""); err != nil {
		t.Fatalf("WriteSTL failed: %v", err)
	}
	if buf.Len() != 84 {
		t.Fatalf("expected 84 bytes, got %d", buf.Len())
	}
	if count := binary.LittleEndian.Uint32(buf.Bytes()[80:]); count != 0 {
		t.Errorf("expected zero count, got %d", count)
	}
}

func TestWriteSTL_LongHeaderIsCut(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, mesh.New(0), strings.Repeat("x", 200)); err != nil {
		t.Fatalf("WriteSTL failed: %v", err)
	}
	if buf.Len() != 84 {
		t.Errorf("expected 84 bytes, got %d", buf.Len())
	}
}

func TestWriteSTL_ComputedNormal(t *testing.T) {
	m := makeQuad()
	for i := range m.Faces {
		for j := range m.Faces[i] {
			m.Faces[i][j].Normal = mesh.Absent
		}
	}
	// Scaled up so the normal must come out unit length.
	m.Positions[1] = math.Point(4, 0, 0)

	var buf bytes.Buffer
	if err := WriteSTL(&buf, m, ""); err != nil {
		t.Fatalf("WriteSTL failed: %v", err)
	}
	if got := readVec3(t, buf.Bytes()[84:]); !got.ApproxEqual(math.Vec3{Z: 1}, 1e-6) {
		t.Errorf("computed normal: got %v, want (0, 0, 1)", got)
	}
}

func TestWriteSTL_NaNPassesThrough(t *testing.T) {
	m := makeQuad()
	m.Positions[1].X = float32(gomath.NaN())
	m.Positions[2].Y = float32(gomath.Inf(1))

	var buf bytes.Buffer
	if err := WriteSTL(&buf, m, ""); err != nil {
		t.Fatalf("WriteSTL failed: %v", err)
	}
	data := buf.Bytes()
	if v := readVec3(t, data[84+24:]); !gomath.IsNaN(float64(v.X)) {
		t.Errorf("expected NaN, got %v", v.X)
	}
	if v := readVec3(t, data[84+36:]); !gomath.IsInf(float64(v.Y), 1) {
		t.Errorf("expected +Inf, got %v", v.Y)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteSTL_WriteError(t *testing.T) {
	err := WriteSTL(failingWriter{}, makeQuad(), "")
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
}

func TestSTLTextPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := &STLTextPrinter{Name: "unit quad"}

	if err := p.Print(&buf, makeQuad()); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "solid unit_quad\n") {
		t.Errorf("unexpected first line in %q", out)
	}
	if !strings.HasSuffix(out, "endsolid unit_quad\n") {
		t.Errorf("unexpected last line in %q", out)
	}
	if n := strings.Count(out, "facet normal"); n != 2 {
		t.Errorf("expected 2 facets, got %d", n)
	}
	if n := strings.Count(out, "vertex "); n != 6 {
		t.Errorf("expected 6 vertices, got %d", n)
	}
	if !strings.Contains(out, "facet normal 0.000000e+00 0.000000e+00 1.000000e+00") {
		t.Errorf("missing first facet normal in %q", out)
	}
}

func TestSTLTextPrinter_WriteError(t *testing.T) {
	err := (&STLTextPrinter{}).Print(failingWriter{}, makeQuad())
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
}
