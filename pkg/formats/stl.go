// Binary STL writer.
package formats

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	gomath "math"

	"github.com/Faultbox/meshconv/pkg/encoding"
	"github.com/Faultbox/meshconv/pkg/math"
	"github.com/Faultbox/meshconv/pkg/mesh"
)

// STL format errors.
var (
	ErrWrite            = errors.New("writing STL data")
	ErrTooManyTriangles = errors.New("triangle count exceeds STL limit")
)

const (
	stlHeaderSize   = 80
	stlCountSize    = 4
	stlTriangleSize = 50 // 12 float32 + uint16 attribute byte count
)

// STLSize returns the size in bytes of a binary STL file with n triangles.
func STLSize(n int) int {
	return stlHeaderSize + stlCountSize + n*stlTriangleSize
}

// STLPrinter writes models as binary STL.
type STLPrinter struct {
	Header string // Header text, space padded or cut to 80 bytes
}

// Print implements Printer.
func (p *STLPrinter) Print(w io.Writer, m *mesh.Model) error {
	return WriteSTL(w, m, p.Header)
}

// WriteSTL writes m as binary STL: an 80-byte header, the little-endian
// triangle count, then per triangle the facet normal, the three corner
// positions (w dropped) and a zero attribute byte count.
//
// Values are written as-is; NaN and Inf are not rejected.
func WriteSTL(w io.Writer, m *mesh.Model, header string) error {
	count := len(m.Faces)
	if uint64(count) > gomath.MaxUint32 {
		return fmt.Errorf("%w: %d", ErrTooManyTriangles, count)
	}

	bw := bufio.NewWriter(w)

	var buf [stlHeaderSize + stlCountSize]byte
	copy(buf[:stlHeaderSize], encoding.FixedString(header, stlHeaderSize, ' '))
	binary.LittleEndian.PutUint32(buf[stlHeaderSize:], uint32(count))
	if _, err := bw.Write(buf[:]); err != nil {
		return fmt.Errorf("%w: header: %w", ErrWrite, err)
	}

	for i := range m.Faces {
		tri := m.Triangle(i)
		putVec3(buf[0:], facetNormal(m, i))
		putVec3(buf[12:], tri[0])
		putVec3(buf[24:], tri[1])
		putVec3(buf[36:], tri[2])
		binary.LittleEndian.PutUint16(buf[48:], 0)

		if _, err := bw.Write(buf[:stlTriangleSize]); err != nil {
			return fmt.Errorf("%w: triangle %d: %w", ErrWrite, i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// facetNormal returns the normal of the first vertex of face i, or the
// geometric unit normal when the face carries no normals.
func facetNormal(m *mesh.Model, i int) math.Vec3 {
	if n, ok := m.FacetNormal(i); ok {
		return n
	}
	tri := m.Triangle(i)
	return tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0])).Normalize()
}

func putVec3(b []byte, v math.Vec3) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, gomath.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:], gomath.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:], gomath.Float32bits(v.Z))
}
