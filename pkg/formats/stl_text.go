package formats

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Faultbox/meshconv/pkg/mesh"
)

// STLTextPrinter writes models as ASCII STL.
type STLTextPrinter struct {
	Name string // Solid name
}

// Print implements Printer.
func (p *STLTextPrinter) Print(w io.Writer, m *mesh.Model) error {
	// The solid name runs to the end of the line.
	name := strings.Join(strings.Fields(p.Name), "_")

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for i := range m.Faces {
		n := facetNormal(m, i)
		tri := m.Triangle(i)
		fmt.Fprintf(bw, "  facet normal %e %e %e\n", n.X, n.Y, n.Z)
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range tri {
			fmt.Fprintf(bw, "      vertex %e %e %e\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	// bufio.Writer keeps the first error, so one check covers every write.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
