// meshconv converts Wavefront OBJ meshes to STL and answers simple
// geometric queries about them.
package main

import (
	"context"
	"flag"
	"fmt"
	gomath "math"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/meshconv/internal/config"
	"github.com/Faultbox/meshconv/internal/converter"
	"github.com/Faultbox/meshconv/internal/logger"
	"github.com/Faultbox/meshconv/pkg/formats"
	"github.com/Faultbox/meshconv/pkg/geometry"
	"github.com/Faultbox/meshconv/pkg/math"
	"github.com/Faultbox/meshconv/pkg/mesh"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "convert", "c":
		err = cmdConvert(cfg, args)
	case "info":
		err = cmdInfo(cfg, args)
	case "inside":
		err = cmdInside(cfg, args)
	case "formats":
		for _, name := range formats.PrinterNames() {
			fmt.Println(name)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		// meshconv <input> [output] behaves like convert.
		if filepath.Ext(command) != "" {
			err = cmdConvert(cfg, append([]string{command}, args...))
			break
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `meshconv - OBJ to STL mesh converter

Usage:
  meshconv [options] <command> [arguments]
  meshconv [options] <input.obj> [output.stl]

Commands:
  convert <input.obj> [output]   Convert a mesh (default output ./out.stl)
  info <input.obj>               Show counts, bounds and surface area
  inside <input.obj> <x> <y> <z> Report whether a point is inside the mesh
  formats                        List output formats

Convert options:
  -scale <s>              Uniform scale
  -rotate <x,y,z,deg>     Rotation around an axis, applied after scaling
  -translate <x,y,z>      Offset, applied last

Options:`)
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, `
Examples:
  meshconv convert bunny.obj bunny.stl
  meshconv -format stl-ascii convert -scale 10 -rotate 1,0,0,90 part.obj
  meshconv -workers 8 info bunny.obj
  meshconv inside bunny.obj 0 0.1 0`)
}

func cmdConvert(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	scale := fs.Float64("scale", 1, "Uniform scale")
	rotate := fs.String("rotate", "", "Rotation as axis x,y,z and degrees")
	translate := fs.String("translate", "", "Offset as x,y,z")
	fs.Parse(args)

	if fs.NArg() < 1 || fs.NArg() > 2 {
		return fmt.Errorf("usage: meshconv convert [-scale s] [-rotate x,y,z,deg] [-translate x,y,z] <input.obj> [output]")
	}
	in := fs.Arg(0)
	out := cfg.Convert.Output
	if fs.NArg() == 2 {
		out = fs.Arg(1)
	}

	xform, err := buildTransform(*scale, *rotate, *translate)
	if err != nil {
		return err
	}

	c, err := newConverter(cfg, in)
	if err != nil {
		return err
	}

	if xform == math.Identity() {
		return c.Convert(in, out)
	}
	return c.ConvertWith(in, out, func(m *mesh.Model) error {
		return geometry.Transform(m, xform)
	})
}

func cmdInfo(cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: meshconv info <input.obj>")
	}

	m, err := load(cfg, args[0])
	if err != nil {
		return err
	}

	area, err := geometry.SurfaceAreaParallel(context.Background(), m, cfg.Geometry.Workers)
	if err != nil {
		return err
	}

	fmt.Printf("File:      %s\n", args[0])
	fmt.Printf("Positions: %d\n", len(m.Positions))
	fmt.Printf("TexCoords: %d\n", len(m.TexCoords))
	fmt.Printf("Normals:   %d\n", len(m.Normals))
	fmt.Printf("Triangles: %d\n", m.TriangleCount())
	fmt.Printf("STL size:  %d bytes\n", formats.STLSize(m.TriangleCount()))
	if lo, hi, ok := m.Bounds(); ok {
		fmt.Printf("Bounds:    (%g, %g, %g) - (%g, %g, %g)\n", lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
	}
	fmt.Printf("Area:      %g\n", area)
	return nil
}

func cmdInside(cfg *config.Config, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: meshconv inside <input.obj> <x> <y> <z>")
	}

	p, err := parseVec3(strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	m, err := load(cfg, args[0])
	if err != nil {
		return err
	}

	inside, err := geometry.IsPointInsideParallel(context.Background(), m, p, cfg.Geometry.Workers)
	if err != nil {
		return err
	}

	if inside {
		fmt.Println("inside")
	} else {
		fmt.Println("outside")
	}
	return nil
}

func newConverter(cfg *config.Config, in string) (*converter.Converter, error) {
	log := logger.Named("convert")

	parser, err := formats.ParserFor(filepath.Ext(in), log)
	if err != nil {
		return nil, err
	}
	printer, err := formats.PrinterFor(cfg.Convert.Format, cfg.Convert.Header)
	if err != nil {
		return nil, err
	}
	return converter.New(parser, printer, log), nil
}

func load(cfg *config.Config, in string) (*mesh.Model, error) {
	c, err := newConverter(cfg, in)
	if err != nil {
		return nil, err
	}
	if err := c.Parse(in); err != nil {
		return nil, err
	}
	return c.Model(), nil
}

// buildTransform returns translate * rotate * scale, or the identity for the
// defaults.
func buildTransform(scale float64, rotate, translate string) (math.Mat4, error) {
	m := math.Identity()
	if scale != 1 {
		if scale == 0 {
			return m, fmt.Errorf("scale must not be zero")
		}
		s := float32(scale)
		m = math.Scale(s, s, s)
	}
	if rotate != "" {
		var v [4]float64
		if _, err := formats.ReadNumbers(strings.ReplaceAll(rotate, ",", " "), v[:], 4, 4); err != nil {
			return m, fmt.Errorf("rotate %q: %w", rotate, err)
		}
		axis := math.Vec3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}
		if axis.Length() == 0 {
			return m, fmt.Errorf("rotate %q: zero axis", rotate)
		}
		angle := float32(v[3] * gomath.Pi / 180)
		m = math.QuatFromAxisAngle(axis, angle).ToMat4().Mul(m)
	}
	if translate != "" {
		t, err := parseVec3(strings.ReplaceAll(translate, ",", " "))
		if err != nil {
			return m, fmt.Errorf("translate: %w", err)
		}
		m = math.Translate(t.X, t.Y, t.Z).Mul(m)
	}
	return m, nil
}

// parseVec3 reads exactly three numbers with the same rules as OBJ vertices.
func parseVec3(text string) (math.Vec3, error) {
	var v [3]float64
	if _, err := formats.ReadNumbers(text, v[:], 3, 3); err != nil {
		return math.Vec3{}, fmt.Errorf("point %q: %w", text, err)
	}
	return math.Vec3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}, nil
}
