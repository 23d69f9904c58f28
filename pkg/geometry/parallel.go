package geometry

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/meshconv/pkg/math"
	"github.com/Faultbox/meshconv/pkg/mesh"
)

// minChunk keeps small meshes from being split into goroutines that cost
// more than the work they do.
const minChunk = 1024

// IntersectionCountParallel is IntersectionCount with the faces split
// across up to workers goroutines. The model must not be modified while it
// runs.
func IntersectionCountParallel(ctx context.Context, m *mesh.Model, r Ray, workers int) (int, error) {
	counts, err := forEachChunk(ctx, len(m.Faces), workers, func(from, to int) int {
		return countRange(m, r, from, to)
	})
	if err != nil {
		return 0, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// SurfaceAreaParallel is SurfaceArea with the faces split across up to
// workers goroutines. The sum may differ from SurfaceArea in the last bits
// because partial sums are added in a different order.
func SurfaceAreaParallel(ctx context.Context, m *mesh.Model, workers int) (float32, error) {
	areas, err := forEachChunk(ctx, len(m.Faces), workers, func(from, to int) float32 {
		return areaRange(m, from, to)
	})
	if err != nil {
		return 0, err
	}

	var total float32
	for _, a := range areas {
		total += a
	}
	return total, nil
}

// forEachChunk splits [0, n) into contiguous chunks, runs fn on each and
// returns the per-chunk results in order.
func forEachChunk[T any](ctx context.Context, n, workers int, fn func(from, to int) T) ([]T, error) {
	chunks := workers
	if limit := (n + minChunk - 1) / minChunk; chunks > limit {
		chunks = limit
	}
	if chunks <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []T{fn(0, n)}, nil
	}

	results := make([]T, chunks)
	size := (n + chunks - 1) / chunks

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < chunks; i++ {
		i := i
		from := i * size
		to := min(from+size, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = fn(from, to)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// IsPointInsideParallel is IsPointInside with the faces split across up to
// workers goroutines.
func IsPointInsideParallel(ctx context.Context, m *mesh.Model, p math.Vec3, workers int) (bool, error) {
	n, err := IntersectionCountParallel(ctx, m, Ray{Origin: p, Direction: insideDirection}, workers)
	if err != nil {
		return false, err
	}
	return n%2 != 0, nil
}
