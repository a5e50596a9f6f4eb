package dataset

import (
	"context"
	"fmt"
	"slices"

	"github.com/hupe1980/lloyd/point"
	"golang.org/x/sync/errgroup"
)

// Load opens name from src, decompresses it according to its extension and
// decodes its points.
func Load[T point.Number](ctx context.Context, src Source, name string, parse func(string) (T, error)) ([]point.Point[T], error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()

	r, release, err := Decompress(DetectCompression(name), rc)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", name, err)
	}
	defer release()

	pts, err := Decode(r, parse)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return pts, nil
}

// LoadAll loads every name concurrently and concatenates the points in the
// order the names were given. The first error cancels the remaining loads.
func LoadAll[T point.Number](ctx context.Context, src Source, names []string, parse func(string) (T, error)) ([]point.Point[T], error) {
	parts := make([][]point.Point[T], len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			pts, err := Load(ctx, src, name, parse)
			if err != nil {
				return err
			}
			parts[i] = pts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return slices.Concat(parts...), nil
}
