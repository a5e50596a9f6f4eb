package main

import (
	"github.com/hupe1980/lloyd"
	"github.com/hupe1980/lloyd/point"
	"github.com/spf13/cobra"
)

// samplePoints is the built-in demo data set: fourteen evenly spaced 3-D
// integer points, deliberately out of order.
func samplePoints() []point.Point[int] {
	return []point.Point[int]{
		point.New(1, 2, 3), point.New(4, 5, 6),
		point.New(7, 8, 9), point.New(28, 29, 30),
		point.New(31, 32, 33), point.New(34, 35, 36),
		point.New(19, 20, 21), point.New(22, 23, 24),
		point.New(25, 26, 27), point.New(10, 11, 12),
		point.New(13, 14, 15), point.New(16, 17, 18),
		point.New(37, 38, 39), point.New(40, 41, 42),
	}
}

func newDemoCmd(g *globalFlags) *cobra.Command {
	var (
		k, n int
		seed uint64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Cluster the built-in 14-point sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := g.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			opts := []lloyd.Option{lloyd.WithLogger(logger)}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, lloyd.WithSeed(seed))
			}

			pts := samplePoints()
			res, err := lloyd.KMeans(pts, make([]uint32, len(pts)), k, n, opts...)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().IntVarP(&k, "clusters", "k", 4, "number of clusters")
	cmd.Flags().IntVarP(&n, "iterations", "n", 10, "number of update/assign iterations")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for centroid sampling (random when unset)")

	return cmd
}
