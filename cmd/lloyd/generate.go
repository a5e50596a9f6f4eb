package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/lloyd/dataset"
	"github.com/hupe1980/lloyd/testutil"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		centers    string
		perCluster int
		spread     float64
		seed       uint64
		output     string
		integral   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic data set of Gaussian blobs",
		Long: `Write points drawn around the given centers as CSV.

The output is compressed when its name ends in .lz4 or .zst.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cs, err := parseCenters(centers)
			if err != nil {
				return err
			}
			if perCluster <= 0 {
				return errors.New("--per-cluster must be positive")
			}

			if spread < 0 {
				return errors.New("--spread must not be negative")
			}

			rng := testutil.NewRNG(seed)
			if output == "" {
				return writePoints(cmd.OutOrStdout(), dataset.CompressionNone, rng, cs, perCluster, spread, integral)
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			err = writePoints(f, dataset.DetectCompression(output), rng, cs, perCluster, spread, integral)
			return errors.Join(err, f.Close())
		},
	}

	cmd.Flags().StringVar(&centers, "centers", "0,0;10,10;0,10", "blob centers, ';' between centers and ',' between coordinates")
	cmd.Flags().IntVar(&perCluster, "per-cluster", 100, "points per blob")
	cmd.Flags().Float64Var(&spread, "spread", 1, "standard deviation of every blob")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().BoolVar(&integral, "integral", false, "round centers and spread and write integer coordinates")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout when empty)")

	return cmd
}

// writePoints encodes the blobs to w. The encoder is closed even when
// encoding fails.
func writePoints(w io.Writer, c dataset.Compression, rng *testutil.RNG, centers [][]float64, perCluster int, spread float64, integral bool) error {
	enc, err := dataset.Compress(c, w)
	if err != nil {
		return err
	}

	if integral {
		pts, _ := rng.IntBlobs(roundCenters(centers), perCluster, int(math.Round(spread)))
		err = dataset.Encode(enc, pts)
	} else {
		pts, _ := rng.Blobs(centers, perCluster, spread)
		err = dataset.Encode(enc, pts)
	}

	return errors.Join(err, enc.Close())
}

func roundCenters(centers [][]float64) [][]int {
	out := make([][]int, len(centers))
	for i, c := range centers {
		out[i] = make([]int, len(c))
		for j, v := range c {
			out[i][j] = int(math.Round(v))
		}
	}
	return out
}

// parseCenters parses "x0,y0;x1,y1".
func parseCenters(s string) ([][]float64, error) {
	var centers [][]float64
	for i, part := range strings.Split(s, ";") {
		fields := strings.Split(part, ",")
		c := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("center %d: %w", i+1, err)
			}
			c[j] = v
		}
		if len(centers) > 0 && len(c) != len(centers[0]) {
			return nil, fmt.Errorf("center %d: got %d coordinates, want %d", i+1, len(c), len(centers[0]))
		}
		centers = append(centers, c)
	}
	return centers, nil
}
