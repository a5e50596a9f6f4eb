package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/dustin/go-humanize"
	"github.com/hupe1980/lloyd"
	"github.com/hupe1980/lloyd/dataset"
	lminio "github.com/hupe1980/lloyd/dataset/minio"
	ls3 "github.com/hupe1980/lloyd/dataset/s3"
	"github.com/hupe1980/lloyd/point"
	"github.com/hupe1980/lloyd/report"
	"github.com/spf13/cobra"
)

var errNoInputs = errors.New("no inputs given")

type runFlags struct {
	config      string
	k           int
	iterations  int
	seed        uint64
	integral    bool
	emptyPolicy string
	stats       bool
}

func newRunCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	def := defaultRunConfig()

	cmd := &cobra.Command{
		Use:   "run [flags] INPUT...",
		Short: "Cluster points loaded from files or object storage",
		Long: `Cluster the points of one or more CSV data sets.

Inputs are local paths, s3://bucket/key or minio://bucket/key URIs. Files
ending in .lz4 or .zst are decompressed. Points from all inputs are
concatenated in argument order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd, args)
			if err != nil {
				return err
			}
			return runClustering(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), g, cfg, f.stats)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.config, "config", "", "YAML run file")
	flags.IntVarP(&f.k, "clusters", "k", def.K, "number of clusters")
	flags.IntVarP(&f.iterations, "iterations", "n", def.Iterations, "number of update/assign iterations")
	flags.Uint64Var(&f.seed, "seed", 0, "seed for centroid sampling (random when unset)")
	flags.BoolVar(&f.integral, "integral", false, "parse coordinates as integers")
	flags.StringVar(&f.emptyPolicy, "empty-policy", lloyd.EmptyClusterKeep.String(), "empty cluster policy (keep, reseed, fail)")
	flags.BoolVar(&f.stats, "stats", false, "print run metrics")

	return cmd
}

// resolve merges the run file with the flags that were set explicitly.
func (f *runFlags) resolve(cmd *cobra.Command, args []string) (runConfig, error) {
	cfg := defaultRunConfig()
	if f.config != "" {
		var err error
		if cfg, err = loadRunConfig(f.config); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("clusters") {
		cfg.K = f.k
	}
	if flags.Changed("iterations") {
		cfg.Iterations = f.iterations
	}
	if flags.Changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if flags.Changed("integral") {
		cfg.Integral = f.integral
	}
	if flags.Changed("empty-policy") {
		cfg.EmptyPolicy = f.emptyPolicy
	}
	if len(args) > 0 {
		cfg.Inputs = args
	}

	if len(cfg.Inputs) == 0 {
		return cfg, errNoInputs
	}
	return cfg, nil
}

func runClustering(ctx context.Context, stdout, stderr io.Writer, g *globalFlags, cfg runConfig, stats bool) error {
	logger, err := g.logger(stderr)
	if err != nil {
		return err
	}

	policy, err := lloyd.ParseEmptyClusterPolicy(cfg.EmptyPolicy)
	if err != nil {
		return err
	}

	router, err := newRouter(ctx, cfg)
	if err != nil {
		return err
	}

	metrics := &lloyd.BasicMetricsCollector{}
	opts := []lloyd.Option{
		lloyd.WithLogger(logger),
		lloyd.WithMetricsCollector(metrics),
		lloyd.WithEmptyClusterPolicy(policy),
	}
	if cfg.Seed != nil {
		opts = append(opts, lloyd.WithSeed(*cfg.Seed))
	}

	if cfg.Integral {
		err = clusterInputs(ctx, stdout, router, cfg, dataset.ParseInt, lloyd.KMeans[int64], opts)
	} else {
		err = clusterInputs(ctx, stdout, router, cfg, dataset.ParseFloat, lloyd.KMeansFloat[float64], opts)
	}
	if err != nil {
		return err
	}

	if stats {
		printStats(stdout, metrics.GetStats())
	}
	return nil
}

// newRouter registers the object storage sources the inputs refer to.
func newRouter(ctx context.Context, cfg runConfig) (dataset.Router, error) {
	local := dataset.NewLocalSource("")
	router := dataset.Router{"": local, "file": local}

	schemes := make(map[string]bool)
	for _, in := range cfg.Inputs {
		scheme, _ := dataset.SplitURI(in)
		schemes[scheme] = true
	}

	if schemes["s3"] {
		var optFns []func(*config.LoadOptions) error
		if cfg.S3 != nil {
			if cfg.S3.Region != "" {
				optFns = append(optFns, config.WithRegion(cfg.S3.Region))
			}
			if cfg.S3.Profile != "" {
				optFns = append(optFns, config.WithSharedConfigProfile(cfg.S3.Profile))
			}
		}
		src, err := ls3.New(ctx, optFns...)
		if err != nil {
			return nil, fmt.Errorf("s3: %w", err)
		}
		router["s3"] = src
	}

	if schemes["minio"] {
		if cfg.MinIO == nil {
			return nil, errors.New("minio inputs require a minio section in the run file")
		}
		src, err := lminio.New(cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Secure)
		if err != nil {
			return nil, fmt.Errorf("minio: %w", err)
		}
		router["minio"] = src
	}

	return router, nil
}

func clusterInputs[T point.Number, C point.Float](ctx context.Context, w io.Writer, src dataset.Source, cfg runConfig, parse func(string) (T, error), kmeans func([]point.Point[T], []uint32, int, int, ...lloyd.Option) (*lloyd.Result[T, C], error), opts []lloyd.Option) error {
	pts, err := dataset.LoadAll(ctx, src, cfg.Inputs, parse)
	if err != nil {
		return err
	}

	res, err := kmeans(pts, make([]uint32, len(pts)), cfg.K, cfg.Iterations, opts...)
	if err != nil {
		return err
	}

	return render(w, res)
}

func render[T point.Number, C point.Float](w io.Writer, res *lloyd.Result[T, C]) error {
	if err := report.Write(w, res); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, report.Summary(res))
	return err
}

func printStats(w io.Writer, s lloyd.BasicMetricsStats) {
	fmt.Fprintf(w, "runs:           %s\n", humanize.Comma(s.RunCount))
	fmt.Fprintf(w, "points:         %s\n", humanize.Comma(s.PointsTotal))
	fmt.Fprintf(w, "iterations:     %s\n", humanize.Comma(s.Iterations))
	fmt.Fprintf(w, "label changes:  %s\n", humanize.Comma(s.LabelChanges))
	fmt.Fprintf(w, "empty clusters: %s\n", humanize.Comma(s.EmptyClusters))
	fmt.Fprintf(w, "duration:       %s\n", time.Duration(s.RunAvgNanos))
}
