package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hupe1980/lloyd"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "lloyd",
		Short: "Fixed-iteration k-means clustering",
		Long: `lloyd partitions point sets into k clusters with Lloyd's algorithm.

Examples:
  lloyd run -k 4 -n 10 points.csv          # Cluster a local CSV file
  lloyd run -k 3 s3://bucket/points.csv.zst
  lloyd demo                               # Cluster the built-in sample
  lloyd generate -o blobs.csv.lz4          # Write a synthetic data set`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "text", "log format (text, json)")

	cmd.AddCommand(newRunCmd(g), newDemoCmd(g), newGenerateCmd())

	return cmd
}

// logger builds the run logger writing to w.
func (g *globalFlags) logger(w io.Writer) (*lloyd.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(g.logFormat) {
	case "text":
		return lloyd.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return lloyd.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q", g.logFormat)
	}
}
