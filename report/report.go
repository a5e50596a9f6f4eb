package report

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/lloyd"
	"github.com/hupe1980/lloyd/point"
)

// Width is the width of block titles.
const Width = 77

// Write renders r to w.
func Write[T point.Number, C point.Float](w io.Writer, r *lloyd.Result[T, C]) error {
	bw := bufio.NewWriter(w)

	block(bw, " Input data points ", list(r.Points()))
	block(bw, " Cluster indices for each point ", list(r.Labels()))
	block(bw, " Centroids ", list(r.Centroids()))
	block(bw, " Cluster Sizes ", list(r.ClusterSizes()))

	fmt.Fprintf(bw, "%s\n\n", Center(" CLUSTERS ", '*', Width))

	i := 1
	for centroid, satellites := range r.Clusters() {
		fmt.Fprintf(bw, "%s\n", Center(fmt.Sprintf(" Centroid %d: %v ", i, centroid), '-', Width))
		fmt.Fprintf(bw, "\n%s\n\n", seqList(satellites))
		i++
	}

	return bw.Flush()
}

// Summary returns a one-line human readable description of r.
func Summary[T point.Number, C point.Float](r *lloyd.Result[T, C]) string {
	return fmt.Sprintf("%s points, %s clusters, inertia %s, index %s",
		humanize.Comma(int64(len(r.Points()))),
		humanize.Comma(int64(r.K())),
		humanize.CommafWithDigits(r.Inertia(), 2),
		humanize.Bytes(r.Index().SizeInBytes()),
	)
}

// Center pads title on both sides with fill up to width. Extra padding goes
// to the right. Titles wider than width are returned unchanged.
func Center(title string, fill byte, width int) string {
	pad := width - len(title)
	if pad <= 0 {
		return title
	}
	left := pad / 2
	f := string(fill)
	return strings.Repeat(f, left) + title + strings.Repeat(f, pad-left)
}

func block(w io.Writer, title, body string) {
	fmt.Fprintf(w, "%s\n", Center(title, '-', Width))
	fmt.Fprintf(w, "\n%s\n\n", body)
}

func list[E any](items []E) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

func seqList[E any](seq iter.Seq[E]) string {
	return list(slices.Collect(seq))
}
