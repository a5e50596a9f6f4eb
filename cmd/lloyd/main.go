// Command lloyd clusters CSV point sets with fixed-iteration k-means and
// prints the result.
//
// Usage:
//
//	lloyd run -k 4 -n 10 points.csv
//	lloyd run --config run.yaml
//	lloyd demo
//	lloyd generate --centers "0,0;10,10" --per-cluster 100 -o blobs.csv.zst
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
