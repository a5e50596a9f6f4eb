// Package dataset loads point sets for clustering.
//
// A data set is a CSV file with one point per row and one coordinate per
// column. Lines starting with '#' are comments. Every row must have the
// same number of columns.
//
// Files ending in ".zst" are zstd-compressed and files ending in ".lz4"
// are lz4-framed; both are decompressed transparently.
//
// # Sources
//
// A Source opens named data sets. LocalSource reads from the file system;
// the s3 and minio subpackages read from object storage. A Router
// dispatches URIs such as "s3://bucket/points.csv.zst" to the Source
// registered for the scheme.
//
//	router := dataset.Router{"": dataset.NewLocalSource("")}
//	pts, err := dataset.LoadAll(ctx, router, []string{"a.csv", "b.csv.lz4"}, dataset.ParseFloat)
package dataset
