// Package s3 provides an Amazon S3 implementation of dataset.Source.
//
// Names have the form "bucket/key". Objects are fetched with the
// feature/s3/manager downloader, which splits large objects into ranged
// GETs.
//
//	src, err := s3.New(ctx)
//	router := dataset.Router{"s3": src}
//	pts, err := dataset.Load(ctx, router, "s3://my-bucket/points.csv.zst", dataset.ParseFloat)
package s3
