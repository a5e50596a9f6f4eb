// Package minio provides a dataset.Source for MinIO and other
// S3-compatible object stores.
//
// Example:
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	router := dataset.Router{"minio": lminio.NewSource(client)}
//	pts, err := dataset.Load(ctx, router, "minio://bucket/points.csv", dataset.ParseFloat)
package minio
