package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/hupe1980/lloyd/dataset"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Source implements dataset.Source for MinIO.
type Source struct {
	client *minio.Client
}

// NewSource creates a source on top of an existing client.
func NewSource(client *minio.Client) *Source {
	return &Source{client: client}
}

// New connects to endpoint with static credentials.
func New(endpoint, accessKey, secretKey string, secure bool) (*Source, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, err
	}
	return NewSource(client), nil
}

// Open streams the object "bucket/key".
func (s *Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	bucket, key, err := dataset.SplitBucketKey(name)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, translate(bucket, key, err)
	}

	// GetObject is lazy; Stat surfaces a missing object before the first read.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, translate(bucket, key, err)
	}

	return obj, nil
}

func translate(bucket, key string, err error) error {
	errResp := minio.ToErrorResponse(err)
	if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" || errResp.Code == "NoSuchBucket" {
		return fmt.Errorf("minio://%s/%s: %w", bucket, key, dataset.ErrNotFound)
	}
	return err
}
