package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/lloyd/dataset"
)

// Client is the subset of the S3 API the source needs.
type Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Source implements dataset.Source for S3.
type Source struct {
	client     Client
	downloader *manager.Downloader
}

// NewSource creates a source on top of an existing client.
func NewSource(client Client) *Source {
	return &Source{
		client:     client,
		downloader: manager.NewDownloader(client),
	}
}

// New creates a source using the default AWS configuration chain
// (environment, shared config, instance role).
func New(ctx context.Context, optFns ...func(*config.LoadOptions) error) (*Source, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewSource(s3.NewFromConfig(cfg)), nil
}

// Open downloads the object "bucket/key" into memory.
func (s *Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	bucket, key, err := dataset.SplitBucketKey(name)
	if err != nil {
		return nil, err
	}

	buf := manager.NewWriteAtBuffer(nil)
	_, err = s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("s3://%s/%s: %w", bucket, key, dataset.ErrNotFound)
		}
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, fmt.Errorf("s3://%s/%s: %w", bucket, key, dataset.ErrNotFound)
		}
		return nil, err
	}

	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}
