package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a data set does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrUnknownScheme is returned by Router for URIs without a registered Source.
var ErrUnknownScheme = errors.New("unknown scheme")

// Source opens data sets by name.
type Source interface {
	// Open opens a data set for reading. The caller closes the reader.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// LocalSource implements Source using the local file system.
type LocalSource struct {
	root string
}

// NewLocalSource creates a new LocalSource rooted at the given directory.
// An empty root resolves names relative to the working directory.
func NewLocalSource(root string) *LocalSource {
	return &LocalSource{root: root}
}

// Open opens a file for reading.
func (s *LocalSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := name
	if s.root != "" {
		path = filepath.Join(s.root, name)
	}
	return os.Open(path)
}

// Router dispatches "scheme://rest" URIs to the Source registered for the
// scheme, passing "rest" as the name. URIs without a scheme use the Source
// registered under "".
type Router map[string]Source

// Open implements Source.
func (r Router) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	scheme, name := SplitURI(uri)
	src, ok := r[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
	return src.Open(ctx, name)
}

// SplitURI splits "scheme://rest" into its parts. A plain path has an empty
// scheme.
func SplitURI(uri string) (scheme, rest string) {
	if i := strings.Index(uri, "://"); i > 0 {
		return uri[:i], uri[i+3:]
	}
	return "", uri
}

// SplitBucketKey splits "bucket/key" as used by the object storage sources.
func SplitBucketKey(name string) (bucket, key string, err error) {
	bucket, key, ok := strings.Cut(name, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid object name %q: want bucket/key", name)
	}
	return bucket, key, nil
}
