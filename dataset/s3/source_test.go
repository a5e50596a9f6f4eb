package s3

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/lloyd/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*s3.GetObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSource_Open(t *testing.T) {
	mockClient := new(MockS3Client)
	src := NewSource(mockClient)

	const body = "1,2\n3,4\n"
	mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
		return *input.Bucket == "points" && *input.Key == "dir/blobs.csv"
	})).Return(&s3.GetObjectOutput{
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: aws.Int64(int64(len(body))),
	}, nil).Once()

	rc, err := src.Open(context.Background(), "points/dir/blobs.csv")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, body, string(data))
	mockClient.AssertExpectations(t)
}

func TestSource_Open_NotFound(t *testing.T) {
	mockClient := new(MockS3Client)
	src := NewSource(mockClient)

	mockClient.On("GetObject", mock.Anything, mock.Anything).Return(nil, &types.NoSuchKey{}).Once()

	_, err := src.Open(context.Background(), "points/missing.csv")
	assert.ErrorIs(t, err, dataset.ErrNotFound)
}

func TestSource_Open_InvalidName(t *testing.T) {
	src := NewSource(new(MockS3Client))

	_, err := src.Open(context.Background(), "no-key")
	assert.Error(t, err)
}

func TestSource_WithRouter(t *testing.T) {
	mockClient := new(MockS3Client)
	const body = "# x,y\n1.5,2\n3,4.25\n"
	mockClient.On("GetObject", mock.Anything, mock.Anything).Return(&s3.GetObjectOutput{
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: aws.Int64(int64(len(body))),
	}, nil).Once()

	router := dataset.Router{"s3": NewSource(mockClient)}
	pts, err := dataset.Load(context.Background(), router, "s3://bucket/p.csv", dataset.ParseFloat)
	require.NoError(t, err)
	require.Len(t, pts, 2)
	assert.Equal(t, []float64{1.5, 2}, pts[0].Coords())
}
