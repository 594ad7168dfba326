package s3

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrMissingContinuationToken means the provider reported more pages but
// gave no token to fetch them with.
var ErrMissingContinuationToken = errors.New("truncated page without continuation token")

type API interface {
	ListBuckets(ctx context.Context, params *awss3.ListBucketsInput, optFns ...func(*awss3.Options)) (*awss3.ListBucketsOutput, error)
	ListObjectsV2(ctx context.Context, params *awss3.ListObjectsV2Input, optFns ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error)
}

type Client struct {
	api API
}

func NewClient(api API) *Client {
	return &Client{api: api}
}

// ListBuckets returns every bucket owned by the caller in provider order.
func (c *Client) ListBuckets(ctx context.Context) ([]Bucket, error) {
	out, err := c.api.ListBuckets(ctx, &awss3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("ListBuckets: %w", err)
	}

	buckets := make([]Bucket, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		var createdAt time.Time
		if b.CreationDate != nil {
			createdAt = *b.CreationDate
		}
		buckets = append(buckets, Bucket{
			Name:      aws.ToString(b.Name),
			CreatedAt: createdAt,
		})
	}

	return buckets, nil
}

// ListObjects fetches a single page. An empty ContinuationToken requests the
// first page.
func (c *Client) ListObjects(ctx context.Context, in ListObjectsInput) (ObjectPage, error) {
	input := &awss3.ListObjectsV2Input{
		Bucket: aws.String(in.Bucket),
	}
	if in.Prefix != "" {
		input.Prefix = aws.String(in.Prefix)
	}
	if in.ContinuationToken != "" {
		input.ContinuationToken = aws.String(in.ContinuationToken)
	}
	if in.MaxKeys > 0 {
		input.MaxKeys = aws.Int32(in.MaxKeys)
	}

	out, err := c.api.ListObjectsV2(ctx, input)
	if err != nil {
		return ObjectPage{}, fmt.Errorf("ListObjectsV2: %w", err)
	}

	objects := make([]Object, 0, len(out.Contents))
	for _, obj := range out.Contents {
		var lastModified time.Time
		if obj.LastModified != nil {
			lastModified = *obj.LastModified
		}
		objects = append(objects, Object{
			Key:          aws.ToString(obj.Key),
			Size:         aws.ToInt64(obj.Size),
			LastModified: lastModified,
			StorageClass: string(obj.StorageClass),
		})
	}

	page := ObjectPage{Objects: objects}
	if aws.ToBool(out.IsTruncated) {
		page.Truncated = true
		page.NextToken = aws.ToString(out.NextContinuationToken)
		if page.NextToken == "" {
			return ObjectPage{}, fmt.Errorf("ListObjectsV2: %w", ErrMissingContinuationToken)
		}
	}

	return page, nil
}
