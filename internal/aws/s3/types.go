package s3

import "time"

type Bucket struct {
	Name      string
	CreatedAt time.Time
}

type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
	StorageClass string
}

// ObjectPage is one ListObjectsV2 response. NextToken is set only when the
// provider reported the page as truncated, and is never empty in that case.
type ObjectPage struct {
	Objects   []Object
	Truncated bool
	NextToken string
}

type ListObjectsInput struct {
	Bucket            string
	Prefix            string
	ContinuationToken string
	MaxKeys           int32
}
