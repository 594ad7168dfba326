// Package listing prints the bucket and object enumerations of an account.
//
// Both enumerations write plain text to the configured writer. Object
// enumeration pages through the provider's results one request at a time,
// handing each page's continuation token unchanged to the next request.
package listing

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	awss3 "tasnim.dev/s3ls/internal/aws/s3"
	"tasnim.dev/s3ls/internal/constants"
	"tasnim.dev/s3ls/internal/utils"
)

// Source is the storage provider as seen by the enumerators.
type Source interface {
	ListBuckets(ctx context.Context) ([]awss3.Bucket, error)
	ListObjects(ctx context.Context, in awss3.ListObjectsInput) (awss3.ObjectPage, error)
}

type Options struct {
	// Prefix restricts object enumeration to keys starting with it.
	Prefix string

	// MaxKeys caps the objects per page. Zero leaves it to the provider.
	MaxKeys int32
	Logger  *slog.Logger
}

type Lister struct {
	src  Source
	out  io.Writer
	opts Options
	log  *slog.Logger
}

func NewLister(src Source, out io.Writer, opts Options) *Lister {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Lister{src: src, out: out, opts: opts, log: logger}
}

// Buckets prints the number of buckets followed by one line per bucket name,
// in the order the provider returned them.
func (l *Lister) Buckets(ctx context.Context) error {
	l.info("Getting a list of your buckets...")

	buckets, err := l.src.ListBuckets(ctx)
	if err != nil {
		return fmt.Errorf("listing buckets: %w", err)
	}

	l.info(fmt.Sprintf("Number of buckets: %d", len(buckets)))
	for _, b := range buckets {
		l.log.Debug("bucket", "name", b.Name, "created", b.CreatedAt)
		l.println(utils.BucketLine(b.Name))
	}
	return nil
}

// Objects prints every object of bucket, page by page. A failure reported
// by the provider is printed as a single error line and yields (false, nil);
// objects from pages already fetched stay printed. Any other failure is
// returned.
func (l *Lister) Objects(ctx context.Context, bucket string) (bool, error) {
	l.info(fmt.Sprintf("Listing the contents of %s:", bucket))

	input := awss3.ListObjectsInput{
		Bucket:  bucket,
		Prefix:  l.opts.Prefix,
		MaxKeys: l.opts.MaxKeys,
	}

	for pageNum := 1; ; pageNum++ {
		l.log.Debug("fetching page", "bucket", bucket, "page", pageNum, "token", input.ContinuationToken)

		page, err := l.src.ListObjects(ctx, input)
		if err != nil {
			if perr, ok := awss3.AsProviderError(err); ok {
				l.log.Debug("provider error", "bucket", bucket, "page", pageNum, "code", perr.Code)
				l.println(utils.StatusLine(constants.ErrorPrefix,
					fmt.Sprintf("encountered on server. Message:'%s' getting list of objects.", perr.Message)))
				return false, nil
			}
			return false, fmt.Errorf("listing objects in %s: %w", bucket, err)
		}

		for _, obj := range page.Objects {
			l.println(utils.ObjectLine(obj.Key, obj.LastModified, obj.Size))
		}

		if !page.Truncated {
			l.log.Debug("listing complete", "bucket", bucket, "pages", pageNum)
			return true, nil
		}
		input.ContinuationToken = page.NextToken
	}
}

func (l *Lister) info(msg string) {
	l.println(utils.StatusLine(constants.InfoPrefix, msg))
}

func (l *Lister) println(line string) {
	fmt.Fprintln(l.out, line)
}
