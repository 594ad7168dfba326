package cmd

import (
	"context"
	"fmt"
	"log/slog"

	awsclient "tasnim.dev/s3ls/internal/aws"
	"tasnim.dev/s3ls/internal/listing"
)

// SourceFactory builds the storage source every listing in a run shares.
type SourceFactory func(ctx context.Context, opts awsclient.Options, logger *slog.Logger) (listing.Source, error)

// DefaultSource resolves credentials and region once through the AWS SDK
// and returns the resulting S3 client.
func DefaultSource(ctx context.Context, opts awsclient.Options, logger *slog.Logger) (listing.Source, error) {
	client, err := awsclient.NewServiceClient(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("initializing AWS client: %w", err)
	}

	logger.Debug("aws client ready", "profile", opts.Profile, "region", client.Region(), "endpoint", opts.Endpoint)
	if logger.Enabled(ctx, slog.LevelDebug) {
		account, err := awsclient.CallerAccount(ctx, client.Config)
		if err != nil {
			logger.Debug("caller identity unavailable", "error", err)
		} else {
			logger.Debug("caller identity", "account", account)
		}
	}
	return client.S3, nil
}
