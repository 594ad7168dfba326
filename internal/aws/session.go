package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// LoadConfig resolves credentials and region once for the whole run.
// Empty profile or region defer to the SDK chain (AWS_PROFILE, AWS_REGION,
// shared config files).
func LoadConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading AWS config: %w", err)
	}
	return cfg, nil
}

type CallerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// AccountID returns the account the credentials behind api belong to.
func AccountID(ctx context.Context, api CallerIdentityAPI) (string, error) {
	out, err := api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("GetCallerIdentity: %w", err)
	}
	if out.Account == nil {
		return "", errors.New("GetCallerIdentity: response has no account")
	}
	return *out.Account, nil
}

// CallerAccount looks up the account ID for cfg through STS.
func CallerAccount(ctx context.Context, cfg aws.Config) (string, error) {
	return AccountID(ctx, sts.NewFromConfig(cfg))
}
