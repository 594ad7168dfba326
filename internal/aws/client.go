package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3sdk "github.com/aws/aws-sdk-go-v2/service/s3"

	awss3 "tasnim.dev/s3ls/internal/aws/s3"
)

// Options selects the credentials, region and endpoint for a ServiceClient.
// Zero values defer to the SDK's default resolution chain.
type Options struct {
	Profile   string
	Region    string
	Endpoint  string
	PathStyle bool
}

// ServiceClient holds the single S3 client shared by every listing in a run.
type ServiceClient struct {
	Config aws.Config
	S3     *awss3.Client
}

func NewServiceClient(ctx context.Context, opts Options) (*ServiceClient, error) {
	cfg, err := LoadConfig(ctx, opts.Profile, opts.Region)
	if err != nil {
		return nil, err
	}

	return &ServiceClient{
		Config: cfg,
		S3:     awss3.NewClient(awss3sdk.NewFromConfig(cfg, s3Options(opts)...)),
	}, nil
}

// Region is the region every request of this client is bound to.
func (c *ServiceClient) Region() string {
	return c.Config.Region
}

func s3Options(opts Options) []func(*awss3sdk.Options) {
	var fns []func(*awss3sdk.Options)
	if opts.Endpoint != "" {
		fns = append(fns, func(o *awss3sdk.Options) {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		})
	}
	if opts.PathStyle {
		fns = append(fns, func(o *awss3sdk.Options) {
			o.UsePathStyle = true
		})
	}
	return fns
}
