package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	awsclient "tasnim.dev/s3ls/internal/aws"
	"tasnim.dev/s3ls/internal/config"
	"tasnim.dev/s3ls/internal/listing"
	"tasnim.dev/s3ls/internal/logging"
)

// ErrListingFailed reports that the provider rejected an object listing.
// The provider's message has already been printed by then.
var ErrListingFailed = errors.New("listing bucket contents failed")

type rootOptions struct {
	profile   string
	region    string
	endpoint  string
	pathStyle bool
	logLevel  string

	prefix  string
	maxKeys int32

	cfg    *config.Config
	logger *slog.Logger
}

func NewRootCmd(newSource SourceFactory) *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "s3ls [bucket_name]",
		Short: "List your S3 buckets and the contents of one of them",
		Long: `s3ls lists the buckets owned by your AWS account, then lists the
objects of one bucket. The bucket is taken from the argument, the
default_bucket config key, or a built-in default, in that order.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("too many arguments specified: expected at most one bucket name, got %d", len(args))
			}
			return nil
		},
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			o.cfg = cfg
			o.logger = logging.Setup(cfg.Level(o.logLevel))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			l, err := o.lister(cmd, newSource)
			if err != nil {
				return err
			}
			if err := l.Buckets(cmd.Context()); err != nil {
				return err
			}
			return o.listObjects(cmd, l, firstArg(args))
		},
	}

	cmd.PersistentFlags().StringVarP(&o.profile, "profile", "p", "", "AWS profile to use")
	cmd.PersistentFlags().StringVarP(&o.region, "region", "r", "", "AWS region to use")
	cmd.PersistentFlags().StringVar(&o.endpoint, "endpoint", "", "custom S3 endpoint URL (MinIO, LocalStack)")
	cmd.PersistentFlags().BoolVar(&o.pathStyle, "path-style", false, "use path-style bucket addressing")
	cmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")
	addObjectFlags(cmd, o)

	cmd.AddCommand(newBucketsCmd(o, newSource))
	cmd.AddCommand(newObjectsCmd(o, newSource))

	return cmd
}

func addObjectFlags(cmd *cobra.Command, o *rootOptions) {
	cmd.Flags().StringVar(&o.prefix, "prefix", "", "only list keys starting with this prefix")
	cmd.Flags().Int32Var(&o.maxKeys, "max-keys", 0, "maximum objects per page (default: provider limit)")
}

// lister builds one source for the whole run, so every listing is bound to
// the same region.
func (o *rootOptions) lister(cmd *cobra.Command, newSource SourceFactory) (*listing.Lister, error) {
	profile, region := o.cfg.Merge(o.profile, o.region)
	endpoint := o.endpoint
	if endpoint == "" {
		endpoint = o.cfg.Endpoint
	}
	maxKeys := o.maxKeys
	if maxKeys == 0 {
		maxKeys = o.cfg.MaxKeys
	}

	src, err := newSource(cmd.Context(), awsclient.Options{
		Profile:   profile,
		Region:    region,
		Endpoint:  endpoint,
		PathStyle: o.pathStyle || o.cfg.PathStyle,
	}, o.logger)
	if err != nil {
		return nil, err
	}

	return listing.NewLister(src, cmd.OutOrStdout(), listing.Options{
		Prefix:  o.prefix,
		MaxKeys: maxKeys,
		Logger:  o.logger,
	}), nil
}

func (o *rootOptions) listObjects(cmd *cobra.Command, l *listing.Lister, arg string) error {
	bucket := o.cfg.Bucket(arg)
	ok, err := l.Objects(cmd.Context(), bucket)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", bucket, ErrListingFailed)
	}
	return nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
