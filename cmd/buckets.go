package cmd

import (
	"github.com/spf13/cobra"
)

func newBucketsCmd(o *rootOptions, newSource SourceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "buckets",
		Short: "List the buckets owned by your account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			l, err := o.lister(cmd, newSource)
			if err != nil {
				return err
			}
			return l.Buckets(cmd.Context())
		},
	}
}
