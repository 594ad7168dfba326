package cmd

import (
	"github.com/spf13/cobra"
)

func newObjectsCmd(o *rootOptions, newSource SourceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "objects [bucket_name]",
		Short: "List the objects of one bucket, following every page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			l, err := o.lister(cmd, newSource)
			if err != nil {
				return err
			}
			return o.listObjects(cmd, l, firstArg(args))
		},
	}

	addObjectFlags(cmd, o)

	return cmd
}
