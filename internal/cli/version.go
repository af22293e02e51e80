package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codegod100/libby/internal/version"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), info.Detailed())
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only version-commit")
	return cmd
}
