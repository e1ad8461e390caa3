package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refrescante-ui/refrescante/internal/cli"
)

func (a *app) newWipeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wipe",
		Short: "Remove the Refrescante package from the project",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := cli.WipeInvocation{}
			a.logDispatch(inv)

			fmt.Fprintln(cmd.OutOrStdout(), "Wiping Refrescante package from the project...")
			return nil
		},
	}
}
