package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refrescante-ui/refrescante/internal/cli"
)

func (a *app) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <component-name>",
		Short: "Remove a component from the project",
		Args:  requiredArg("component-name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := cli.RemoveInvocation{Component: args[0]}
			a.logDispatch(inv)

			// TODO: scan the project for references before deleting the
			// component's files and manifest entry.
			fmt.Fprintf(cmd.OutOrStdout(), "Removing component: %s\n", inv.Component)
			return nil
		},
	}
}
