package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refrescante-ui/refrescante/internal/cli"
	"github.com/refrescante-ui/refrescante/internal/registry"
)

func (a *app) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <component-name>",
		Short: "Add a component to the project",
		Args:  requiredArg("component-name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := cli.AddInvocation{Component: args[0]}
			a.logDispatch(inv)

			if c, known := registry.Lookup(inv.Component); known {
				a.logger.Debug("catalog component", "component", c.Name, "version", c.Version)
			} else {
				a.logger.Debug("component not in catalog", "component", inv.Component)
			}

			// TODO: fetch the component boilerplate into the configured
			// components directory and record it in the manifest.
			fmt.Fprintf(cmd.OutOrStdout(), "Adding component: %s\n", inv.Component)
			return nil
		},
	}
}
