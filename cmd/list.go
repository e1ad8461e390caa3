package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refrescante-ui/refrescante/internal/cli"
	"github.com/refrescante-ui/refrescante/internal/registry"
)

func (a *app) newListCmd() *cobra.Command {
	inv := &cli.ListInvocation{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List RefrescanteUI components",
		Long: `List the components available in the RefrescanteUI catalog.

With --installed, list the components recorded in the project manifest
instead, together with their pinned versions.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logDispatch(*inv)

			if inv.Installed {
				manifest, err := registry.LoadManifest(a.cfg.Components.Manifest)
				if err != nil {
					return err
				}
				for _, c := range manifest.Components {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c.Name, c.Version)
				}
				return nil
			}

			for _, name := range registry.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	bindListFlags(cmd.Flags(), inv)

	return cmd
}
