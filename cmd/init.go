package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refrescante-ui/refrescante/internal/cli"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a RefrescanteUI project",
		Long: `Prepare the current directory for RefrescanteUI components.

The project layout and starter files are written under the configured
components directory.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := cli.InitInvocation{}
			a.logDispatch(inv)
			a.logger.Debug("project layout", "dir", a.cfg.Components.Dir, "manifest", a.cfg.Components.Manifest)

			// TODO: write the starter layout and manifest once the
			// boilerplate templates ship.
			fmt.Fprintln(cmd.OutOrStdout(), "Initializing RefrescanteUI project...")
			return nil
		},
	}
}
