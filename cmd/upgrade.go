package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refrescante-ui/refrescante/internal/cli"
	"github.com/refrescante-ui/refrescante/internal/registry"
)

func (a *app) newUpgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade [components...]",
		Short: "Upgrade installed components",
		Long: `Upgrade the named components to their latest catalog versions.
With no arguments, the Refrescante package itself and every installed
component are upgraded.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := cli.UpgradeInvocation{Components: args}
			a.logDispatch(inv)

			// TODO: resolve installed versions against the catalog and
			// apply the version pinning rules.
			if inv.All() {
				a.logger.Debug("upgrading full catalog", "components", len(registry.Catalog()))
				fmt.Fprintln(cmd.OutOrStdout(), "Upgrading Refrescante package and all components...")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Upgrading components: %s\n", inv.Targets())
			return nil
		},
	}
}
