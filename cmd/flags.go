package cmd

import (
	"github.com/spf13/pflag"

	"github.com/refrescante-ui/refrescante/internal/cli"
)

// bindListFlags declares the list command's flags directly against its
// typed invocation, so the handler only ever reads parsed fields.
func bindListFlags(fs *pflag.FlagSet, inv *cli.ListInvocation) {
	fs.BoolVar(&inv.Installed, "installed", false, "list installed components from the project manifest")
}
