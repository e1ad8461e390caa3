package cmd

import (
	"github.com/spf13/cobra"

	"github.com/refrescante-ui/refrescante/internal/errors"
)

// requiredArg enforces a single required positional argument. A missing
// argument is a parse error that prevents the handler from running; a
// second positional is an unknown token under strict mode.
func requiredArg(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.NewMissingArgument(cmd.Name(), name)
		}
		if len(args) > 1 {
			return errors.NewUnknownArgument(args[1])
		}
		return nil
	}
}

// noArgs rejects any positional argument with the dispatcher's
// unknown-argument error instead of cobra's default message.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.NewUnknownArgument(args[0])
	}
	return nil
}
