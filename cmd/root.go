// Package cmd provides the command-line interface for refrescante.
//
// The command set is declared once, at process start, as an immutable tree
// of cobra commands; dispatch is cobra's lookup over that tree. Each
// command parses its arguments into a typed invocation (internal/cli)
// before its handler runs, and the parser is strict: any token that does
// not match a declared command or flag fails the invocation before any
// handler executes.
//
// Configuration is optional and resolved in PersistentPreRunE from
// .refrescante.yml and REFRESCANTE_* environment variables; it never
// changes the command contract, only diagnostics and file locations.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/refrescante-ui/refrescante/internal/cli"
	"github.com/refrescante-ui/refrescante/internal/config"
	"github.com/refrescante-ui/refrescante/internal/errors"
	"github.com/refrescante-ui/refrescante/internal/logging"
	"github.com/refrescante-ui/refrescante/internal/version"
)

const usageTemplate = `Usage: {{.UseLine}}{{if .HasAvailableSubCommands}}

Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Options:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global options:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} <command> --help" for more information about a command.{{end}}
`

// app carries the per-invocation state shared by the command handlers:
// resolved configuration and the logger. A fresh app is built for every
// command tree, so no state leaks between invocations.
type app struct {
	cfgFile  string
	logLevel string

	cfg    *config.Config
	logger logging.Logger
}

// NewRootCmd builds the complete refrescante command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.Default(),
		logger: logging.NewLogger(nil),
	}

	root := &cobra.Command{
		Use:   "refrescante <command> [options]",
		Short: "Manage RefrescanteUI components in your project",
		Long: `Refrescante is the command-line tool for RefrescanteUI. It initializes
projects, adds and removes components, upgrades installed components, and
wipes the package again when you are done with it.`,
		Version:               version.GetVersion(),
		Args:                  cobra.ArbitraryArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		PersistentPreRunE:     a.initialize,
		RunE:                  a.runRoot,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is .refrescante.yml)")
	root.PersistentFlags().StringVarP(&a.logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")

	root.SetVersionTemplate("{{.Version}}\n")
	root.SetUsageTemplate(usageTemplate)
	root.SetFlagErrorFunc(rewriteFlagError)
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		a.newInitCmd(),
		a.newAddCmd(),
		a.newRemoveCmd(),
		a.newUpgradeCmd(),
		a.newListCmd(),
		a.newWipeCmd(),
		a.newVersionCmd(),
	)

	return root
}

// Execute runs the CLI for the process argument vector.
func Execute() error {
	return run(NewRootCmd())
}

// run executes a built command tree and reports any failure on the tree's
// error stream. Errors are printed here exactly once; cobra's own error
// reporting is silenced.
func run(root *cobra.Command) error {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

// initialize resolves configuration and the logger before any handler
// runs. The --version and --help paths terminate earlier and skip it.
func (a *app) initialize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		if !logging.IsValidLevel(a.logLevel) {
			return errors.NewConfigError("log-level must be one of debug, info, warn, error", nil)
		}
		cfg.Log.Level = a.logLevel
	}

	a.cfg = cfg
	a.logger = logging.NewLogger(&logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})

	return nil
}

// runRoot is the default command: with no arguments it reports the tool
// version. Any leftover token here matched no declared command and is
// rejected.
func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.NewUnknownArgument(args[0])
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Refrescante version: %s\n", version.GetVersion())
	return nil
}

// logDispatch records which typed invocation a handler is about to run.
func (a *app) logDispatch(inv cli.Invocation) {
	a.logger.WithComponent("dispatch").Debug("running command", "command", inv.Command())
}

// rewriteFlagError maps pflag's unknown-flag errors onto the dispatcher's
// unknown-argument error so flag and command tokens fail uniformly.
func rewriteFlagError(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	if token, ok := strings.CutPrefix(msg, "unknown flag: "); ok {
		return errors.NewUnknownArgument(token)
	}
	if rest, ok := strings.CutPrefix(msg, "unknown shorthand flag: "); ok {
		// pflag reports `'x' in -xyz`; surface the whole group token.
		if i := strings.LastIndex(rest, " in "); i >= 0 {
			rest = rest[i+len(" in "):]
		}
		return errors.NewUnknownArgument(rest)
	}

	return err
}
