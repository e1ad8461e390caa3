package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refrescante-ui/refrescante/internal/errors"
	"github.com/refrescante-ui/refrescante/internal/registry"
	"github.com/refrescante-ui/refrescante/internal/version"
)

// executeCommand runs a fresh command tree against args and captures the
// streams, mirroring what main does with a real process.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	root := NewRootCmd()

	var outBuf, errBuf bytes.Buffer
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	// A nil argument slice would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err = run(root)
	return outBuf.String(), errBuf.String(), err
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	oldDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(oldDir) })
}

func TestDefaultCommand(t *testing.T) {
	stdout, stderr, err := executeCommand(t)

	require.NoError(t, err)
	assert.Equal(t, "Refrescante version: "+version.GetVersion()+"\n", stdout)
	assert.Empty(t, stderr)
}

func TestVersionFlag(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		t.Run(flag, func(t *testing.T) {
			stdout, stderr, err := executeCommand(t, flag)

			require.NoError(t, err)
			assert.Equal(t, version.GetVersion()+"\n", stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestHelpFlag(t *testing.T) {
	for _, flag := range []string{"--help", "-h"} {
		t.Run(flag, func(t *testing.T) {
			stdout, _, err := executeCommand(t, flag)

			require.NoError(t, err)
			assert.Contains(t, stdout, "Usage: refrescante <command> [options]")
			assert.Contains(t, stdout, "Commands:")
			for _, name := range []string{"init", "add", "remove", "upgrade", "wipe", "list", "version"} {
				assert.Contains(t, stdout, name)
			}
		})
	}
}

func TestInitCommand(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "init")

	require.NoError(t, err)
	assert.Equal(t, "Initializing RefrescanteUI project...\n", stdout)
	assert.Empty(t, stderr)
}

func TestWipeCommand(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "wipe")

	require.NoError(t, err)
	assert.Equal(t, "Wiping Refrescante package from the project...\n", stdout)
	assert.Empty(t, stderr)
}

func TestAddCommand(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "add", "button")

	require.NoError(t, err)
	assert.Equal(t, "Adding component: button\n", stdout)
	assert.Empty(t, stderr)
}

func TestAddCommandUncataloguedName(t *testing.T) {
	stdout, _, err := executeCommand(t, "add", "my-custom-widget")

	require.NoError(t, err)
	assert.Equal(t, "Adding component: my-custom-widget\n", stdout)
}

func TestAddCommandMissingArgument(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "add")

	require.Error(t, err)
	assert.Equal(t, errors.ExitError, errors.ExitCode(err))
	assert.True(t, errors.IsKind(err, errors.KindMissingArgument))
	assert.Empty(t, stdout, "handler must not run on a parse error")
	assert.Contains(t, stderr, "not enough arguments")
}

func TestRemoveCommand(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "remove", "dialog")

	require.NoError(t, err)
	assert.Equal(t, "Removing component: dialog\n", stdout)
	assert.Empty(t, stderr)
}

func TestRemoveCommandMissingArgument(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "remove")

	require.Error(t, err)
	assert.Equal(t, errors.ExitError, errors.ExitCode(err))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "not enough arguments")
}

func TestUpgradeCommandAll(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "upgrade")

	require.NoError(t, err)
	assert.Equal(t, "Upgrading Refrescante package and all components...\n", stdout)
	assert.Empty(t, stderr)
}

func TestUpgradeCommandNamed(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"single", []string{"button"}, "Upgrading components: button\n"},
		{"pair", []string{"button", "input"}, "Upgrading components: button, input\n"},
		{"input order preserved", []string{"input", "button"}, "Upgrading components: input, button\n"},
		{"triple", []string{"toast", "card", "badge"}, "Upgrading components: toast, card, badge\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(t, append([]string{"upgrade"}, tt.args...)...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "invalid-command")

	require.Error(t, err)
	assert.Equal(t, errors.ExitError, errors.ExitCode(err))
	assert.True(t, errors.IsKind(err, errors.KindUnknownArgument))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Unknown argument: invalid-command")
}

func TestUnknownFlag(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "--frobnicate")

	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindUnknownArgument))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Unknown argument: --frobnicate")
}

func TestStrictModeRejectsExtraPositional(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "add", "button", "extra")

	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindUnknownArgument))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Unknown argument: extra")
}

func TestStrictModeRejectsArgsOnBareCommands(t *testing.T) {
	for _, command := range []string{"init", "wipe", "list"} {
		t.Run(command, func(t *testing.T) {
			stdout, stderr, err := executeCommand(t, command, "surprise")

			require.Error(t, err)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Unknown argument: surprise")
		})
	}
}

func TestRepeatedInvocationsAreIdentical(t *testing.T) {
	argSets := [][]string{
		nil,
		{"init"},
		{"add", "button"},
		{"upgrade", "button", "input"},
		{"wipe"},
	}

	for _, args := range argSets {
		first, _, err1 := executeCommand(t, args...)
		second, _, err2 := executeCommand(t, args...)

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, first, second)
	}
}

func TestListCommand(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "list")

	require.NoError(t, err)
	assert.Empty(t, stderr)
	for _, c := range registry.Catalog() {
		assert.Contains(t, stdout, c.Name+"\n")
	}
}

func TestListInstalled(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)

	manifest := `package: refrescante
version: 0.1.0
components:
  - name: button
    version: 1.2.0
  - name: input
    version: 1.2.0
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "refrescante.yml"), []byte(manifest), 0o644))

	stdout, stderr, err := executeCommand(t, "list", "--installed")

	require.NoError(t, err)
	assert.Equal(t, "button 1.2.0\ninput 1.2.0\n", stdout)
	assert.Empty(t, stderr)
}

func TestListInstalledMissingManifest(t *testing.T) {
	chdir(t, t.TempDir())

	stdout, stderr, err := executeCommand(t, "list", "--installed")

	require.Error(t, err)
	assert.Equal(t, errors.ExitError, errors.ExitCode(err))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "refrescante.yml")
}

func TestVersionSubcommandText(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Version: "+version.GetVersion())
}

func TestVersionSubcommandJSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "version", "--format", "json")

	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, version.GetVersion(), info["version"])
}

func TestVersionSubcommandBadFormat(t *testing.T) {
	_, stderr, err := executeCommand(t, "version", "--format", "xml")

	require.Error(t, err)
	assert.Contains(t, stderr, "unsupported format")
}

func TestConfigFileOverridesLogging(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)

	cfg := `log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".refrescante.yml"), []byte(cfg), 0o644))

	stdout, stderr, err := executeCommand(t, "add", "button")

	require.NoError(t, err)
	assert.Equal(t, "Adding component: button\n", stdout, "contract stdout is unaffected by config")
	assert.Contains(t, stderr, `"component":"dispatch"`, "debug logging goes to stderr")
}

func TestInvalidLogLevelFlag(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "--log-level", "loud", "init")

	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "log-level")
}
