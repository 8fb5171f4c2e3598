package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yourorg/notion-tool/internal/setup"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Provision the managed notion-tool environment",
		Long: `Install the notion-tool environment for the current user.

The installer discovers a Python 3 interpreter, creates a virtualenv under
~/.notion-tool/venv, installs the package from the source checkout next to
this binary, links ~/.local/bin/notion-tool at the virtualenv's executable,
and ensures your shell configuration puts ~/.local/bin on PATH.

Each step is idempotent: re-running the installer over an existing
environment upgrades it in place and never duplicates the PATH entry.`,
		Args: cobra.NoArgs,
		RunE: runInstall,
	}
}

func runInstall(cmd *cobra.Command, _ []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}
	source, err := sourceDir()
	if err != nil {
		return err
	}

	cfg := setup.Config{
		Paths:  setup.NewPaths(home),
		Shell:  os.Getenv("SHELL"),
		Source: source,
		Runner: &setup.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
		Out:    cmd.OutOrStdout(),
	}

	if _, err := setup.Install(cmd.Context(), cfg); err != nil {
		return err
	}
	return nil
}

// sourceDir locates the source checkout adjacent to the running binary, which
// is what the installer feeds to pip.
func sourceDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	return filepath.Dir(resolved), nil
}
