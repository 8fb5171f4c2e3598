package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourorg/notion-tool/internal/setup"
)

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the managed notion-tool environment",
		Long: `Remove everything the installer created: the launcher symlink in
~/.local/bin, the virtualenv under ~/.notion-tool, and the ~/.notion-tool
directory itself once it is empty.

Your shell configuration and the NOTION_API_KEY variable are left untouched,
so a later reinstall picks the existing setup straight back up. Artifacts
that are already gone are reported and skipped; the command is safe to run
any number of times.`,
		Args: cobra.NoArgs,
		RunE: runUninstall,
	}
}

func runUninstall(cmd *cobra.Command, _ []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := setup.Config{
		Paths: setup.NewPaths(home),
		Out:   cmd.OutOrStdout(),
	}

	if _, err := setup.Uninstall(cfg); err != nil {
		return err
	}
	return nil
}
