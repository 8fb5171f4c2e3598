package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type globalOptions struct {
	profile string
}

var globals = &globalOptions{
	profile: "default",
}

var rootCmd = &cobra.Command{
	Use:           "notion-tool",
	Short:         "Manage a Notion kanban board from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command hierarchy.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("execute command: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globals.profile, "profile", globals.profile, "Auth profile to use")

	rootCmd.SetErr(os.Stderr)
	rootCmd.SetOut(os.Stdout)

	rootCmd.AddCommand(newAuthCmd(globals))
	rootCmd.AddCommand(newReadCmd(globals))
	rootCmd.AddCommand(newUpdateStatusCmd(globals))
	rootCmd.AddCommand(newAddNoteCmd(globals))
	rootCmd.AddCommand(newQueryCmd(globals))
	rootCmd.AddCommand(newListStatusCmd(globals))
	rootCmd.AddCommand(newListTagsCmd(globals))
	rootCmd.AddCommand(newSchemaCmd(globals))
	rootCmd.AddCommand(newBoardCmd(globals))
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newUninstallCmd())
}
