package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/notion-tool/internal/config"
	"github.com/yourorg/notion-tool/internal/render"
)

func newAuthStatusCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which credentials and board the profile would use",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAuthStatus(cmd, globals)
		},
	}
}

// runAuthStatus reports the credential source without ever printing the
// secret itself.
func runAuthStatus(cmd *cobra.Command, globals *globalOptions) error {
	out := cmd.OutOrStdout()

	version, err := config.LoadVersion(globals.profile)
	if err != nil {
		return fmt.Errorf("load notion version: %w", err)
	}
	databaseID, err := config.LoadDatabase(globals.profile)
	if err != nil {
		return fmt.Errorf("load default database: %w", err)
	}
	if databaseID == "" {
		databaseID = "(not set)"
	}

	fmt.Fprintf(out, "Profile:        %s\n", globals.profile)
	fmt.Fprintf(out, "Notion-Version: %s\n", version)
	fmt.Fprintf(out, "Database:       %s\n", databaseID)

	if _, source, err := config.ResolveToken(globals.profile); err != nil {
		render.Warnf(out, "No credentials available: %v", err)
	} else {
		render.Successf(out, "Token available from %s", source)
	}
	return nil
}
