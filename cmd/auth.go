package cmd

import "github.com/spf13/cobra"

func newAuthCmd(globals *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Notion credentials and board defaults",
	}

	cmd.AddCommand(newAuthLoginCmd(globals))
	cmd.AddCommand(newAuthStatusCmd(globals))

	return cmd
}
