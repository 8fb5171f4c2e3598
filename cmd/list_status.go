package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yourorg/notion-tool/internal/render"
)

type listStatusOptions struct {
	databaseID string
}

func newListStatusCmd(globals *globalOptions) *cobra.Command {
	opts := &listStatusOptions{}

	cmd := &cobra.Command{
		Use:   "list-status",
		Short: "List the board's status options",
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVarP(&opts.databaseID, "database", "d", "", databaseFlagHelp)

	return cmd
}

func (opts *listStatusOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}
		databaseID, err := resolveDatabase(globals, opts.databaseID)
		if err != nil {
			return err
		}

		idx, err := schemas.Get(cmd.Context(), client, databaseID)
		if err != nil {
			return failWith(cmd, err)
		}

		options := idx.StatusOptions()
		if len(options) == 0 {
			return failDetail(cmd, map[string]any{
				"message": "No status property found in database",
			})
		}

		property, _ := idx.StatusProperty()
		return render.OK(cmd.OutOrStdout(), map[string]any{
			"property_name": property,
			"options":       options,
		})
	}
}
