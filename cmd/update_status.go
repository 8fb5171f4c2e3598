package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yourorg/notion-tool/internal/notion"
	"github.com/yourorg/notion-tool/internal/render"
)

type updateStatusOptions struct {
	databaseID string
}

func newUpdateStatusCmd(globals *globalOptions) *cobra.Command {
	opts := &updateStatusOptions{}

	cmd := &cobra.Command{
		Use:   "update-status <item-id> <status>",
		Short: "Move a board item to a new status",
		Args:  cobra.ExactArgs(2),
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVarP(&opts.databaseID, "database", "d", "", databaseFlagHelp)

	return cmd
}

func (opts *updateStatusOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		itemID, status := args[0], args[1]

		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}
		databaseID, err := resolveDatabase(globals, opts.databaseID)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		idx, err := schemas.Get(ctx, client, databaseID)
		if err != nil {
			return failWith(cmd, err)
		}

		property, ok := idx.StatusProperty()
		if !ok {
			return failDetail(cmd, map[string]any{
				"message": "No status property found in database",
			})
		}

		// An empty option list means the workspace has not configured the
		// property yet; let the API be the judge in that case.
		if options := idx.StatusOptions(); len(options) > 0 && !slices.Contains(options, status) {
			return failDetail(cmd, map[string]any{
				"message":           fmt.Sprintf("Invalid status '%s'", status),
				"available_options": options,
			})
		}

		req := notion.UpdatePageRequest{
			Properties: map[string]any{
				property: map[string]any{"status": map[string]any{"name": status}},
			},
		}
		if _, err := client.UpdatePage(ctx, itemID, req); err != nil {
			return failWith(cmd, err)
		}

		return render.OK(cmd.OutOrStdout(), map[string]any{
			"id":       itemID,
			"status":   status,
			"property": property,
		})
	}
}
