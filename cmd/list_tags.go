package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yourorg/notion-tool/internal/render"
)

type listTagsOptions struct {
	databaseID string
}

func newListTagsCmd(globals *globalOptions) *cobra.Command {
	opts := &listTagsOptions{}

	cmd := &cobra.Command{
		Use:   "list-tags",
		Short: "List the board's tag properties and their options",
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVarP(&opts.databaseID, "database", "d", "", databaseFlagHelp)

	return cmd
}

func (opts *listTagsOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
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

		properties := idx.TagProperties()
		if len(properties) == 0 {
			return failDetail(cmd, map[string]any{
				"message": "No tag properties found in database",
			})
		}

		tagsByProperty := make(map[string][]string, len(properties))
		for _, name := range properties {
			options, _ := idx.TagOptions(name)
			if options == nil {
				options = []string{}
			}
			tagsByProperty[name] = options
		}

		return render.OK(cmd.OutOrStdout(), map[string]any{
			"properties":       properties,
			"tags_by_property": tagsByProperty,
		})
	}
}
