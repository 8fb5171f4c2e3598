package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yourorg/notion-tool/internal/render"
	"github.com/yourorg/notion-tool/internal/schema"
)

type schemaOptions struct {
	databaseID string
}

func newSchemaCmd(globals *globalOptions) *cobra.Command {
	opts := &schemaOptions{}

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print a simplified view of the board's schema",
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVarP(&opts.databaseID, "database", "d", "", databaseFlagHelp)

	return cmd
}

func (opts *schemaOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
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

		return render.OK(cmd.OutOrStdout(), map[string]any{
			"id":         idx.ID(),
			"title":      idx.Title(),
			"properties": schemaProperties(idx),
		})
	}
}

// schemaProperties reduces the schema to property name, type, and the option
// names for option-bearing kinds.
func schemaProperties(idx *schema.Index) map[string]any {
	names := idx.PropertyNames()
	out := make(map[string]any, len(names))
	for _, name := range names {
		def, ok := idx.Property(name)
		if !ok {
			continue
		}
		entry := map[string]any{"type": def.Type}
		switch def.Type {
		case "status", "select", "multi_select":
			options := def.OptionNames()
			if options == nil {
				options = []string{}
			}
			entry["options"] = options
		}
		out[def.Name] = entry
	}
	return out
}
