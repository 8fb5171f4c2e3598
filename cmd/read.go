package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yourorg/notion-tool/internal/render"
	"github.com/yourorg/notion-tool/internal/transform"
)

type readOptions struct {
	databaseID string
}

func newReadCmd(globals *globalOptions) *cobra.Command {
	opts := &readOptions{}

	cmd := &cobra.Command{
		Use:   "read <item-id>",
		Short: "Read a board item and print its flattened properties",
		Args:  cobra.ExactArgs(1),
		RunE:  opts.run(globals),
	}

	// Pages are addressed globally, so the database flag is accepted for
	// symmetry with the other board commands but never consulted.
	cmd.Flags().StringVarP(&opts.databaseID, "database", "d", "", databaseFlagHelp)

	return cmd
}

func (opts *readOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}

		page, err := client.GetPage(cmd.Context(), args[0])
		if err != nil {
			return failWith(cmd, err)
		}

		return render.OK(cmd.OutOrStdout(), transform.Item(page))
	}
}
