package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yourorg/notion-tool/internal/board"
	"github.com/yourorg/notion-tool/internal/notion"
	"github.com/yourorg/notion-tool/internal/render"
	"github.com/yourorg/notion-tool/internal/transform"
)

//nolint:govet // fieldalignment: struct keeps related CLI options grouped logically.
type boardOptions struct {
	databaseID string
	jsonOut    bool
	limit      int
}

func newBoardCmd(globals *globalOptions) *cobra.Command {
	opts := &boardOptions{limit: 100}

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the whole board grouped by status column",
		RunE:  opts.run(globals),
	}

	cmd.Flags().StringVarP(&opts.databaseID, "database", "d", "", databaseFlagHelp)
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Print the board as a JSON envelope")
	cmd.Flags().IntVar(&opts.limit, "limit", opts.limit, "Maximum items per column")

	return cmd
}

func (opts *boardOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
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

		fetch := func(ctx context.Context, status string) ([]notion.Page, error) {
			resp, err := client.QueryDatabase(ctx, databaseID, notion.QueryDatabaseRequest{
				Filter: map[string]any{
					"property": property,
					"status":   map[string]any{"equals": status},
				},
				PageSize: opts.limit,
			})
			if err != nil {
				return nil, err
			}
			return resp.Results, nil
		}

		columns, err := board.Build(ctx, fetch, idx.StatusOptions())
		if err != nil {
			return failWith(cmd, err)
		}

		if opts.jsonOut {
			return render.OK(cmd.OutOrStdout(), boardData(idx.Title(), columns))
		}
		renderBoard(cmd.OutOrStdout(), idx.Title(), columns)
		return nil
	}
}

func boardData(title string, columns []board.Column) map[string]any {
	cols := make([]map[string]any, 0, len(columns))
	for _, col := range columns {
		items := make([]map[string]any, 0, len(col.Pages))
		for _, page := range col.Pages {
			items = append(items, transform.Item(page))
		}
		cols = append(cols, map[string]any{
			"status": col.Status,
			"count":  len(col.Pages),
			"items":  items,
		})
	}
	return map[string]any{"title": title, "columns": cols}
}

func renderBoard(w io.Writer, title string, columns []board.Column) {
	if title != "" {
		render.Headerf(w, "%s", title)
		fmt.Fprintln(w)
	}
	for i, col := range columns {
		if i > 0 {
			fmt.Fprintln(w)
		}
		render.Headerf(w, "%s (%d)", col.Status, len(col.Pages))
		for _, page := range col.Pages {
			label := transform.Title(page)
			if label == "" {
				label = page.ID
			}
			fmt.Fprintf(w, "  - %s\n", label)
		}
	}
}
