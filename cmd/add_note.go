package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/brittonhayes/notionmd"
	"github.com/spf13/cobra"

	"github.com/yourorg/notion-tool/internal/notion"
	"github.com/yourorg/notion-tool/internal/render"
)

type addNoteOptions struct {
	databaseID   string
	markdownPath string
}

func newAddNoteCmd(globals *globalOptions) *cobra.Command {
	opts := &addNoteOptions{}

	cmd := &cobra.Command{
		Use:   "add-note <item-id> [note]",
		Short: "Attach a comment or Markdown note to a board item",
		Long: `Add a note to a board item.

By default the note text becomes a comment on the item's page. With --md the
contents of a Markdown file are appended to the page as blocks instead.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: opts.run(globals),
	}

	cmd.Flags().StringVarP(&opts.databaseID, "database", "d", "", databaseFlagHelp)
	cmd.Flags().StringVar(&opts.markdownPath, "md", "", "Path to a Markdown file appended as page content")

	return cmd
}

func (opts *addNoteOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		itemID := args[0]

		if opts.markdownPath == "" && len(args) < 2 {
			return errors.New("note text is required unless --md is given")
		}
		if opts.markdownPath != "" && len(args) > 1 {
			return errors.New("cannot combine a note argument with --md")
		}

		client, err := buildClient(globals.profile)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if opts.markdownPath != "" {
			count, err := appendMarkdownNote(ctx, client, itemID, opts.markdownPath)
			if err != nil {
				return failWith(cmd, err)
			}
			return render.OK(cmd.OutOrStdout(), map[string]any{
				"id":              itemID,
				"blocks_appended": count,
			})
		}

		note := args[1]
		comment, err := client.CreateComment(ctx, itemID, note)
		if err != nil {
			return failWith(cmd, err)
		}

		return render.OK(cmd.OutOrStdout(), map[string]any{
			"id":            itemID,
			"comment_id":    comment.ID,
			"discussion_id": comment.DiscussionID,
			"note":          note,
		})
	}
}

func appendMarkdownNote(ctx context.Context, client *notion.Client, itemID, path string) (int, error) {
	blocks, err := loadMarkdownBlocks(path)
	if err != nil {
		return 0, err
	}
	if len(blocks) == 0 {
		return 0, errors.New("no blocks generated from markdown")
	}
	if err := client.AppendBlockChildren(ctx, itemID, blocks); err != nil {
		return 0, fmt.Errorf("append blocks: %w", err)
	}
	return len(blocks), nil
}

func loadMarkdownBlocks(path string) ([]notion.Block, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- reading user-supplied markdown by design
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	blocksJSON, err := notionmd.ConvertToJSON(string(data))
	if err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	encoded, err := json.Marshal(blocksJSON)
	if err != nil {
		return nil, fmt.Errorf("encode blocks: %w", err)
	}

	var blocks []notion.Block
	if err := json.Unmarshal(encoded, &blocks); err != nil {
		return nil, fmt.Errorf("decode blocks: %w", err)
	}

	return blocks, nil
}
