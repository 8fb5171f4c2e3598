package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourorg/notion-tool/internal/notion"
	"github.com/yourorg/notion-tool/internal/render"
	"github.com/yourorg/notion-tool/internal/schema"
	"github.com/yourorg/notion-tool/internal/transform"
)

//nolint:govet // fieldalignment: struct keeps related CLI options grouped logically.
type queryOptions struct {
	databaseID string
	status     string
	tags       []string
	filter     string
	limit      int
}

func newQueryCmd(globals *globalOptions) *cobra.Command {
	opts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query board items by status, tags, or a custom filter",
		Long: `Query items from the board database.

Filters are mutually exclusive; when several are given, the most specific one
wins: --filter overrides --tags, which overrides --status.`,
		RunE: opts.run(globals),
	}

	cmd.Flags().StringVarP(&opts.databaseID, "database", "d", "", databaseFlagHelp)
	cmd.Flags().StringVarP(&opts.status, "status", "s", "", "Filter by status")
	cmd.Flags().StringSliceVarP(&opts.tags, "tags", "t", nil, "Filter by tags (comma-separated)")
	cmd.Flags().StringVarP(&opts.filter, "filter", "f", "", "Custom filter (e.g., 'priority=high')")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 0, "Maximum number of results")

	return cmd
}

func (opts *queryOptions) run(globals *globalOptions) func(*cobra.Command, []string) error {
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

		req := notion.QueryDatabaseRequest{
			Filter:   buildQueryFilter(idx, opts.status, trimTags(opts.tags), opts.filter),
			PageSize: opts.limit,
		}
		resp, err := client.QueryDatabase(ctx, databaseID, req)
		if err != nil {
			return failWith(cmd, err)
		}

		items := make([]map[string]any, 0, len(resp.Results))
		for _, page := range resp.Results {
			items = append(items, transform.Item(page))
		}

		data := map[string]any{
			"items":       items,
			"has_more":    resp.HasMore,
			"next_cursor": nil,
		}
		if resp.NextCursor != "" {
			data["next_cursor"] = resp.NextCursor
		}
		return render.OK(cmd.OutOrStdout(), data)
	}
}

// buildQueryFilter composes the Notion filter object. Later filter kinds
// replace earlier ones so the caller's most specific intent wins.
func buildQueryFilter(idx *schema.Index, status string, tags []string, custom string) any {
	var filter any

	if status != "" {
		if property, ok := idx.StatusProperty(); ok {
			filter = map[string]any{
				"property": property,
				"status":   map[string]any{"equals": status},
			}
		}
	}

	if len(tags) > 0 {
		if props := idx.TagProperties(); len(props) > 0 {
			filter = tagFilter(props[0], tags)
		}
	}

	if custom != "" {
		if parsed := customFilter(idx, custom); parsed != nil {
			filter = parsed
		}
	}

	return filter
}

func tagFilter(property string, tags []string) any {
	if len(tags) == 1 {
		return map[string]any{
			"property":     property,
			"multi_select": map[string]any{"contains": tags[0]},
		}
	}
	clauses := make([]any, 0, len(tags))
	for _, tag := range tags {
		clauses = append(clauses, map[string]any{
			"property":     property,
			"multi_select": map[string]any{"contains": tag},
		})
	}
	return map[string]any{"and": clauses}
}

// customFilter parses a "property=value" expression and shapes the condition
// by the property's schema type. Unknown properties and malformed expressions
// yield no filter.
func customFilter(idx *schema.Index, expr string) any {
	name, value, ok := strings.Cut(expr, "=")
	if !ok {
		return nil
	}
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)

	def, ok := idx.Property(name)
	if !ok {
		return nil
	}

	switch def.Type {
	case "status":
		return map[string]any{"property": def.Name, "status": map[string]any{"equals": value}}
	case "select":
		return map[string]any{"property": def.Name, "select": map[string]any{"equals": value}}
	case "multi_select":
		return map[string]any{"property": def.Name, "multi_select": map[string]any{"contains": value}}
	default:
		return map[string]any{"property": def.Name, "title": map[string]any{"equals": value}}
	}
}

func trimTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
