package notion

import (
	"context"
	"fmt"
	"net/url"
	"path"
)

// GetPage fetches a page by ID.
func (c *Client) GetPage(ctx context.Context, pageID string) (Page, error) {
	if pageID == "" {
		return Page{}, fmt.Errorf("pageID cannot be empty")
	}
	var page Page
	if err := c.do(ctx, httpMethodGet, path.Join("pages", pageID), nil, &page); err != nil {
		return Page{}, err
	}
	return page, nil
}

// GetDatabase retrieves a database and its property schema.
func (c *Client) GetDatabase(ctx context.Context, databaseID string) (Database, error) {
	if databaseID == "" {
		return Database{}, fmt.Errorf("databaseID cannot be empty")
	}
	var db Database
	if err := c.do(ctx, httpMethodGet, path.Join("databases", databaseID), nil, &db); err != nil {
		return Database{}, err
	}
	return db, nil
}

// QueryDatabase executes a filtered query against a database with pagination.
func (c *Client) QueryDatabase(
	ctx context.Context,
	databaseID string,
	req QueryDatabaseRequest,
) (QueryDatabaseResponse, error) {
	if databaseID == "" {
		return QueryDatabaseResponse{}, fmt.Errorf("databaseID cannot be empty")
	}
	var resp QueryDatabaseResponse
	endpoint := path.Join("databases", databaseID, "query")
	if err := c.do(ctx, httpMethodPost, endpoint, req, &resp); err != nil {
		return QueryDatabaseResponse{}, err
	}
	return resp, nil
}

// UpdatePage applies changes to a page's properties or metadata.
func (c *Client) UpdatePage(ctx context.Context, pageID string, req UpdatePageRequest) (Page, error) {
	if pageID == "" {
		return Page{}, fmt.Errorf("pageID cannot be empty")
	}
	var page Page
	if err := c.do(ctx, httpMethodPatch, path.Join("pages", pageID), req, &page); err != nil {
		return Page{}, err
	}
	return page, nil
}

// CreateComment posts a plain-text comment on a page.
func (c *Client) CreateComment(ctx context.Context, pageID, text string) (Comment, error) {
	if pageID == "" {
		return Comment{}, fmt.Errorf("pageID cannot be empty")
	}
	if text == "" {
		return Comment{}, fmt.Errorf("comment text cannot be empty")
	}
	req := CreateCommentRequest{
		Parent:   CommentParent{PageID: pageID},
		RichText: []RichText{{Type: "text", Text: &Text{Content: text}}},
	}
	var comment Comment
	if err := c.do(ctx, httpMethodPost, "comments", req, &comment); err != nil {
		return Comment{}, err
	}
	return comment, nil
}

// ListComments fetches comments attached to a page or block.
func (c *Client) ListComments(
	ctx context.Context,
	blockID string,
	startCursor string,
) (ListCommentsResponse, error) {
	if blockID == "" {
		return ListCommentsResponse{}, fmt.Errorf("blockID cannot be empty")
	}

	params := url.Values{}
	params.Set("block_id", blockID)
	if startCursor != "" {
		params.Set("start_cursor", startCursor)
	}

	var resp ListCommentsResponse
	if err := c.do(ctx, httpMethodGet, "comments?"+params.Encode(), nil, &resp); err != nil {
		return ListCommentsResponse{}, err
	}
	return resp, nil
}

// AppendBlockChildren appends blocks to the specified block or page.
func (c *Client) AppendBlockChildren(ctx context.Context, blockID string, blocks []Block) error {
	if blockID == "" {
		return fmt.Errorf("blockID cannot be empty")
	}
	if len(blocks) == 0 {
		return fmt.Errorf("no blocks supplied")
	}
	req := AppendBlockChildrenRequest{Children: blocks}
	return c.do(ctx, httpMethodPatch, path.Join("blocks", blockID, "children"), req, nil)
}

const (
	httpMethodGet   = "GET"
	httpMethodPost  = "POST"
	httpMethodPatch = "PATCH"
)
