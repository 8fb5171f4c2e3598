// Package board assembles kanban views of a database grouped by status.
package board

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/yourorg/notion-tool/internal/notion"
)

const defaultConcurrency = 3

// QueryFunc fetches the pages currently sitting in one status column.
type QueryFunc func(ctx context.Context, status string) ([]notion.Page, error)

// Column holds the pages of a single status lane.
type Column struct {
	Status string
	Pages  []notion.Page
}

// Build queries one column per status and returns them in the order the
// statuses were given, regardless of which query finishes first.
func Build(ctx context.Context, fetch QueryFunc, statuses []string) ([]Column, error) {
	columns := make([]Column, len(statuses))

	sem := make(chan struct{}, defaultConcurrency)
	g, groupCtx := errgroup.WithContext(ctx)

	for i := range statuses {
		idx := i
		status := statuses[i]
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-groupCtx.Done():
				return groupCtx.Err()
			}
			defer func() { <-sem }()

			pages, err := fetch(groupCtx, status)
			if err != nil {
				return fmt.Errorf("query column %q: %w", status, err)
			}
			columns[idx] = Column{Status: status, Pages: pages}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build board: %w", err)
	}
	return columns, nil
}
