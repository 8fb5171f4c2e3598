package schema_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yourorg/notion-tool/internal/notion"
	"github.com/yourorg/notion-tool/internal/schema"
)

func boardDatabase() notion.Database {
	return notion.Database{
		ID:    "db123",
		Title: []notion.RichText{{Type: "text", PlainText: "Team Tasks"}},
		Properties: map[string]notion.PropertyDefinition{
			"Name": {ID: "title-id", Type: "title"},
			"Status": {
				ID:   "status-id",
				Type: "status",
				Status: &notion.OptionList{
					Options: []notion.SelectOption{
						{ID: "o1", Name: "Not started", Color: "gray"},
						{ID: "o2", Name: "In progress", Color: "blue"},
						{ID: "o3", Name: "Done", Color: "green"},
					},
				},
			},
			"Tags": {
				ID:   "tags-id",
				Type: "multi_select",
				MultiSelect: &notion.OptionList{
					Options: []notion.SelectOption{
						{ID: "t1", Name: "bug"},
						{ID: "t2", Name: "feature"},
					},
				},
			},
			"Priority": {ID: "prio-id", Type: "select"},
		},
	}
}

func TestIndexStatusDiscovery(t *testing.T) {
	idx := schema.NewIndex(boardDatabase())

	name, ok := idx.StatusProperty()
	if !ok || name != "Status" {
		t.Fatalf("StatusProperty() = %q,%v", name, ok)
	}

	options := idx.StatusOptions()
	want := []string{"Not started", "In progress", "Done"}
	if len(options) != len(want) {
		t.Fatalf("unexpected status options: %#v", options)
	}
	for i, opt := range want {
		if options[i] != opt {
			t.Fatalf("status option %d = %q, want %q", i, options[i], opt)
		}
	}
}

func TestIndexTagDiscovery(t *testing.T) {
	idx := schema.NewIndex(boardDatabase())

	tags := idx.TagProperties()
	if len(tags) != 1 || tags[0] != "Tags" {
		t.Fatalf("unexpected tag properties: %#v", tags)
	}

	options, ok := idx.TagOptions("tags")
	if !ok || len(options) != 2 || options[0] != "bug" {
		t.Fatalf("TagOptions(tags) = %#v,%v", options, ok)
	}

	if _, ok := idx.TagOptions("Priority"); ok {
		t.Fatalf("expected select property to be rejected as tag source")
	}
}

func TestIndexCaseInsensitiveLookup(t *testing.T) {
	idx := schema.NewIndex(boardDatabase())

	def, ok := idx.Property("STATUS")
	if !ok || def.Type != "status" {
		t.Fatalf("Property(STATUS) = %#v,%v", def, ok)
	}
	if def.Name != "Status" {
		t.Fatalf("expected canonical name Status, got %q", def.Name)
	}
	if _, ok := idx.Property("missing"); ok {
		t.Fatalf("expected missing property lookup to fail")
	}
}

func TestIndexNoStatusProperty(t *testing.T) {
	db := notion.Database{
		Properties: map[string]notion.PropertyDefinition{
			"Name": {Type: "title"},
		},
	}
	idx := schema.NewIndex(db)

	if _, ok := idx.StatusProperty(); ok {
		t.Fatalf("expected StatusProperty to report absence")
	}
	if options := idx.StatusOptions(); options != nil {
		t.Fatalf("expected nil status options, got %#v", options)
	}
}

type fakeGetter struct {
	db    notion.Database
	err   error
	calls int
}

func (f *fakeGetter) GetDatabase(_ context.Context, _ string) (notion.Database, error) {
	f.calls++
	return f.db, f.err
}

func TestCacheFetchesOnce(t *testing.T) {
	getter := &fakeGetter{db: boardDatabase()}
	cache := schema.NewCache()

	first, err := cache.Get(context.Background(), getter, "db123")
	if err != nil {
		t.Fatalf("first Get returned error: %v", err)
	}
	second, err := cache.Get(context.Background(), getter, "db123")
	if err != nil {
		t.Fatalf("second Get returned error: %v", err)
	}

	if getter.calls != 1 {
		t.Fatalf("expected a single fetch, got %d", getter.calls)
	}
	if first != second {
		t.Fatalf("expected cached index to be reused")
	}
}

func TestCachePropagatesFetchErrors(t *testing.T) {
	getter := &fakeGetter{err: errors.New("boom")}
	cache := schema.NewCache()

	if _, err := cache.Get(context.Background(), getter, "db123"); err == nil {
		t.Fatalf("expected fetch error to propagate")
	}
	if getter.calls != 1 {
		t.Fatalf("expected one attempted fetch, got %d", getter.calls)
	}

	getter.err = nil
	getter.db = boardDatabase()
	if _, err := cache.Get(context.Background(), getter, "db123"); err != nil {
		t.Fatalf("expected retry after error, got %v", err)
	}
}
