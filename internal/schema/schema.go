// Package schema indexes Notion database schemas for status and tag lookups.
package schema

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/yourorg/notion-tool/internal/notion"
)

// Index holds one database's property schema with fast name lookups.
type Index struct {
	byName map[string]notion.PropertyDefinition
	order  []string
	title  string
	id     string
}

// NewIndex builds a schema index from a database definition.
func NewIndex(db notion.Database) *Index {
	byName := make(map[string]notion.PropertyDefinition, len(db.Properties))
	names := make([]string, 0, len(db.Properties))

	for name, def := range db.Properties {
		if def.Name == "" {
			def.Name = name
		}
		byName[normalize(name)] = def
		names = append(names, name)
	}

	sort.Strings(names)

	return &Index{
		byName: byName,
		order:  names,
		title:  notion.PlainText(db.Title),
		id:     db.ID,
	}
}

// ID returns the database ID the index was built from.
func (i *Index) ID() string {
	if i == nil {
		return ""
	}
	return i.id
}

// Title returns the database title as plain text.
func (i *Index) Title() string {
	if i == nil {
		return ""
	}
	return i.title
}

// Property resolves a property by name, case-insensitively.
func (i *Index) Property(name string) (notion.PropertyDefinition, bool) {
	if i == nil {
		return notion.PropertyDefinition{}, false
	}
	def, ok := i.byName[normalize(name)]
	return def, ok
}

// PropertyNames returns the sorted property names for deterministic output.
func (i *Index) PropertyNames() []string {
	if i == nil {
		return nil
	}
	out := make([]string, len(i.order))
	copy(out, i.order)
	return out
}

// StatusProperty returns the name of the database's status property. When a
// database defines several, the alphabetically first is used.
func (i *Index) StatusProperty() (string, bool) {
	if i == nil {
		return "", false
	}
	for _, name := range i.order {
		if def, ok := i.byName[normalize(name)]; ok && def.Type == "status" {
			return def.Name, true
		}
	}
	return "", false
}

// StatusOptions lists the configured status option names in workspace order.
func (i *Index) StatusOptions() []string {
	name, ok := i.StatusProperty()
	if !ok {
		return nil
	}
	def := i.byName[normalize(name)]
	return def.OptionNames()
}

// TagProperties returns the sorted names of all multi-select properties.
func (i *Index) TagProperties() []string {
	if i == nil {
		return nil
	}
	var tags []string
	for _, name := range i.order {
		if def, ok := i.byName[normalize(name)]; ok && def.Type == "multi_select" {
			tags = append(tags, def.Name)
		}
	}
	return tags
}

// TagOptions lists the option names of a multi-select property.
func (i *Index) TagOptions(name string) ([]string, bool) {
	def, ok := i.Property(name)
	if !ok || def.Type != "multi_select" {
		return nil, false
	}
	return def.OptionNames(), true
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Getter fetches database definitions. *notion.Client satisfies it.
type Getter interface {
	GetDatabase(ctx context.Context, databaseID string) (notion.Database, error)
}

// Cache memoizes schema indexes per database for the life of a process, so
// repeated commands against the same board fetch the schema once.
type Cache struct {
	mu      sync.Mutex
	indexes map[string]*Index
}

// NewCache returns an empty schema cache.
func NewCache() *Cache {
	return &Cache{indexes: make(map[string]*Index)}
}

// Get returns the cached index for a database, fetching it on first use.
func (c *Cache) Get(ctx context.Context, src Getter, databaseID string) (*Index, error) {
	c.mu.Lock()
	if idx, ok := c.indexes[databaseID]; ok {
		c.mu.Unlock()
		return idx, nil
	}
	c.mu.Unlock()

	db, err := src.GetDatabase(ctx, databaseID)
	if err != nil {
		return nil, err
	}
	idx := NewIndex(db)

	c.mu.Lock()
	c.indexes[databaseID] = idx
	c.mu.Unlock()
	return idx, nil
}
