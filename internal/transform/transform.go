// Package transform flattens Notion property payloads into plain values
// suitable for JSON output.
package transform

import (
	"encoding/json"
	"time"

	"github.com/yourorg/notion-tool/internal/notion"
)

// Value reduces a typed property to its useful content: titles and rich text
// become strings, selects become option names, relations become ID lists.
// Unknown property types pass through as their raw JSON.
func Value(v notion.PropertyValue) any {
	switch v.Type {
	case "title":
		return notion.PlainText(v.Title)
	case "rich_text":
		return notion.PlainText(v.RichText)
	case "number":
		return deref(v.Number)
	case "select":
		return optionName(v.Select)
	case "multi_select":
		names := make([]string, 0, len(v.MultiSelect))
		for _, s := range v.MultiSelect {
			names = append(names, s.Name)
		}
		return names
	case "status":
		return statusName(v.Status)
	case "date":
		if v.Date == nil {
			return nil
		}
		return normalizeDate(v.Date.Start)
	case "checkbox":
		return deref(v.Checkbox)
	case "url":
		return deref(v.URL)
	case "email":
		return deref(v.Email)
	case "phone_number":
		return deref(v.Phone)
	case "formula":
		if v.Formula == nil {
			return nil
		}
		return formulaValue(*v.Formula)
	case "relation":
		ids := make([]string, 0, len(v.Relation))
		for _, r := range v.Relation {
			ids = append(ids, r.ID)
		}
		return ids
	case "people":
		ids := make([]string, 0, len(v.People))
		for _, p := range v.People {
			ids = append(ids, p.ID)
		}
		return ids
	case "files":
		names := make([]string, 0, len(v.Files))
		for _, f := range v.Files {
			names = append(names, f.Name)
		}
		return names
	case "created_time":
		return timeValue(v.CreatedTime)
	case "last_edited_time":
		return timeValue(v.LastEditedTime)
	case "created_by":
		return userValue(v.CreatedBy)
	case "last_edited_by":
		return userValue(v.LastEditedBy)
	default:
		if len(v.Raw) > 0 {
			return json.RawMessage(v.Raw)
		}
		return nil
	}
}

// Properties flattens every property of a page.
func Properties(props map[string]notion.PropertyValue) map[string]any {
	out := make(map[string]any, len(props))
	for name, v := range props {
		out[name] = Value(v)
	}
	return out
}

// Item projects a page into the flat item shape the CLI emits.
func Item(page notion.Page) map[string]any {
	return map[string]any{
		"id":               page.ID,
		"created_time":     page.CreatedTime,
		"last_edited_time": page.LastEditedTime,
		"archived":         page.Archived,
		"properties":       Properties(page.Properties),
		"url":              page.URL,
	}
}

// Title extracts the page's title property as plain text.
func Title(page notion.Page) string {
	for _, v := range page.Properties {
		if v.Type == "title" {
			return notion.PlainText(v.Title)
		}
	}
	return ""
}

func formulaValue(f notion.FormulaValue) any {
	switch f.Type {
	case "string":
		return deref(f.String)
	case "number":
		return deref(f.Number)
	case "boolean":
		return deref(f.Boolean)
	case "date":
		if f.Date == nil {
			return nil
		}
		return normalizeDate(f.Date.Start)
	default:
		return nil
	}
}

// normalizeDate re-renders RFC 3339 timestamps in canonical form. Date-only
// values and anything unparseable pass through untouched.
func normalizeDate(start string) any {
	if start == "" {
		return nil
	}
	if ts, err := time.Parse(time.RFC3339, start); err == nil {
		return ts.Format(time.RFC3339)
	}
	return start
}

func optionName(s *notion.SelectValue) any {
	if s == nil {
		return nil
	}
	return s.Name
}

func statusName(s *notion.StatusValue) any {
	if s == nil {
		return nil
	}
	return s.Name
}

func timeValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

func userValue(u *notion.UserReference) any {
	if u == nil {
		return nil
	}
	return u
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
