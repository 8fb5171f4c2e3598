package transform_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/yourorg/notion-tool/internal/notion"
	"github.com/yourorg/notion-tool/internal/transform"
)

func strPtr(s string) *string        { return &s }
func numPtr(f float64) *float64      { return &f }
func boolPtr(b bool) *bool           { return &b }
func timePtr(t time.Time) *time.Time { return &t }

func TestValueFlattensCommonTypes(t *testing.T) {
	cases := []struct {
		name string
		prop notion.PropertyValue
		want any
	}{
		{
			name: "title",
			prop: notion.PropertyValue{
				Type:  "title",
				Title: []notion.RichText{{PlainText: "Fix "}, {PlainText: "login"}},
			},
			want: "Fix login",
		},
		{
			name: "rich text",
			prop: notion.PropertyValue{
				Type:     "rich_text",
				RichText: []notion.RichText{{PlainText: "details"}},
			},
			want: "details",
		},
		{
			name: "number",
			prop: notion.PropertyValue{Type: "number", Number: numPtr(4)},
			want: float64(4),
		},
		{
			name: "empty number",
			prop: notion.PropertyValue{Type: "number"},
			want: nil,
		},
		{
			name: "select",
			prop: notion.PropertyValue{Type: "select", Select: &notion.SelectValue{Name: "High"}},
			want: "High",
		},
		{
			name: "empty select",
			prop: notion.PropertyValue{Type: "select"},
			want: nil,
		},
		{
			name: "status",
			prop: notion.PropertyValue{Type: "status", Status: &notion.StatusValue{Name: "Done"}},
			want: "Done",
		},
		{
			name: "checkbox",
			prop: notion.PropertyValue{Type: "checkbox", Checkbox: boolPtr(true)},
			want: true,
		},
		{
			name: "url",
			prop: notion.PropertyValue{Type: "url", URL: strPtr("https://example.com")},
			want: "https://example.com",
		},
		{
			name: "phone",
			prop: notion.PropertyValue{Type: "phone_number", Phone: strPtr("+1-555-0100")},
			want: "+1-555-0100",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := transform.Value(tc.prop)
			if got != tc.want {
				t.Fatalf("Value() = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestValueFlattensListTypes(t *testing.T) {
	multi := notion.PropertyValue{
		Type: "multi_select",
		MultiSelect: []notion.SelectValue{
			{Name: "urgent"},
			{Name: "backend"},
		},
	}
	got, ok := transform.Value(multi).([]string)
	if !ok || len(got) != 2 || got[0] != "urgent" || got[1] != "backend" {
		t.Fatalf("multi_select flattened to %#v", transform.Value(multi))
	}

	relation := notion.PropertyValue{
		Type:     "relation",
		Relation: []notion.RelationReference{{ID: "r1"}, {ID: "r2"}},
	}
	ids, ok := transform.Value(relation).([]string)
	if !ok || len(ids) != 2 || ids[0] != "r1" {
		t.Fatalf("relation flattened to %#v", transform.Value(relation))
	}

	empty := notion.PropertyValue{Type: "multi_select"}
	if names, ok := transform.Value(empty).([]string); !ok || len(names) != 0 {
		t.Fatalf("empty multi_select should flatten to empty list, got %#v", transform.Value(empty))
	}
}

func TestValueFlattensDates(t *testing.T) {
	full := notion.PropertyValue{
		Type: "date",
		Date: &notion.DateValue{Start: "2023-01-15T10:00:00+00:00"},
	}
	if got := transform.Value(full); got != "2023-01-15T10:00:00Z" {
		t.Fatalf("timestamp normalized to %#v", got)
	}

	dateOnly := notion.PropertyValue{
		Type: "date",
		Date: &notion.DateValue{Start: "2023-01-15"},
	}
	if got := transform.Value(dateOnly); got != "2023-01-15" {
		t.Fatalf("date-only value changed to %#v", got)
	}

	missing := notion.PropertyValue{Type: "date"}
	if got := transform.Value(missing); got != nil {
		t.Fatalf("empty date flattened to %#v", got)
	}
}

func TestValueFlattensFormulas(t *testing.T) {
	str := notion.PropertyValue{
		Type:    "formula",
		Formula: &notion.FormulaValue{Type: "string", String: strPtr("computed")},
	}
	if got := transform.Value(str); got != "computed" {
		t.Fatalf("string formula flattened to %#v", got)
	}

	num := notion.PropertyValue{
		Type:    "formula",
		Formula: &notion.FormulaValue{Type: "number", Number: numPtr(7)},
	}
	if got := transform.Value(num); got != float64(7) {
		t.Fatalf("number formula flattened to %#v", got)
	}
}

func TestValueUnknownTypeKeepsRaw(t *testing.T) {
	raw := []byte(`{"type":"rollup","rollup":{"number":3}}`)
	var prop notion.PropertyValue
	if err := json.Unmarshal(raw, &prop); err != nil {
		t.Fatalf("unmarshal test property: %v", err)
	}

	got, ok := transform.Value(prop).(json.RawMessage)
	if !ok {
		t.Fatalf("unknown type should pass through raw JSON, got %#v", transform.Value(prop))
	}
	if string(got) != string(raw) {
		t.Fatalf("raw payload = %s, want %s", got, raw)
	}
}

func TestItemShape(t *testing.T) {
	created := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	page := notion.Page{
		ID:          "page1",
		URL:         "https://notion.so/page1",
		CreatedTime: created,
		Archived:    false,
		Properties: map[string]notion.PropertyValue{
			"Name":   {Type: "title", Title: []notion.RichText{{PlainText: "Ship it"}}},
			"Status": {Type: "status", Status: &notion.StatusValue{Name: "Done"}},
		},
	}

	item := transform.Item(page)
	if item["id"] != "page1" || item["url"] != "https://notion.so/page1" {
		t.Fatalf("unexpected item identity: %#v", item)
	}

	props, ok := item["properties"].(map[string]any)
	if !ok || props["Name"] != "Ship it" || props["Status"] != "Done" {
		t.Fatalf("unexpected item properties: %#v", item["properties"])
	}
}

func TestTitleFindsTitleProperty(t *testing.T) {
	page := notion.Page{
		Properties: map[string]notion.PropertyValue{
			"Status": {Type: "status", Status: &notion.StatusValue{Name: "Done"}},
			"Task":   {Type: "title", Title: []notion.RichText{{PlainText: "Write docs"}}},
		},
	}
	if got := transform.Title(page); got != "Write docs" {
		t.Fatalf("Title() = %q", got)
	}

	if got := transform.Title(notion.Page{}); got != "" {
		t.Fatalf("Title() on empty page = %q", got)
	}
}

func TestValueIgnoresCreatedByWhenAbsent(t *testing.T) {
	prop := notion.PropertyValue{Type: "created_by"}
	if got := transform.Value(prop); got != nil {
		t.Fatalf("absent created_by flattened to %#v", got)
	}

	user := notion.PropertyValue{
		Type:      "created_by",
		CreatedBy: &notion.UserReference{ID: "u1", Object: "user"},
	}
	ref, ok := transform.Value(user).(*notion.UserReference)
	if !ok || ref.ID != "u1" {
		t.Fatalf("created_by flattened to %#v", transform.Value(user))
	}

	ts := notion.PropertyValue{
		Type:        "created_time",
		CreatedTime: timePtr(time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)),
	}
	if got := transform.Value(ts); got != "2023-06-01T12:00:00Z" {
		t.Fatalf("created_time flattened to %#v", got)
	}
}
