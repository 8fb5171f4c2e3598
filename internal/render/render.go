// Package render provides helpers for formatting CLI output.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourorg/notion-tool/internal/notion"
)

// Envelope is the JSON contract every data command prints: a success flag,
// the payload, and error details when the operation failed. The data and
// error keys are always present so scripts can parse output unconditionally.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Error   any  `json:"error"`
}

// JSON writes the supplied value as indented JSON.
func JSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// OK prints a success envelope around data.
func OK(w io.Writer, data any) error {
	return JSON(w, Envelope{Success: true, Data: data})
}

// Fail prints a failure envelope with structured error details.
func Fail(w io.Writer, detail map[string]any) error {
	return JSON(w, Envelope{Success: false, Error: detail})
}

// FailError prints a failure envelope for err, attaching the HTTP status
// when the error came from the Notion API.
func FailError(w io.Writer, err error) error {
	detail := map[string]any{"message": err.Error()}
	var apiErr *notion.Error
	if errors.As(err, &apiErr) {
		detail["message"] = apiErr.Message
		detail["status_code"] = apiErr.Status
	}
	return Fail(w, detail)
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// Successf prints a green progress line.
func Successf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Warnf prints a yellow line for skipped or missing work.
func Warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warnStyle.Render("! "+fmt.Sprintf(format, args...)))
}

// Errorf prints a red failure line.
func Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, errorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Headerf prints a bold section heading.
func Headerf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf(format, args...)))
}
