// Package cmd wires the cobra-based CLI commands for notion-tool.
//
// Board-facing commands print a JSON envelope with success, data, and error
// keys so scripts can parse every outcome. The install and uninstall commands
// manage the tool's own environment and print human-readable status lines
// instead.
package cmd
