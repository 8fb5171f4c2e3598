package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yourorg/notion-tool/internal/render"
)

// failDetail prints a failure envelope with structured details and returns an
// error carrying the message, so stdout stays parseable while the process
// still exits non-zero.
func failDetail(cmd *cobra.Command, detail map[string]any) error {
	if err := render.Fail(cmd.OutOrStdout(), detail); err != nil {
		return err
	}
	msg, _ := detail["message"].(string)
	if msg == "" {
		msg = "command failed"
	}
	return errors.New(msg)
}

// failWith prints a failure envelope for err and propagates it.
func failWith(cmd *cobra.Command, err error) error {
	if werr := render.FailError(cmd.OutOrStdout(), err); werr != nil {
		return werr
	}
	return err
}
