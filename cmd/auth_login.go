package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yourorg/notion-tool/internal/config"
)

type loginOptions struct {
	notionVersion string
	token         string
	databaseID    string
}

func newAuthLoginCmd(globals *globalOptions) *cobra.Command {
	opts := &loginOptions{
		notionVersion: config.DefaultNotionVersion(),
	}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a Notion integration token securely",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAuthLogin(cmd, globals, opts)
		},
	}

	cmd.Flags().StringVar(&opts.token, "token", "", "Notion integration token to store (prompted if omitted)")
	cmd.Flags().StringVarP(&opts.databaseID, "database", "d", "", "Default board database for the profile")
	cmd.Flags().StringVar(
		&opts.notionVersion,
		"notion-version",
		opts.notionVersion,
		"Override the Notion API version for the profile",
	)

	return cmd
}

func runAuthLogin(cmd *cobra.Command, globals *globalOptions, opts *loginOptions) error {
	token := strings.TrimSpace(opts.token)
	if token == "" {
		read, err := promptForToken(cmd)
		if err != nil {
			return err
		}
		token = read
	}
	if token == "" {
		return errors.New("token cannot be empty")
	}

	version := strings.TrimSpace(opts.notionVersion)
	if version == "" {
		version = config.DefaultNotionVersion()
	}

	if err := config.SaveToken(globals.profile, token, version); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(
		out,
		"Saved credentials for profile %q (Notion-Version %s)\n",
		globals.profile,
		version,
	); err != nil {
		return fmt.Errorf("write confirmation: %w", err)
	}

	if opts.databaseID != "" {
		if err := config.SaveDatabase(globals.profile, opts.databaseID); err != nil {
			return fmt.Errorf("save default database: %w", err)
		}
		if _, err := fmt.Fprintf(out, "Default database set to %s\n", opts.databaseID); err != nil {
			return fmt.Errorf("write confirmation: %w", err)
		}
	}
	return nil
}

func promptForToken(cmd *cobra.Command) (string, error) {
	reader := cmd.InOrStdin()

	if f, ok := reader.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if _, err := fmt.Fprint(cmd.OutOrStdout(), "Notion token: "); err != nil {
			return "", fmt.Errorf("prompt token: %w", err)
		}
		data, err := term.ReadPassword(int(f.Fd()))
		if _, ferr := fmt.Fprintln(cmd.OutOrStdout()); ferr != nil {
			return "", fmt.Errorf("prompt token: %w", ferr)
		}
		if err != nil {
			return "", fmt.Errorf("read token: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
