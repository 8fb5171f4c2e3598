package cmd

import (
	"errors"
	"fmt"

	"github.com/yourorg/notion-tool/internal/config"
	"github.com/yourorg/notion-tool/internal/notion"
	"github.com/yourorg/notion-tool/internal/schema"
)

const databaseFlagHelp = "Notion database ID (defaults to the profile's configured board)"

// schemas caches database schemas for the life of the process so a command
// touching the same board twice fetches its schema once.
var schemas = schema.NewCache()

var clientFactory = defaultClientFactory

func defaultClientFactory(profile string) (*notion.Client, error) {
	token, _, err := config.ResolveToken(profile)
	if err != nil {
		return nil, err
	}
	version, err := config.LoadVersion(profile)
	if err != nil {
		return nil, fmt.Errorf("load notion version: %w", err)
	}
	return notion.NewClient(notion.ClientConfig{
		Token:         token,
		NotionVersion: version,
	}), nil
}

func buildClient(profile string) (*notion.Client, error) {
	return clientFactory(profile)
}

// resolveDatabase picks the target database: an explicit flag wins, otherwise
// the profile's stored default is used.
func resolveDatabase(globals *globalOptions, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	databaseID, err := config.LoadDatabase(globals.profile)
	if err != nil {
		return "", fmt.Errorf("load default database: %w", err)
	}
	if databaseID == "" {
		return "", errors.New(
			"no database specified; pass --database or set a default with 'notion-tool auth login --database <id>'")
	}
	return databaseID, nil
}
