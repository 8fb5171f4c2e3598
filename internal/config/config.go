// Package config manages credentials and profile settings for notion-tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

const (
	serviceName          = "notion-tool"
	defaultNotionVersion = "2022-06-28"

	// EnvAPIKey is the environment variable consulted before the keyring.
	EnvAPIKey = "NOTION_API_KEY"

	dirPermissions  = 0o700
	filePermissions = 0o600
)

// TokenSource reports where a credential was found.
type TokenSource string

// Token sources, in resolution order.
const (
	TokenFromEnv     TokenSource = "environment"
	TokenFromKeyring TokenSource = "keyring"
)

// DefaultNotionVersion exposes the API version we pin to unless the user overrides it.
func DefaultNotionVersion() string {
	return defaultNotionVersion
}

// ResolveToken finds the Notion integration token for a profile. The
// NOTION_API_KEY environment variable wins over the OS keyring so scripts and
// CI can inject credentials without touching local state.
func ResolveToken(profile string) (string, TokenSource, error) {
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key, TokenFromEnv, nil
	}

	if profile == "" {
		return "", "", errors.New("profile name cannot be empty")
	}
	tok, err := keyring.Get(serviceName, profile)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", "", fmt.Errorf(
				"%s environment variable not set and no stored credentials for profile %q; "+
					"set it in your shell configuration or run 'notion-tool auth login'",
				EnvAPIKey, profile)
		}
		return "", "", fmt.Errorf("load token: %w", err)
	}
	return tok, TokenFromKeyring, nil
}

// SaveToken stores the integration token for the provided profile in the OS
// keyring and records the Notion API version alongside it.
func SaveToken(profile, token, version string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if profile == "" {
		return errors.New("profile name cannot be empty")
	}
	if version == "" {
		version = defaultNotionVersion
	}

	if err := keyring.Set(serviceName, profile, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return SaveVersion(profile, version)
}

// SaveVersion persists the target Notion API version for a profile.
func SaveVersion(profile, version string) error {
	if version == "" {
		version = defaultNotionVersion
	}
	return setProfileValue(profile, "notion_version", version)
}

// LoadVersion fetches the configured Notion API version for a profile,
// falling back to the default.
func LoadVersion(profile string) (string, error) {
	ver, err := profileValue(profile, "notion_version")
	if err != nil {
		return "", err
	}
	if ver == "" {
		return defaultNotionVersion, nil
	}
	return ver, nil
}

// SaveDatabase records the default board database for a profile.
func SaveDatabase(profile, databaseID string) error {
	if strings.TrimSpace(databaseID) == "" {
		return errors.New("database ID cannot be empty")
	}
	return setProfileValue(profile, "database", databaseID)
}

// LoadDatabase returns the profile's default board database, empty when unset.
func LoadDatabase(profile string) (string, error) {
	return profileValue(profile, "database")
}

// configDir returns the directory where we persist structured configuration.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "notion-tool"), nil
}

// ensureConfigDir ensures the configuration directory exists with restricted permissions.
func ensureConfigDir() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	return dir, nil
}

func setProfileValue(profile, key, value string) error {
	if profile == "" {
		return errors.New("profile name cannot be empty")
	}

	dir, err := ensureConfigDir()
	if err != nil {
		return err
	}

	cfg := viper.New()
	configPath := filepath.Join(dir, "config.yaml")
	cfg.SetConfigFile(configPath)
	if readErr := cfg.ReadInConfig(); readErr != nil && !isConfigNotFound(readErr) {
		return fmt.Errorf("read config: %w", readErr)
	}

	cfg.Set(fmt.Sprintf("profiles.%s.%s", profile, key), value)

	if err := cfg.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Chmod(configPath, filePermissions); err != nil {
		return fmt.Errorf("restrict config permissions: %w", err)
	}
	return nil
}

func profileValue(profile, key string) (string, error) {
	if profile == "" {
		return "", errors.New("profile name cannot be empty")
	}

	dir, err := ensureConfigDir()
	if err != nil {
		return "", err
	}

	cfg := viper.New()
	cfg.SetConfigFile(filepath.Join(dir, "config.yaml"))
	if readErr := cfg.ReadInConfig(); readErr != nil {
		if isConfigNotFound(readErr) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", readErr)
	}

	return cfg.GetString(fmt.Sprintf("profiles.%s.%s", profile, key)), nil
}

func isConfigNotFound(err error) bool {
	if err == nil {
		return false
	}
	var nf viper.ConfigFileNotFoundError
	if errors.As(err, &nf) {
		return true
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) && errors.Is(pathErr.Err, os.ErrNotExist) {
		return true
	}
	return errors.Is(err, os.ErrNotExist)
}
