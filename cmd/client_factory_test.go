package cmd

import (
	"strings"
	"testing"

	"github.com/yourorg/notion-tool/internal/config"
)

func TestResolveDatabasePrefersFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	got, err := resolveDatabase(&globalOptions{profile: "default"}, "flag-db")
	if err != nil {
		t.Fatalf("resolveDatabase returned error: %v", err)
	}
	if got != "flag-db" {
		t.Fatalf("expected flag value to win, got %q", got)
	}
}

func TestResolveDatabaseFallsBackToProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := config.SaveDatabase("default", "0509def271a84947b6a55ddf1caee4df"); err != nil {
		t.Fatalf("SaveDatabase returned error: %v", err)
	}

	got, err := resolveDatabase(&globalOptions{profile: "default"}, "")
	if err != nil {
		t.Fatalf("resolveDatabase returned error: %v", err)
	}
	if got != "0509def271a84947b6a55ddf1caee4df" {
		t.Fatalf("expected stored default, got %q", got)
	}
}

func TestResolveDatabaseMissingEverywhere(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := resolveDatabase(&globalOptions{profile: "default"}, "")
	if err == nil {
		t.Fatalf("expected an error when no database is configured")
	}
	if !strings.Contains(err.Error(), "--database") {
		t.Fatalf("error should point at the flag: %v", err)
	}
}
