package shellcfg_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yourorg/notion-tool/internal/shellcfg"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("# existing\n"), 0o644); err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
}

func TestRCFileSelection(t *testing.T) {
	cases := []struct {
		name  string
		shell string
		setup func(t *testing.T, home string)
		want  string
	}{
		{
			name:  "zsh uses zshenv",
			shell: "zsh",
			want:  ".zshenv",
		},
		{
			name:  "zsh full path",
			shell: "/bin/zsh",
			want:  ".zshenv",
		},
		{
			name:  "bash prefers existing bashrc",
			shell: "/bin/bash",
			setup: func(t *testing.T, home string) {
				touch(t, filepath.Join(home, ".bashrc"))
				touch(t, filepath.Join(home, ".bash_profile"))
			},
			want: ".bashrc",
		},
		{
			name:  "bash falls back to bash_profile",
			shell: "bash",
			setup: func(t *testing.T, home string) {
				touch(t, filepath.Join(home, ".bash_profile"))
			},
			want: ".bash_profile",
		},
		{
			name:  "bash with neither defaults to bashrc",
			shell: "bash",
			want:  ".bashrc",
		},
		{
			name:  "unknown shell uses profile",
			shell: "/usr/bin/fish",
			want:  ".profile",
		},
		{
			name:  "empty shell uses profile",
			shell: "",
			want:  ".profile",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			home := t.TempDir()
			if tc.setup != nil {
				tc.setup(t, home)
			}

			got := shellcfg.RCFile(tc.shell, home)
			if want := filepath.Join(home, tc.want); got != want {
				t.Fatalf("RCFile(%q) = %s, want %s", tc.shell, got, want)
			}
		})
	}
}

func TestEnsurePathEntryAppendsOnce(t *testing.T) {
	home := t.TempDir()
	rc := filepath.Join(home, ".zshenv")
	touch(t, rc)

	added, err := shellcfg.EnsurePathEntry(rc)
	if err != nil {
		t.Fatalf("EnsurePathEntry returned error: %v", err)
	}
	if !added {
		t.Fatalf("expected first call to add the entry")
	}

	contents, err := os.ReadFile(rc)
	if err != nil {
		t.Fatalf("read rc file: %v", err)
	}
	wantSuffix := "\n" + shellcfg.Marker + "\n" + shellcfg.ExportLine + "\n"
	if !strings.HasSuffix(string(contents), wantSuffix) {
		t.Fatalf("rc file missing appended block:\n%s", contents)
	}
	if !strings.HasPrefix(string(contents), "# existing\n") {
		t.Fatalf("existing content clobbered:\n%s", contents)
	}

	added, err = shellcfg.EnsurePathEntry(rc)
	if err != nil {
		t.Fatalf("second EnsurePathEntry returned error: %v", err)
	}
	if added {
		t.Fatalf("expected second call to be a no-op")
	}
	if n := strings.Count(string(mustRead(t, rc)), shellcfg.ExportLine); n != 1 {
		t.Fatalf("export line appears %d times, want 1", n)
	}
}

func TestEnsurePathEntryCreatesMissingFile(t *testing.T) {
	home := t.TempDir()
	rc := filepath.Join(home, ".profile")

	added, err := shellcfg.EnsurePathEntry(rc)
	if err != nil {
		t.Fatalf("EnsurePathEntry returned error: %v", err)
	}
	if !added {
		t.Fatalf("expected entry to be added to a fresh file")
	}

	contents := mustRead(t, rc)
	if !strings.Contains(string(contents), shellcfg.Marker) {
		t.Fatalf("marker missing from fresh rc file:\n%s", contents)
	}
}

func TestEnsurePathEntryDetectsExistingMention(t *testing.T) {
	home := t.TempDir()
	rc := filepath.Join(home, ".bashrc")
	// A hand-written PATH line counts even without our marker.
	line := `PATH="$HOME/.local/bin:$PATH"; export PATH` + "\n"
	if err := os.WriteFile(rc, []byte(line), 0o644); err != nil {
		t.Fatalf("seed rc file: %v", err)
	}

	added, err := shellcfg.EnsurePathEntry(rc)
	if err != nil {
		t.Fatalf("EnsurePathEntry returned error: %v", err)
	}
	if added {
		t.Fatalf("expected existing mention to suppress the append")
	}
	if string(mustRead(t, rc)) != line {
		t.Fatalf("rc file modified despite existing entry")
	}
}

func mustRead(t *testing.T, path string) []byte {
	t.Helper()
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return contents
}
