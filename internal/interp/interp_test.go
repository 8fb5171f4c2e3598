package interp_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/yourorg/notion-tool/internal/interp"
)

type fakeRunner struct {
	paths    map[string]string
	versions map[string]string
}

func (f *fakeRunner) LookPath(file string) (string, error) {
	path, ok := f.paths[file]
	if !ok {
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", file)
	}
	return path, nil
}

func (f *fakeRunner) Output(_ context.Context, name string, _ ...string) (string, error) {
	out, ok := f.versions[name]
	if !ok {
		return "", errors.New("exit status 1")
	}
	return out, nil
}

func TestParseVersion(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "Python 3.11.2", want: "3.11.2"},
		{in: "Python 3.11.2\n", want: "3.11.2"},
		{in: "Python 2.7.18", want: "2.7.18"},
		{in: "Python 3.13.0rc1", want: "3.13.0"},
		{in: "Python 3.9", want: "3.9.0"},
		{in: "Python", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := interp.ParseVersion(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseVersion(%q) expected error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q) returned error: %v", tc.in, err)
			}
			if got.String() != tc.want {
				t.Fatalf("ParseVersion(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestDiscoverPrefersPython3(t *testing.T) {
	runner := &fakeRunner{
		paths: map[string]string{
			"python3": "/usr/bin/python3",
			"python":  "/usr/bin/python",
		},
		versions: map[string]string{
			"/usr/bin/python3": "Python 3.11.2",
			"/usr/bin/python":  "Python 3.8.10",
		},
	}

	got, err := interp.Discover(context.Background(), runner)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if got.Command != "python3" || got.Path != "/usr/bin/python3" {
		t.Fatalf("unexpected interpreter: %#v", got)
	}
	if got.Version.String() != "3.11.2" {
		t.Fatalf("version = %s, want 3.11.2", got.Version)
	}
}

func TestDiscoverFallsBackToPython(t *testing.T) {
	runner := &fakeRunner{
		paths:    map[string]string{"python": "/usr/local/bin/python"},
		versions: map[string]string{"/usr/local/bin/python": "Python 3.10.6"},
	}

	got, err := interp.Discover(context.Background(), runner)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if got.Command != "python" {
		t.Fatalf("expected python fallback, got %#v", got)
	}
}

func TestDiscoverSkipsTooOldInterpreter(t *testing.T) {
	runner := &fakeRunner{
		paths: map[string]string{
			"python3": "/usr/bin/python3",
			"python":  "/usr/bin/python",
		},
		versions: map[string]string{
			"/usr/bin/python3": "Python 2.7.18",
			"/usr/bin/python":  "Python 3.9.1",
		},
	}

	got, err := interp.Discover(context.Background(), runner)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if got.Command != "python" {
		t.Fatalf("expected python to win over a Python 2 python3, got %#v", got)
	}
}

func TestDiscoverNothingSuitable(t *testing.T) {
	cases := []struct {
		name   string
		runner *fakeRunner
	}{
		{
			name:   "nothing on PATH",
			runner: &fakeRunner{},
		},
		{
			name: "only python2",
			runner: &fakeRunner{
				paths:    map[string]string{"python": "/usr/bin/python"},
				versions: map[string]string{"/usr/bin/python": "Python 2.7.18"},
			},
		},
		{
			name: "binary fails to run",
			runner: &fakeRunner{
				paths: map[string]string{"python3": "/usr/bin/python3"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := interp.Discover(context.Background(), tc.runner)
			if !errors.Is(err, interp.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}
