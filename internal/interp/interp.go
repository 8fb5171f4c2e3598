// Package interp locates a suitable Python interpreter on PATH.
package interp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Candidates are probed in order. The first command that resolves on PATH
// and reports an acceptable version wins.
var Candidates = []string{"python3", "python"}

// MinMajor is the lowest acceptable interpreter major version.
const MinMajor = 3

// ErrNotFound reports that no candidate satisfied the version requirement.
var ErrNotFound = errors.New("no suitable interpreter found")

// Runner abstracts command lookup and execution so discovery can run against
// fakes in tests.
type Runner interface {
	LookPath(file string) (string, error)
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// Interpreter describes a discovered Python installation.
type Interpreter struct {
	Command string
	Path    string
	Version *semver.Version
}

func (i Interpreter) String() string {
	if i.Version == nil {
		return i.Path
	}
	return fmt.Sprintf("%s %s (%s)", i.Command, i.Version, i.Path)
}

// Discover probes the candidates in order and returns the first interpreter
// whose major version meets MinMajor. Candidates that are missing, fail to
// run, or report an unparseable or too-old version are skipped.
func Discover(ctx context.Context, r Runner) (Interpreter, error) {
	for _, cand := range Candidates {
		path, err := r.LookPath(cand)
		if err != nil {
			continue
		}
		// Python 2 prints its version to stderr, so Output must capture
		// both streams.
		out, err := r.Output(ctx, path, "--version")
		if err != nil {
			continue
		}
		version, err := ParseVersion(out)
		if err != nil || version.Major() < MinMajor {
			continue
		}
		return Interpreter{Command: cand, Path: path, Version: version}, nil
	}
	return Interpreter{}, ErrNotFound
}

// ParseVersion extracts the semantic version from interpreter output such as
// "Python 3.11.2". Suffixes like 3.13.0rc1 are truncated to their numeric
// prefix.
func ParseVersion(out string) (*semver.Version, error) {
	for _, field := range strings.Fields(out) {
		if field[0] < '0' || field[0] > '9' {
			continue
		}
		version, err := semver.NewVersion(numericPrefix(field))
		if err != nil {
			return nil, fmt.Errorf("parse interpreter version %q: %w", strings.TrimSpace(out), err)
		}
		return version, nil
	}
	return nil, fmt.Errorf("no version in interpreter output %q", strings.TrimSpace(out))
}

func numericPrefix(s string) string {
	for i, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return s[:i]
		}
	}
	return s
}
