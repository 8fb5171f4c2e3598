// Package setup provisions and removes the managed notion-tool environment:
// a Python virtualenv under the user's home, a launcher symlink on PATH, and
// the shell configuration that exposes it.
package setup

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
)

const executableName = "notion-tool"

// ErrMissingDependency marks failures caused by absent system prerequisites,
// as opposed to steps that started and then failed.
var ErrMissingDependency = errors.New("missing dependency")

// StepError wraps a pipeline step failure with the step that caused it.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Paths fixes the filesystem layout the lifecycle manages. Everything hangs
// off a single home directory so tests can point it anywhere.
type Paths struct {
	home string
}

// NewPaths derives the managed layout from a home directory.
func NewPaths(home string) Paths {
	return Paths{home: home}
}

// Home returns the home directory the layout is rooted at.
func (p Paths) Home() string { return p.home }

// EnvRoot is the directory holding the managed environment.
func (p Paths) EnvRoot() string { return filepath.Join(p.home, ".notion-tool") }

// Venv is the virtualenv directory.
func (p Paths) Venv() string { return filepath.Join(p.EnvRoot(), "venv") }

// VenvBin is the virtualenv's executable directory.
func (p Paths) VenvBin() string { return filepath.Join(p.Venv(), "bin") }

// VenvPython is the interpreter inside the virtualenv.
func (p Paths) VenvPython() string { return filepath.Join(p.VenvBin(), "python") }

// Target is the entry point script pip places inside the virtualenv.
func (p Paths) Target() string { return filepath.Join(p.VenvBin(), executableName) }

// BinDir is the user-level bin directory the launcher is published to.
func (p Paths) BinDir() string { return filepath.Join(p.home, ".local", "bin") }

// Link is the launcher symlink on the user's PATH.
func (p Paths) Link() string { return filepath.Join(p.BinDir(), executableName) }

// Config carries the dependencies of the lifecycle pipelines. Runner and Out
// default to the real executor and a discarded stream; Uninstall needs only
// Paths and Out.
type Config struct {
	Paths  Paths
	Shell  string
	Source string
	Runner Runner
	Out    io.Writer
}

func (c Config) out() io.Writer {
	if c.Out == nil {
		return io.Discard
	}
	return c.Out
}

func (c Config) runner() Runner {
	if c.Runner == nil {
		return ExecRunner{}
	}
	return c.Runner
}
