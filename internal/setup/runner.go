package setup

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runner abstracts subprocess execution so the lifecycle pipelines can run
// against fakes in tests. It satisfies interp.Runner.
type Runner interface {
	LookPath(file string) (string, error)
	Output(ctx context.Context, name string, args ...string) (string, error)
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner is the production Runner backed by os/exec. Run streams the
// child's output to the attached writers so pip progress stays visible.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// LookPath resolves a command on PATH.
func (r ExecRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Output runs a command and returns its combined stdout and stderr.
func (r ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s: %w", commandLine(name, args), err)
	}
	return string(out), nil
}

// Run executes a command, streaming its output.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", commandLine(name, args), err)
	}
	return nil
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
