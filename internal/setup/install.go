package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yourorg/notion-tool/internal/interp"
	"github.com/yourorg/notion-tool/internal/render"
	"github.com/yourorg/notion-tool/internal/shellcfg"
)

// Result reports what Install did.
type Result struct {
	Interpreter  interp.Interpreter
	RCFile       string
	PathAdded    bool
	LinkReplaced bool
}

// Install provisions the managed environment end to end: discover a Python
// interpreter, create the virtualenv, install the package into it, publish
// the launcher symlink, and configure PATH. Steps run in order and the first
// failure aborts the rest; whatever earlier steps produced is left in place.
func Install(ctx context.Context, cfg Config) (Result, error) {
	out := cfg.out()
	runner := cfg.runner()
	var res Result

	py, err := interp.Discover(ctx, runner)
	if err != nil {
		if errors.Is(err, interp.ErrNotFound) {
			err = fmt.Errorf("%w: Python %d+ is required (tried %s)",
				ErrMissingDependency, interp.MinMajor, strings.Join(interp.Candidates, ", "))
		}
		render.Errorf(out, "%v", err)
		return res, err
	}
	res.Interpreter = py
	render.Successf(out, "Found %s", py)

	venv := cfg.Paths.Venv()
	fresh := true
	if _, err := os.Stat(venv); err == nil {
		fresh = false
	}
	if err := runner.Run(ctx, py.Path, "-m", "venv", venv); err != nil {
		return res, fail(out, "create virtual environment", err)
	}
	if fresh {
		render.Successf(out, "Created virtual environment at %s", venv)
	} else {
		render.Warnf(out, "Reusing virtual environment at %s", venv)
	}

	python := cfg.Paths.VenvPython()
	if err := runner.Run(ctx, python, "-m", "pip", "install", "--upgrade", "pip"); err != nil {
		return res, fail(out, "upgrade pip", err)
	}
	if err := runner.Run(ctx, python, "-m", "pip", "install", "-e", cfg.Source); err != nil {
		return res, fail(out, "install package", err)
	}
	render.Successf(out, "Installed %s into the environment", cfg.Source)

	replaced, err := publishLink(cfg.Paths)
	if err != nil {
		return res, fail(out, "create launcher symlink", err)
	}
	res.LinkReplaced = replaced
	render.Successf(out, "Linked %s -> %s", cfg.Paths.Link(), cfg.Paths.Target())

	rc := shellcfg.RCFile(cfg.Shell, cfg.Paths.Home())
	added, err := shellcfg.EnsurePathEntry(rc)
	if err != nil {
		return res, fail(out, "configure PATH", err)
	}
	res.RCFile = rc
	res.PathAdded = added
	if added {
		render.Successf(out, "Added %s to PATH in %s", shellcfg.BinDir, rc)
	} else {
		render.Warnf(out, "PATH already configured in %s", rc)
	}

	return res, nil
}

func fail(out io.Writer, step string, err error) error {
	stepErr := &StepError{Step: step, Err: err}
	render.Errorf(out, "%v", stepErr)
	return stepErr
}

// publishLink points the launcher symlink at the virtualenv executable,
// replacing a previous link even when it dangles. Anything at the link path
// that is not a symlink is never removed.
func publishLink(p Paths) (bool, error) {
	if err := os.MkdirAll(p.BinDir(), 0o755); err != nil {
		return false, fmt.Errorf("create %s: %w", p.BinDir(), err)
	}

	link := p.Link()
	replaced := false
	if fi, err := os.Lstat(link); err == nil {
		if fi.Mode()&os.ModeSymlink == 0 {
			return false, fmt.Errorf("%s exists and is not a symlink; refusing to replace it", link)
		}
		if err := os.Remove(link); err != nil {
			return false, fmt.Errorf("remove old symlink: %w", err)
		}
		replaced = true
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("inspect %s: %w", link, err)
	}

	if err := os.Symlink(p.Target(), link); err != nil {
		return false, fmt.Errorf("link %s: %w", link, err)
	}
	return replaced, nil
}
