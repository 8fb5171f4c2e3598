package setup

import (
	"errors"
	"os"

	"github.com/yourorg/notion-tool/internal/render"
)

// RemovalState describes the uninstall outcome for one artifact.
type RemovalState int

const (
	// StateNotFound means there was nothing to delete.
	StateNotFound RemovalState = iota
	// StateRemoved means the artifact existed and was deleted.
	StateRemoved
	// StateKept means the artifact exists but was deliberately left alone.
	StateKept
)

// UninstallResult reports per-artifact outcomes.
type UninstallResult struct {
	Link    RemovalState
	Venv    RemovalState
	EnvRoot RemovalState
}

// Uninstall removes the launcher symlink and the virtualenv, then prunes the
// environment root when nothing else lives in it. Missing artifacts are
// reported and skipped rather than treated as failures. The shell rc file
// and NOTION_API_KEY are deliberately left untouched: a reinstall picks the
// existing configuration straight back up.
func Uninstall(cfg Config) (UninstallResult, error) {
	out := cfg.out()
	res := UninstallResult{Link: StateNotFound, Venv: StateNotFound, EnvRoot: StateNotFound}

	link := cfg.Paths.Link()
	fi, err := os.Lstat(link)
	switch {
	case err == nil && fi.Mode()&os.ModeSymlink == 0:
		res.Link = StateKept
		render.Warnf(out, "%s is not a symlink; leaving it in place", link)
	case err == nil:
		if err := os.Remove(link); err != nil {
			return res, fail(out, "remove symlink", err)
		}
		res.Link = StateRemoved
		render.Successf(out, "Removed symlink %s", link)
	case errors.Is(err, os.ErrNotExist):
		render.Warnf(out, "Symlink %s not found", link)
	default:
		return res, fail(out, "remove symlink", err)
	}

	venv := cfg.Paths.Venv()
	if _, err := os.Stat(venv); err == nil {
		if err := os.RemoveAll(venv); err != nil {
			return res, fail(out, "remove environment", err)
		}
		res.Venv = StateRemoved
		render.Successf(out, "Removed environment %s", venv)
	} else if errors.Is(err, os.ErrNotExist) {
		render.Warnf(out, "Environment %s not found", venv)
	} else {
		return res, fail(out, "remove environment", err)
	}

	root := cfg.Paths.EnvRoot()
	entries, err := os.ReadDir(root)
	switch {
	case errors.Is(err, os.ErrNotExist):
		render.Warnf(out, "Directory %s not found", root)
	case err != nil:
		return res, fail(out, "prune directory", err)
	case len(entries) == 0:
		if err := os.Remove(root); err != nil {
			return res, fail(out, "prune directory", err)
		}
		res.EnvRoot = StateRemoved
		render.Successf(out, "Removed empty directory %s", root)
	default:
		res.EnvRoot = StateKept
		render.Warnf(out, "Directory %s not empty; leaving it in place", root)
	}

	return res, nil
}
