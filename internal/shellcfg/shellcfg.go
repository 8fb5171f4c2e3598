// Package shellcfg manages the PATH export in shell startup files.
package shellcfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// Marker precedes the PATH export so users can see what wrote it.
	Marker = "# Added by notion-tool installer"

	// BinDir is the PATH entry added to the rc file. It is written
	// unexpanded so the line keeps working if the home directory moves.
	BinDir = "$HOME/.local/bin"

	// ExportLine prepends BinDir to PATH.
	ExportLine = `export PATH="` + BinDir + `:$PATH"`
)

// RCFile picks the startup file that should carry the PATH export. The shell
// may be a bare name or a full path like /bin/zsh. zsh uses .zshenv so the
// export applies to non-login shells too; bash prefers whichever of .bashrc
// and .bash_profile already exists; anything else falls back to .profile.
func RCFile(shell, home string) string {
	switch filepath.Base(shell) {
	case "zsh":
		return filepath.Join(home, ".zshenv")
	case "bash":
		for _, name := range []string{".bashrc", ".bash_profile"} {
			rc := filepath.Join(home, name)
			if _, err := os.Stat(rc); err == nil {
				return rc
			}
		}
		return filepath.Join(home, ".bashrc")
	default:
		return filepath.Join(home, ".profile")
	}
}

// EnsurePathEntry appends the PATH export to rcFile unless the bin directory
// is already mentioned anywhere in the file. The file is created when absent.
// It reports whether an entry was added.
func EnsurePathEntry(rcFile string) (bool, error) {
	contents, err := os.ReadFile(rcFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("read %s: %w", rcFile, err)
	}
	if strings.Contains(string(contents), BinDir) {
		return false, nil
	}

	f, err := os.OpenFile(rcFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", rcFile, err)
	}
	if _, err := f.WriteString("\n" + Marker + "\n" + ExportLine + "\n"); err != nil {
		f.Close()
		return false, fmt.Errorf("append to %s: %w", rcFile, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close %s: %w", rcFile, err)
	}
	return true, nil
}
