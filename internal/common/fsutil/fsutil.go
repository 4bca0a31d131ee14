package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading '~' to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	// ~user forms are left alone
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

// FirstRegularFile returns the first candidate that exists and is not a
// directory, or "" when none do.
func FirstRegularFile(candidates ...string) string {
	for _, p := range candidates {
		if p == "" {
			continue
		}
		fi, err := os.Stat(p)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				// unreadable but present; let the caller surface the error
				return p
			}
			continue
		}
		if !fi.IsDir() {
			return p
		}
	}
	return ""
}
