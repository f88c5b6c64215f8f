package main

import (
	"os"
	"path/filepath"
)

// resolveRoot returns the top-level directory of the enclosing git
// repository, or the working directory when there is none. The root is
// only used to compute display paths; it never changes how targets are
// located.
func resolveRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	dir := cwd
	for {
		// .git may be a directory or, in worktrees, a file.
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd
		}
		dir = parent
	}
}

// displayPath renders path relative to root with forward slashes.
// Paths outside the root keep their ".." prefix.
func displayPath(root, path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}
