package main

import (
	"io/fs"
	"path/filepath"
)

type entryKind int

const (
	entryFiles entryKind = iota
	entryDirs
)

// listEntries walks dir and returns the slash-separated relative paths
// of entries of the requested kind that pass the filter. WalkDir
// visits entries in lexical order, so the listing is deterministic.
// Unreadable entries are skipped rather than failing the walk.
func listEntries(dir string, f *Filter, kind entryKind) ([]string, error) {
	ign := f.matcherFor(dir)
	var out []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if p == dir {
			return nil
		}
		rel, relErr := filepath.Rel(dir, p)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if !f.includeDir(rel, ign) {
				return filepath.SkipDir
			}
			if kind == entryDirs {
				out = append(out, rel)
			}
			return nil
		}
		if kind == entryFiles && f.includeFile(rel, ign) {
			out = append(out, rel)
		}
		return nil
	})
	if err != nil {
		return out, err
	}
	return out, nil
}
