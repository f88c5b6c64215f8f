package main

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// Filter decides which entries the discovery engine yields. It is
// built once from the command-line flags and shared by every
// discovery call. Exclude patterns accumulate; later patterns never
// replace earlier ones.
type Filter struct {
	patterns      []string
	respectIgnore bool
	hidden        bool
	logger        *zap.Logger
	badPatterns   map[string]bool
}

func newFilter(patterns []string, noIgnore, hidden bool, logger *zap.Logger) *Filter {
	return &Filter{
		patterns:      patterns,
		respectIgnore: !noIgnore,
		hidden:        hidden,
		logger:        logger,
		badPatterns:   make(map[string]bool),
	}
}

// matcherFor compiles the ignore files found directly under dir.
// Returns nil when ignore-file respect is disabled or no ignore file
// exists there.
func (f *Filter) matcherFor(dir string) *ignore.GitIgnore {
	if !f.respectIgnore {
		return nil
	}
	var lines []string
	for _, name := range []string{".gitignore", ".ignore"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		lines = append(lines, strings.Split(string(data), "\n")...)
	}
	if len(lines) == 0 {
		return nil
	}
	return ignore.CompileIgnoreLines(lines...)
}

// includeDir reports whether a directory at rel (slash-separated,
// relative to the discovery root) should be descended into.
func (f *Filter) includeDir(rel string, ign *ignore.GitIgnore) bool {
	base := path.Base(rel)
	if base == ".git" {
		return false
	}
	if !f.hidden && isHidden(base) {
		return false
	}
	if f.matchesPattern(rel, base) {
		return false
	}
	// Directory-only gitignore patterns ("build/") need the trailing
	// slash to match.
	if ign != nil && (ign.MatchesPath(rel) || ign.MatchesPath(rel+"/")) {
		return false
	}
	return true
}

// includeFile reports whether a file at rel should be yielded.
func (f *Filter) includeFile(rel string, ign *ignore.GitIgnore) bool {
	base := path.Base(rel)
	if !f.hidden && isHidden(base) {
		return false
	}
	if f.matchesPattern(rel, base) {
		return false
	}
	if ign != nil && ign.MatchesPath(rel) {
		return false
	}
	return true
}

// matchesPattern checks the exclude globs against the relative path
// and the bare name. Pattern syntax is not validated up front;
// malformed patterns warn once and stop matching.
func (f *Filter) matchesPattern(rel, base string) bool {
	for _, pat := range f.patterns {
		for _, candidate := range []string{rel, base} {
			ok, err := doublestar.Match(pat, candidate)
			if err != nil {
				if !f.badPatterns[pat] {
					f.badPatterns[pat] = true
					f.logger.Warn("invalid ignore pattern",
						zap.String("pattern", pat), zap.Error(err))
				}
				break
			}
			if ok {
				return true
			}
		}
	}
	return false
}

func isHidden(base string) bool {
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}
