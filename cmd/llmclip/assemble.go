package main

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// assemble renders one content block per target, in target order, and
// returns the concatenated payload plus the number of file contents it
// contains. Missing targets warn and are skipped; the rest of the run
// continues. Content is passed through byte-for-byte, so binary files
// may render garbled; that is accepted rather than treated as an
// error.
func assemble(targets []string, root string, f *Filter, treeOnly bool, logger *zap.Logger) (string, int) {
	var payload strings.Builder
	fileCount := 0
	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			logger.Warn("target does not exist, skipping", zap.String("target", target))
			continue
		}
		if info.IsDir() {
			writeDirBlock(&payload, target, root, f, treeOnly, &fileCount, logger)
		} else {
			data, err := os.ReadFile(target)
			if err != nil {
				logger.Warn("cannot read target, skipping",
					zap.String("target", target), zap.Error(err))
				continue
			}
			fileCount++
			writeFileBlock(&payload, displayPath(root, target), data)
		}
		payload.WriteString("\n\n")
	}
	return payload.String(), fileCount
}

// writeFileBlock emits a header line, a separator, the literal file
// content, and a terminating newline.
func writeFileBlock(b *strings.Builder, rel string, content []byte) {
	b.WriteString("## File: " + rel + "\n---\n")
	b.Write(content)
	b.WriteString("\n")
}

// writeDirBlock emits a directory header, the synthesized tree and,
// unless treeOnly is set, one file block per discovered file under the
// directory. The tree and the file listing run over the same filter
// and the same engine, so the count and the tree cannot drift apart.
func writeDirBlock(b *strings.Builder, dir, root string, f *Filter, treeOnly bool, fileCount *int, logger *zap.Logger) {
	rel := displayPath(root, dir)
	b.WriteString("# Directory: " + rel + "\n---\n\n")

	dirs, err := listEntries(dir, f, entryDirs)
	if err != nil {
		logger.Warn("directory listing incomplete", zap.String("dir", dir), zap.Error(err))
	}
	files, err := listEntries(dir, f, entryFiles)
	if err != nil {
		logger.Warn("file listing incomplete", zap.String("dir", dir), zap.Error(err))
	}
	b.WriteString(renderTree(rel, dirs, files))

	if treeOnly {
		return
	}
	for _, frel := range files {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(frel)))
		if err != nil {
			logger.Warn("cannot read file, skipping",
				zap.String("file", frel), zap.Error(err))
			continue
		}
		*fileCount++
		b.WriteString("\n")
		writeFileBlock(b, path.Join(rel, frel), data)
	}
}
