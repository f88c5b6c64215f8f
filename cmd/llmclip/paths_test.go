package main

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("chdir back failed: %v", err)
		}
	})
}

func mustEval(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("eval symlinks failed for %q: %v", path, err)
	}
	return resolved
}

func TestResolveRootFindsGitDir(t *testing.T) {
	tmp := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmp, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git failed: %v", err)
	}
	nested := filepath.Join(tmp, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested failed: %v", err)
	}

	chdir(t, nested)
	got := resolveRoot()
	if mustEval(t, got) != mustEval(t, tmp) {
		t.Fatalf("resolveRoot() = %q, want %q", got, tmp)
	}
}

func TestResolveRootFallsBackToCwd(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)
	got := resolveRoot()
	if mustEval(t, got) != mustEval(t, tmp) {
		t.Fatalf("resolveRoot() = %q, want cwd %q", got, tmp)
	}
}

func TestDisplayPath(t *testing.T) {
	root := t.TempDir()
	inside := filepath.Join(root, "sub", "file.txt")
	if got := displayPath(root, inside); got != "sub/file.txt" {
		t.Fatalf("displayPath inside root = %q, want %q", got, "sub/file.txt")
	}
	if got := displayPath(root, root); got != "." {
		t.Fatalf("displayPath of root = %q, want %q", got, ".")
	}
	outside := filepath.Join(filepath.Dir(root), "elsewhere.txt")
	got := displayPath(root, outside)
	if got != "../elsewhere.txt" {
		t.Fatalf("displayPath outside root = %q, want %q", got, "../elsewhere.txt")
	}
}
