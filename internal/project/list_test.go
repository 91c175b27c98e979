package project

import (
	"os"
	"path/filepath"
	"testing"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.MkdirAll(filepath.Join(root, name), 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
}

func names(projects []Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.Name
	}
	return out
}

func TestListDirectories(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "alpha", "beta")

	// Plain files never show up.
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("hi"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	lister := NewLister(root, []string{"node_modules"})
	got := lister.List("")

	if len(got) != 2 {
		t.Fatalf("Expected 2 projects, got %v", names(got))
	}
	for _, p := range got {
		if p.ID != p.Path {
			t.Errorf("Expected ID to equal path, got %q vs %q", p.ID, p.Path)
		}
		if p.Path != filepath.Join(root, p.Name) {
			t.Errorf("Expected absolute path under root, got %q", p.Path)
		}
	}
}

func TestListExcludesHiddenAndDenylisted(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "app", ".git", ".cache", "node_modules")

	lister := NewLister(root, []string{"node_modules"})
	got := names(lister.List(""))

	if len(got) != 1 || got[0] != "app" {
		t.Errorf("Expected only [app], got %v", got)
	}
}

func TestListMissingRoot(t *testing.T) {
	lister := NewLister(filepath.Join(t.TempDir(), "does-not-exist"), nil)

	got := lister.List("")
	if len(got) != 0 {
		t.Errorf("Expected empty listing for missing root, got %v", names(got))
	}
}

func TestListSubpath(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "mono/packages/core", "mono/packages/ui", "other")

	lister := NewLister(root, nil)
	got := names(lister.List("mono/packages"))

	if len(got) != 2 {
		t.Fatalf("Expected 2 projects in subpath, got %v", got)
	}
}

func TestListBrokenSymlinkSkipped(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "real")

	// A dangling symlink cannot be stat'ed and must not abort the listing.
	if err := os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")); err != nil {
		t.Skipf("Symlinks not supported: %v", err)
	}

	lister := NewLister(root, nil)
	got := names(lister.List(""))

	if len(got) != 1 || got[0] != "real" {
		t.Errorf("Expected only [real], got %v", got)
	}
}
