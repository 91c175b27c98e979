package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Lister enumerates immediate child directories of a configured root.
type Lister struct {
	root     string
	excluded map[string]struct{}
}

// NewLister creates a lister for root. Names in excluded are never listed,
// on top of the fixed rule that dot-prefixed directories are skipped.
func NewLister(root string, excluded []string) *Lister {
	set := make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		set[name] = struct{}{}
	}
	return &Lister{root: root, excluded: set}
}

// Root returns the configured root directory.
func (l *Lister) Root() string {
	return l.root
}

// Dir returns the effective directory for a relative subpath typed by the
// user, or the root itself when subpath is empty.
func (l *Lister) Dir(subpath string) string {
	if subpath == "" {
		return l.root
	}
	return filepath.Join(l.root, filepath.FromSlash(subpath))
}

// List returns the projects directly under root/subpath, in filesystem
// enumeration order. An unreadable directory yields an empty listing rather
// than an error; entries that cannot be stat'ed are skipped.
func (l *Lister) List(subpath string) []Project {
	dir := l.Dir(subpath)

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("failed to read projects directory")
		return nil
	}

	var projects []Project
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if _, ok := l.excluded[name]; ok {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("skipping unstatable entry")
			continue
		}
		if !info.IsDir() {
			continue
		}

		projects = append(projects, Project{ID: path, Name: name, Path: path})
	}
	return projects
}
