// Package project owns the managed-project directory layout: one directory
// per project name under a configurable root, holding the story config and
// one artifact file per pipeline stage.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"inkwell/internal/stage"
)

var (
	// ErrAlreadyExists is returned when creating a project whose name is taken.
	ErrAlreadyExists = errors.New("project already exists")
	// ErrNotFound is returned for operations against an unknown project name.
	ErrNotFound = errors.New("project not found")
	// ErrInvalidName is returned for names that cannot map to a single
	// directory entry under the root.
	ErrInvalidName = errors.New("invalid project name")
)

// StoryConfigFile is the per-project configuration file name.
const StoryConfigFile = "story_config.json"

// Store is the sole authority for the managed-project layout under a root
// directory. Path mapping is a pure function of (root, name, stage kind);
// only Exists, Create, Get and List touch the filesystem.
type Store struct {
	root string
}

// NewStore returns a Store rooted at the given projects directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the projects root directory.
func (s *Store) Root() string {
	return s.root
}

// Exists reports whether a directory for name is present under the root.
// An empty directory still counts.
func (s *Store) Exists(name string) bool {
	if !validName(name) {
		return false
	}
	info, err := os.Stat(filepath.Join(s.root, name))
	return err == nil && info.IsDir()
}

// Create makes the project directory and returns its path mapping. It fails
// with ErrAlreadyExists when the name is taken. Writing the story config is
// the caller's responsibility.
func (s *Store) Create(name string) (*Paths, error) {
	if !validName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if s.Exists(name) {
		return nil, fmt.Errorf("%w: %q", ErrAlreadyExists, name)
	}
	dir := filepath.Join(s.root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create project directory: %w", err)
	}
	return s.paths(name), nil
}

// Get returns the path mapping for an existing project. Paths are computed
// from the name alone; no disk read happens beyond the existence check.
func (s *Store) Get(name string) (*Paths, error) {
	if !s.Exists(name) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s.paths(name), nil
}

// List returns the names of all managed projects, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read projects root: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) paths(name string) *Paths {
	return &Paths{Name: name, Dir: filepath.Join(s.root, name)}
}

// validName rejects names that would escape the root or collide with path
// syntax. Anything containing a separator is treated as a raw path by the
// resolver instead.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return true
}

// Paths maps every stage kind of one project to its artifact location.
type Paths struct {
	Name string
	Dir  string
}

// ArtifactPath returns the full path of the stage's artifact file.
func (p *Paths) ArtifactPath(k stage.Kind) string {
	return filepath.Join(p.Dir, k.Filename())
}

// StoryConfigPath returns the full path of the project's story config.
func (p *Paths) StoryConfigPath() string {
	return filepath.Join(p.Dir, StoryConfigFile)
}
