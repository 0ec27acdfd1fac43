package project_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"inkwell/internal/project"
	"inkwell/internal/stage"
)

func TestCreateThenExists(t *testing.T) {
	store := project.NewStore(t.TempDir())

	if store.Exists("alpha") {
		t.Fatal("project should not exist yet")
	}
	paths, err := store.Create("alpha")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !store.Exists("alpha") {
		t.Fatal("project should exist after Create")
	}
	if paths.Name != "alpha" {
		t.Fatalf("unexpected name: %q", paths.Name)
	}
	info, err := os.Stat(paths.Dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("project directory missing: %v", err)
	}

	_, err = store.Create("alpha")
	if !errors.Is(err, project.ErrAlreadyExists) {
		t.Fatalf("second Create = %v, want ErrAlreadyExists", err)
	}
}

func TestGet(t *testing.T) {
	store := project.NewStore(t.TempDir())

	_, err := store.Get("ghost")
	if !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("Get missing = %v, want ErrNotFound", err)
	}

	created, err := store.Create("beta")
	if err != nil {
		t.Fatal(err)
	}
	got, err := store.Get("beta")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	// Path mapping is a pure function of root and name.
	for _, k := range stage.Kinds() {
		if got.ArtifactPath(k) != created.ArtifactPath(k) {
			t.Fatalf("path mismatch for %s", k)
		}
	}
	if got.StoryConfigPath() != filepath.Join(got.Dir, project.StoryConfigFile) {
		t.Fatalf("unexpected story config path: %q", got.StoryConfigPath())
	}
}

func TestArtifactPathsAreDistinctAndStable(t *testing.T) {
	store := project.NewStore(t.TempDir())
	paths, err := store.Create("gamma")
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]stage.Kind{}
	for _, k := range stage.Kinds() {
		p := paths.ArtifactPath(k)
		if prev, dup := seen[p]; dup {
			t.Fatalf("stages %s and %s share path %q", prev, k, p)
		}
		seen[p] = k
		if filepath.Dir(p) != paths.Dir {
			t.Fatalf("artifact %s escapes project dir: %q", k, p)
		}
	}
}

func TestInvalidNames(t *testing.T) {
	store := project.NewStore(t.TempDir())
	for _, name := range []string{"", ".", "..", "a/b", `a\b`} {
		if store.Exists(name) {
			t.Fatalf("Exists(%q) = true", name)
		}
		if _, err := store.Create(name); !errors.Is(err, project.ErrInvalidName) {
			t.Fatalf("Create(%q) = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestList(t *testing.T) {
	root := t.TempDir()
	store := project.NewStore(root)

	names, err := store.List()
	if err != nil || len(names) != 0 {
		t.Fatalf("empty root: %v %v", names, err)
	}

	for _, name := range []string{"zeta", "alpha", "mira"} {
		if _, err := store.Create(name); err != nil {
			t.Fatal(err)
		}
	}
	// Stray files under the root are not projects.
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err = store.List()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"alpha", "mira", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("List = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("List = %v, want %v", names, want)
		}
	}
}

func TestListMissingRoot(t *testing.T) {
	store := project.NewStore(filepath.Join(t.TempDir(), "never-created"))
	names, err := store.List()
	if err != nil {
		t.Fatalf("List on missing root: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("expected no projects, got %v", names)
	}
}
