package resolve_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"inkwell/internal/project"
	"inkwell/internal/resolve"
	"inkwell/internal/stage"
)

func TestArtifactManagedMode(t *testing.T) {
	store := project.NewStore(t.TempDir())
	paths, err := store.Create("alpha")
	if err != nil {
		t.Fatal(err)
	}

	res := resolve.Artifact(store, "alpha", stage.KindBreakdown)
	if res.Mode != resolve.ModeManaged {
		t.Fatalf("mode = %s, want managed", res.Mode)
	}
	if res.Path != paths.ArtifactPath(stage.KindBreakdown) {
		t.Fatalf("path = %q, want %q", res.Path, paths.ArtifactPath(stage.KindBreakdown))
	}
	if res.Paths == nil || res.Paths.Name != "alpha" {
		t.Fatal("managed resolution must carry the project layout")
	}
}

func TestArtifactDirectMode(t *testing.T) {
	store := project.NewStore(t.TempDir())

	identifier := "some/literal/file.txt"
	res := resolve.Artifact(store, identifier, stage.KindBreakdown)
	if res.Mode != resolve.ModeDirect {
		t.Fatalf("mode = %s, want direct", res.Mode)
	}
	if res.Path != identifier {
		t.Fatalf("direct path must be verbatim: got %q", res.Path)
	}
	if res.Paths != nil {
		t.Fatal("direct resolution must not carry a project layout")
	}
}

func TestArtifactIsSideEffectFreeAndIdempotent(t *testing.T) {
	root := t.TempDir()
	store := project.NewStore(root)

	first := resolve.Artifact(store, "phantom", stage.KindIdea)
	second := resolve.Artifact(store, "phantom", stage.KindIdea)
	if first != second {
		t.Fatalf("resolution not idempotent: %+v vs %+v", first, second)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("resolution created entries under the root: %v", entries)
	}
}

func TestRequireExists(t *testing.T) {
	store := project.NewStore(t.TempDir())

	res := resolve.Artifact(store, filepath.Join(t.TempDir(), "nope.md"), stage.KindProse)
	if err := res.RequireExists(); !errors.Is(err, resolve.ErrArtifactNotFound) {
		t.Fatalf("got %v, want ErrArtifactNotFound", err)
	}

	path := filepath.Join(t.TempDir(), "prose.md")
	if err := os.WriteFile(path, []byte("words"), 0o644); err != nil {
		t.Fatal(err)
	}
	res = resolve.Artifact(store, path, stage.KindProse)
	if err := res.RequireExists(); err != nil {
		t.Fatalf("RequireExists on present file: %v", err)
	}
}
