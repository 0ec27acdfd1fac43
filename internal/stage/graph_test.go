package stage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"inkwell/internal/stage"
)

type dirSet string

func (d dirSet) ArtifactPath(k stage.Kind) string {
	return filepath.Join(string(d), k.Filename())
}

func TestPrerequisiteChain(t *testing.T) {
	want := map[stage.Kind]stage.Kind{
		stage.KindCharacters: stage.KindIdea,
		stage.KindLocations:  stage.KindCharacters,
		stage.KindOutline:    stage.KindLocations,
		stage.KindBreakdown:  stage.KindOutline,
		stage.KindProse:      stage.KindBreakdown,
		stage.KindTitle:      stage.KindProse,
		stage.KindEpub:       stage.KindProse,
	}
	if _, ok := stage.Prerequisite(stage.KindIdea); ok {
		t.Fatal("idea must have no prerequisite")
	}
	for k, p := range want {
		got, ok := stage.Prerequisite(k)
		if !ok || got != p {
			t.Fatalf("Prerequisite(%s) = %s, want %s", k, got, p)
		}
	}
	if opt, ok := stage.OptionalPrerequisite(stage.KindEpub); !ok || opt != stage.KindTitle {
		t.Fatalf("epub optional prerequisite = %s, %v", opt, ok)
	}
	if _, ok := stage.OptionalPrerequisite(stage.KindTitle); ok {
		t.Fatal("title must have no optional prerequisite")
	}
}

func TestCheckReady(t *testing.T) {
	dir := dirSet(t.TempDir())

	// First stage is always ready at the graph level.
	if err := stage.CheckReady(stage.KindIdea, dir); err != nil {
		t.Fatalf("idea should be ready: %v", err)
	}

	// Missing prerequisite artifact.
	err := stage.CheckReady(stage.KindCharacters, dir)
	var prereq *stage.PrerequisiteError
	if !errors.As(err, &prereq) {
		t.Fatalf("expected PrerequisiteError, got %v", err)
	}
	if prereq.Stage != stage.KindCharacters || prereq.Missing != stage.KindIdea {
		t.Fatalf("unexpected error fields: %+v", prereq)
	}

	// Empty file still blocks.
	if err := os.WriteFile(dir.ArtifactPath(stage.KindIdea), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := stage.CheckReady(stage.KindCharacters, dir); err == nil {
		t.Fatal("empty prerequisite file must not satisfy CheckReady")
	}

	// Any non-empty content satisfies it; content is never inspected.
	if err := os.WriteFile(dir.ArtifactPath(stage.KindIdea), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := stage.CheckReady(stage.KindCharacters, dir); err != nil {
		t.Fatalf("non-empty prerequisite should satisfy CheckReady: %v", err)
	}
}

func TestCheckReadyEpubIgnoresMissingTitle(t *testing.T) {
	dir := dirSet(t.TempDir())
	if err := os.WriteFile(dir.ArtifactPath(stage.KindProse), []byte("prose"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := stage.CheckReady(stage.KindEpub, dir); err != nil {
		t.Fatalf("epub must not require title: %v", err)
	}
}

func TestParse(t *testing.T) {
	for _, k := range stage.Kinds() {
		got, err := stage.Parse(k.String())
		if err != nil || got != k {
			t.Fatalf("Parse(%s) = %s, %v", k, got, err)
		}
	}
	if _, err := stage.Parse("chapters"); err == nil {
		t.Fatal("expected error for unknown stage")
	}
}
