// Package resolve translates a user-supplied identifier, either a managed
// project name or a raw file path, into the concrete artifact path every command
// operates on. Centralizing the managed/direct branch here keeps it out of
// the individual command handlers.
package resolve

import (
	"errors"
	"fmt"

	"inkwell/internal/fileutil"
	"inkwell/internal/project"
	"inkwell/internal/stage"
)

// ErrArtifactNotFound is returned by RequireExists when a resolved path does
// not exist but consumption was expected.
var ErrArtifactNotFound = errors.New("artifact not found")

// Mode tags how an identifier was interpreted.
type Mode string

const (
	// ModeManaged means the identifier matched a project under the root and
	// the path was derived from the stage layout.
	ModeManaged Mode = "managed"
	// ModeDirect means the identifier was taken verbatim as a file path.
	ModeDirect Mode = "direct"
)

// Resolution pairs the computed path with the interpretation that produced it.
type Resolution struct {
	Path string
	Mode Mode
	// Paths is the project layout when Mode is ModeManaged, nil otherwise.
	Paths *project.Paths
}

// Artifact resolves identifier to the path of the given stage's artifact.
// It only computes: no directories or files are created, and a nonexistent
// direct path is not an error. Callers that consume the artifact must call
// RequireExists afterward.
func Artifact(store *project.Store, identifier string, kind stage.Kind) Resolution {
	if store.Exists(identifier) {
		paths, err := store.Get(identifier)
		if err == nil {
			return Resolution{
				Path:  paths.ArtifactPath(kind),
				Mode:  ModeManaged,
				Paths: paths,
			}
		}
	}
	return Resolution{Path: identifier, Mode: ModeDirect}
}

// RequireExists fails with ErrArtifactNotFound unless the resolved path
// names a non-empty file.
func (r Resolution) RequireExists() error {
	if !fileutil.NonEmpty(r.Path) {
		return fmt.Errorf("%w: %s", ErrArtifactNotFound, r.Path)
	}
	return nil
}
