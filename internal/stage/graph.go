package stage

import (
	"fmt"

	"inkwell/internal/fileutil"
)

// prerequisites declares the strict linear dependency chain. Idea has no
// artifact prerequisite; its only requirement is a story config with a
// premise, which the stage runner enforces before generation.
var prerequisites = map[Kind]Kind{
	KindCharacters: KindIdea,
	KindLocations:  KindCharacters,
	KindOutline:    KindLocations,
	KindBreakdown:  KindOutline,
	KindProse:      KindBreakdown,
	KindTitle:      KindProse,
	KindEpub:       KindProse,
}

// optionalPrerequisites declares artifacts a stage consumes when present but
// whose absence does not block it. Export substitutes a fixed fallback title
// when title.txt is missing; this is the one branch off the linear chain.
var optionalPrerequisites = map[Kind]Kind{
	KindEpub: KindTitle,
}

// ArtifactSet resolves a stage kind to the path its artifact lives at.
// *project.Paths satisfies it.
type ArtifactSet interface {
	ArtifactPath(Kind) string
}

// Prerequisite returns the stage whose artifact must exist before k may run.
// The second result is false for the first stage.
func Prerequisite(k Kind) (Kind, bool) {
	p, ok := prerequisites[k]
	return p, ok
}

// OptionalPrerequisite returns the stage whose artifact k consumes when
// available, or false when k has none.
func OptionalPrerequisite(k Kind) (Kind, bool) {
	p, ok := optionalPrerequisites[k]
	return p, ok
}

// PrerequisiteError reports a stage asked to run before its required
// predecessor artifact exists.
type PrerequisiteError struct {
	Stage   Kind
	Missing Kind
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("stage %s requires a non-empty %s artifact; run the %s stage first", e.Stage, e.Missing, e.Missing)
}

// CheckReady verifies that k's required prerequisite artifact exists and is
// non-empty. Validity is inferred from presence only, never from content.
// Optional prerequisites are not checked here.
func CheckReady(k Kind, paths ArtifactSet) error {
	p, ok := Prerequisite(k)
	if !ok {
		return nil
	}
	if !fileutil.NonEmpty(paths.ArtifactPath(p)) {
		return &PrerequisiteError{Stage: k, Missing: p}
	}
	return nil
}
