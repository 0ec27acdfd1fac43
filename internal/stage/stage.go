package stage

import "fmt"

// Kind identifies one step of the fixed generation pipeline.
type Kind string

const (
	KindIdea       Kind = "idea"
	KindCharacters Kind = "characters"
	KindLocations  Kind = "locations"
	KindOutline    Kind = "outline"
	KindBreakdown  Kind = "breakdown"
	KindProse      Kind = "prose"
	KindTitle      Kind = "title"
	KindEpub       Kind = "epub"
)

// kinds holds every stage in pipeline order. Order matters: status reporting
// and prerequisite lookups both iterate it.
var kinds = []Kind{
	KindIdea,
	KindCharacters,
	KindLocations,
	KindOutline,
	KindBreakdown,
	KindProse,
	KindTitle,
	KindEpub,
}

// filenames maps each stage to its single artifact file. Names are stable
// and keyed only by stage kind; there is no per-stage revision storage.
var filenames = map[Kind]string{
	KindIdea:       "idea.md",
	KindCharacters: "characters.md",
	KindLocations:  "locations.md",
	KindOutline:    "outline.md",
	KindBreakdown:  "breakdown.md",
	KindProse:      "prose.md",
	KindTitle:      "title.txt",
	KindEpub:       "story.epub",
}

// Kinds returns every stage kind in pipeline order. The returned slice is a
// fresh copy.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Parse converts a user-supplied stage name into a Kind.
func Parse(value string) (Kind, error) {
	k := Kind(value)
	if _, ok := filenames[k]; !ok {
		return "", fmt.Errorf("unknown stage %q", value)
	}
	return k, nil
}

// Filename returns the artifact file name for the stage.
func (k Kind) Filename() string {
	return filenames[k]
}

func (k Kind) String() string {
	return string(k)
}
