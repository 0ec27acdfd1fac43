// Package story defines the per-project configuration record: story length
// class, target word count, premise, and timestamps. The JSON file written
// by Save is the single source of truth for project configuration; it is
// loaded fresh before each mutation and always rewritten whole.
package story

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Type is the closed set of story length categories.
type Type string

const (
	TypeFlashFiction Type = "flash-fiction"
	TypeShortStory   Type = "short-story"
	TypeNovelette    Type = "novelette"
	TypeNovella      Type = "novella"
	TypeNovel        Type = "novel"
)

// types holds every category in ascending length order.
var types = []Type{TypeFlashFiction, TypeShortStory, TypeNovelette, TypeNovella, TypeNovel}

// labels maps each category to its display label with the conventional
// word-count band. Display only; no behavioral effect.
var labels = map[Type]string{
	TypeFlashFiction: "Flash fiction (under 1,500 words)",
	TypeShortStory:   "Short story (1,500-7,500 words)",
	TypeNovelette:    "Novelette (7,500-17,500 words)",
	TypeNovella:      "Novella (17,500-40,000 words)",
	TypeNovel:        "Novel (40,000+ words)",
}

// defaultTargets is the fixed default word-count table keyed by category.
// Exposed only through DefaultTargets, which copies it.
var defaultTargets = map[Type]int{
	TypeFlashFiction: 1000,
	TypeShortStory:   5000,
	TypeNovelette:    12000,
	TypeNovella:      30000,
	TypeNovel:        80000,
}

var (
	// ErrMissing is returned when the story config file does not exist.
	ErrMissing = errors.New("story config missing")
	// ErrCorrupt is returned when the file exists but cannot be decoded.
	ErrCorrupt = errors.New("story config corrupt")
	// ErrIncomplete is returned when defaults cannot be resolved and no
	// interactive fallback is available.
	ErrIncomplete = errors.New("incomplete story config")
)

// Config is the configuration envelope for a project.
type Config struct {
	Type        Type      `json:"story_type"`
	TargetWords int       `json:"target_words"`
	Premise     string    `json:"premise"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Types returns every story category in ascending length order.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// ParseType converts a user-supplied category name into a Type.
func ParseType(value string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := defaultTargets[t]; !ok {
		return "", fmt.Errorf("unknown story type %q", value)
	}
	return t, nil
}

// Label returns the human-readable category label with its word-count band.
func (t Type) Label() string {
	if label, ok := labels[t]; ok {
		return label
	}
	return string(t)
}

func (t Type) String() string {
	return string(t)
}

// DefaultTargets returns a copy of the fixed default word-count table.
func DefaultTargets() map[Type]int {
	out := make(map[Type]int, len(defaultTargets))
	for t, words := range defaultTargets {
		out[t] = words
	}
	return out
}

// ResolveDefaults fills a missing target word count from the fixed table.
// The story type cannot be defaulted: when it is empty the caller must
// obtain it interactively, and absent that this fails with ErrIncomplete.
func ResolveDefaults(storyType Type, words int) (Type, int, error) {
	if storyType == "" {
		return "", 0, fmt.Errorf("%w: story type not set", ErrIncomplete)
	}
	target, ok := defaultTargets[storyType]
	if !ok {
		return "", 0, fmt.Errorf("unknown story type %q", storyType)
	}
	if words <= 0 {
		words = target
	}
	return storyType, words, nil
}

// Validate checks the record's invariants.
func (c *Config) Validate() error {
	if _, ok := defaultTargets[c.Type]; !ok {
		return fmt.Errorf("unknown story type %q", c.Type)
	}
	if c.TargetWords <= 0 {
		return errors.New("target words must be positive")
	}
	if strings.TrimSpace(c.Premise) == "" {
		return errors.New("premise must not be empty")
	}
	if !c.CreatedAt.IsZero() && !c.UpdatedAt.IsZero() && c.UpdatedAt.Before(c.CreatedAt) {
		return errors.New("updated_at predates created_at")
	}
	return nil
}
