// Package status derives human-facing progress for a project from the
// artifact files present in its directory. Everything here is advisory and
// read-only; nothing in a report ever blocks a stage from running.
package status

import (
	"fmt"
	"os"

	"inkwell/internal/fileutil"
	"inkwell/internal/project"
	"inkwell/internal/stage"
	"inkwell/internal/story"
	"inkwell/internal/textutil"
)

// StageStatus records whether one stage's artifact is present.
type StageStatus struct {
	Kind    stage.Kind
	Present bool
}

// Report aggregates pipeline progress for one project.
type Report struct {
	Stages []StageStatus
	// NextStage is the first stage in pipeline order whose artifact is
	// absent. Complete is true when every artifact is present, in which
	// case NextStage is empty.
	NextStage stage.Kind
	Complete  bool
	// Fraction is present artifacts over total stage count.
	Fraction float64
	// ProseWords is the whitespace-token count of the prose artifact, zero
	// when prose is absent. TargetWords echoes the story config target.
	ProseWords  int
	TargetWords int
}

// Compute builds a report from artifact existence checks plus one optional
// content read (the prose artifact, for word counting). cfg may be nil when
// no story config is loaded; the word target is then omitted.
func Compute(paths *project.Paths, cfg *story.Config) (*Report, error) {
	kinds := stage.Kinds()
	report := &Report{Stages: make([]StageStatus, 0, len(kinds))}

	present := 0
	for _, k := range kinds {
		ok := fileutil.NonEmpty(paths.ArtifactPath(k))
		report.Stages = append(report.Stages, StageStatus{Kind: k, Present: ok})
		if ok {
			present++
		} else if report.NextStage == "" {
			report.NextStage = k
		}
	}
	report.Complete = present == len(kinds)
	report.Fraction = float64(present) / float64(len(kinds))

	if cfg != nil {
		report.TargetWords = cfg.TargetWords
	}
	if fileutil.NonEmpty(paths.ArtifactPath(stage.KindProse)) {
		data, err := os.ReadFile(paths.ArtifactPath(stage.KindProse))
		if err != nil {
			return nil, fmt.Errorf("read prose artifact: %w", err)
		}
		report.ProseWords = textutil.CountWords(string(data))
	}
	return report, nil
}

// TargetPercent reports observed prose words against the configured target,
// or zero when no target is known.
func (r *Report) TargetPercent() float64 {
	if r.TargetWords <= 0 {
		return 0
	}
	return float64(r.ProseWords) / float64(r.TargetWords) * 100
}
