// Package generate runs one pipeline stage end to end: prerequisite check,
// prompt assembly, provider call, and atomic artifact write. Provider
// failures are terminal for the invocation; retry policy lives inside the
// provider client, never here.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"inkwell/internal/fileutil"
	"inkwell/internal/project"
	"inkwell/internal/runlog"
	"inkwell/internal/services"
	"inkwell/internal/stage"
	"inkwell/internal/story"
	"inkwell/internal/textutil"
)

// Completer is the surface the runner needs from the generation provider.
// *llm.Client satisfies it.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Runner executes generation stages against project artifacts.
type Runner struct {
	client Completer
	logger *slog.Logger
	runs   *runlog.Store
}

// NewRunner constructs a Runner. runs may be nil to skip history recording.
func NewRunner(client Completer, logger *slog.Logger, runs *runlog.Store) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{client: client, logger: logger, runs: runs}
}

// Request describes one stage run with fully resolved paths. Input is the
// prerequisite artifact path and is empty only for the idea stage.
type Request struct {
	Kind    stage.Kind
	Input   string
	Output  string
	Config  *story.Config
	Project string
}

// RunProject executes one stage of a managed project: it loads the story
// config, verifies the prerequisite artifact, and writes the stage's
// artifact into the project directory.
func (r *Runner) RunProject(ctx context.Context, kind stage.Kind, paths *project.Paths) error {
	cfg, err := story.Load(paths.StoryConfigPath())
	if err != nil {
		return err
	}
	if err := stage.CheckReady(kind, paths); err != nil {
		return err
	}

	req := Request{
		Kind:    kind,
		Output:  paths.ArtifactPath(kind),
		Config:  cfg,
		Project: paths.Name,
	}
	if prereq, ok := stage.Prerequisite(kind); ok {
		req.Input = paths.ArtifactPath(prereq)
	}
	return r.Run(ctx, req)
}

// Run executes one stage with explicit paths. It serves both managed
// projects (via RunProject) and direct-mode invocations against raw files.
func (r *Runner) Run(ctx context.Context, req Request) error {
	if req.Kind == stage.KindEpub {
		return fmt.Errorf("stage %s is not a generation stage", req.Kind)
	}
	if req.Config == nil {
		return fmt.Errorf("%w: story config required", story.ErrIncomplete)
	}
	if err := req.Config.Validate(); err != nil {
		return err
	}

	var predecessor string
	if req.Input != "" {
		if !fileutil.NonEmpty(req.Input) {
			if prereq, ok := stage.Prerequisite(req.Kind); ok {
				return &stage.PrerequisiteError{Stage: req.Kind, Missing: prereq}
			}
		}
		data, err := os.ReadFile(req.Input)
		if err != nil {
			return fmt.Errorf("read prerequisite artifact: %w", err)
		}
		predecessor = string(data)
	}

	system, user, err := buildPrompts(req.Kind, req.Config, predecessor)
	if err != nil {
		return err
	}

	started := time.Now().UTC()
	r.logger.Info("running stage",
		"stage", req.Kind.String(),
		"project", req.Project,
		"output", req.Output)

	content, err := r.client.Complete(ctx, system, user)
	if err != nil {
		err = services.Wrap(services.ErrProvider, req.Kind.String(), "generate", "provider call failed", err)
		r.record(ctx, req, started, 0, err)
		return err
	}
	if req.Kind == stage.KindTitle {
		// The title artifact is a single line regardless of how chatty the
		// model was.
		content = textutil.FirstLine(content)
	}
	content = strings.TrimSpace(content) + "\n"

	if err := fileutil.WriteFileAtomic(req.Output, []byte(content), 0o644); err != nil {
		err = fmt.Errorf("write %s artifact: %w", req.Kind, err)
		r.record(ctx, req, started, 0, err)
		return err
	}

	words := textutil.CountWords(content)
	r.logger.Info("stage complete",
		"stage", req.Kind.String(),
		"project", req.Project,
		"words", words,
		"elapsed", time.Since(started).Round(time.Millisecond))
	r.record(ctx, req, started, words, nil)
	return nil
}

func (r *Runner) record(ctx context.Context, req Request, started time.Time, words int, runErr error) {
	if r.runs == nil {
		return
	}
	run := runlog.Run{
		Project:    req.Project,
		Stage:      req.Kind.String(),
		Status:     runlog.StatusSuccess,
		Words:      words,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
	}
	if run.Project == "" {
		run.Project = req.Output
	}
	if runErr != nil {
		run.Status = runlog.StatusFailed
		run.Detail = runErr.Error()
	}
	if err := r.runs.Record(ctx, run); err != nil {
		r.logger.Warn("record run history", "error", err)
	}
}
