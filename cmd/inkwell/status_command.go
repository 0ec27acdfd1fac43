package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"inkwell/internal/status"
	"inkwell/internal/story"
	"inkwell/internal/textutil"
)

type stageStatusView struct {
	Stage   string `json:"stage"`
	Present bool   `json:"present"`
}

type statusView struct {
	Project     string            `json:"project"`
	StoryType   string            `json:"story_type,omitempty"`
	Premise     string            `json:"premise,omitempty"`
	Stages      []stageStatusView `json:"stages"`
	NextStage   string            `json:"next_stage,omitempty"`
	Complete    bool              `json:"complete"`
	Progress    float64           `json:"progress"`
	ProseWords  int               `json:"prose_words"`
	TargetWords int               `json:"target_words,omitempty"`
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "status <name>",
		Short: "Show pipeline progress for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.projectStore()
			if err != nil {
				return err
			}
			paths, err := store.Get(args[0])
			if err != nil {
				return err
			}

			// A project without a readable story config still reports
			// artifact progress; only the word target goes missing.
			cfg, err := story.Load(paths.StoryConfigPath())
			if err != nil && !errors.Is(err, story.ErrMissing) && !errors.Is(err, story.ErrCorrupt) {
				return err
			}

			report, err := status.Compute(paths, cfg)
			if err != nil {
				return err
			}

			view := statusView{
				Project:     paths.Name,
				NextStage:   report.NextStage.String(),
				Complete:    report.Complete,
				Progress:    report.Fraction,
				ProseWords:  report.ProseWords,
				TargetWords: report.TargetWords,
			}
			if cfg != nil {
				view.StoryType = cfg.Type.String()
				view.Premise = cfg.Premise
			}
			for _, s := range report.Stages {
				view.Stages = append(view.Stages, stageStatusView{Stage: s.Kind.String(), Present: s.Present})
			}

			if jsonFlag {
				return writeJSON(cmd, view)
			}
			renderStatus(cmd, view)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of a table")

	return cmd
}

func renderStatus(cmd *cobra.Command, view statusView) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Project: %s\n", view.Project)
	if view.StoryType != "" {
		fmt.Fprintf(out, "Story:   %s (%s)\n", view.StoryType, textutil.Truncate(view.Premise, 72))
	}

	rows := make([][]string, 0, len(view.Stages))
	for _, s := range view.Stages {
		mark := "-"
		if s.Present {
			mark = "done"
		}
		rows = append(rows, []string{s.Stage, mark})
	}
	fmt.Fprintln(out, renderTable([]string{"STAGE", "STATUS"}, rows, []columnAlignment{alignLeft, alignLeft}))

	fmt.Fprintf(out, "Progress: %s", formatPercent(view.Progress))
	if view.Complete {
		fmt.Fprint(out, " (complete)")
	} else if view.NextStage != "" {
		fmt.Fprintf(out, " | next: inkwell run %s %s", view.NextStage, view.Project)
	}
	fmt.Fprintln(out)

	if view.ProseWords > 0 {
		fmt.Fprintf(out, "Prose: %s words", formatWords(view.ProseWords))
		if view.TargetWords > 0 {
			fmt.Fprintf(out, " of %s target (%s)",
				formatWords(view.TargetWords),
				formatPercent(float64(view.ProseWords)/float64(view.TargetWords)))
		}
		fmt.Fprintln(out)
	}
}
