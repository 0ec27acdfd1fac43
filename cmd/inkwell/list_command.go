package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"inkwell/internal/status"
	"inkwell/internal/story"
)

type projectListView struct {
	Name      string  `json:"name"`
	StoryType string  `json:"story_type,omitempty"`
	Progress  float64 `json:"progress"`
	NextStage string  `json:"next_stage,omitempty"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List managed projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.projectStore()
			if err != nil {
				return err
			}
			names, err := store.List()
			if err != nil {
				return err
			}

			views := make([]projectListView, 0, len(names))
			for _, name := range names {
				paths, err := store.Get(name)
				if err != nil {
					return err
				}
				cfg, err := story.Load(paths.StoryConfigPath())
				if err != nil && !errors.Is(err, story.ErrMissing) && !errors.Is(err, story.ErrCorrupt) {
					return err
				}
				report, err := status.Compute(paths, cfg)
				if err != nil {
					return err
				}
				view := projectListView{
					Name:      name,
					Progress:  report.Fraction,
					NextStage: report.NextStage.String(),
				}
				if cfg != nil {
					view.StoryType = cfg.Type.String()
				}
				views = append(views, view)
			}

			if jsonFlag {
				return writeJSON(cmd, views)
			}
			if len(views) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects yet. Create one with 'inkwell new <name>'.")
				return nil
			}

			rows := make([][]string, 0, len(views))
			for _, v := range views {
				next := v.NextStage
				if next == "" {
					next = "(complete)"
				}
				rows = append(rows, []string{v.Name, v.StoryType, formatPercent(v.Progress), next})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"PROJECT", "TYPE", "PROGRESS", "NEXT STAGE"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of a table")

	return cmd
}
