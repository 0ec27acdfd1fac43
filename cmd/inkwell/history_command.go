package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"inkwell/internal/runlog"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "history [project]",
		Short: "Show recent stage runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runs, err := runlog.Open(cfg.Paths.LogDir)
			if err != nil {
				return err
			}
			defer runs.Close()

			projectName := ""
			if len(args) == 1 {
				projectName = args[0]
			}
			entries, err := runs.List(cmd.Context(), projectName, limitFlag)
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, run := range entries {
				words := ""
				if run.Words > 0 {
					words = formatWords(run.Words)
				}
				rows = append(rows, []string{
					run.StartedAt.Local().Format("2006-01-02 15:04"),
					run.Project,
					run.Stage,
					run.Status,
					words,
					run.Duration().Round(runDurationPrecision).String(),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"STARTED", "PROJECT", "STAGE", "STATUS", "WORDS", "TOOK"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limitFlag, "limit", 20, "Maximum runs to show")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of a table")

	return cmd
}
