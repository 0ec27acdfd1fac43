package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"inkwell/internal/epub"
	"inkwell/internal/fileutil"
	"inkwell/internal/projlock"
	"inkwell/internal/resolve"
	"inkwell/internal/runlog"
	"inkwell/internal/stage"
	"inkwell/internal/textutil"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var titleFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "export <project|prose-path>",
		Short: "Export finished prose as an EPUB",
		Long: "Export the prose artifact as an EPUB. A managed project name reads prose and\n" +
			"title from the project directory and writes story.epub next to them; any\n" +
			"other identifier is treated as the prose file itself, with --output naming\n" +
			"the destination.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := ctx.projectStore()
			if err != nil {
				return err
			}

			res := resolve.Artifact(store, args[0], stage.KindProse)

			var prosePath, outputPath, title, projectLabel string
			if res.Mode == resolve.ModeManaged {
				lock, err := projlock.Acquire(res.Paths.Dir)
				if err != nil {
					return err
				}
				defer lock.Release()

				if err := stage.CheckReady(stage.KindEpub, res.Paths); err != nil {
					return err
				}
				prosePath = res.Paths.ArtifactPath(stage.KindProse)
				outputPath = res.Paths.ArtifactPath(stage.KindEpub)
				projectLabel = res.Paths.Name
				// Title is optional: a missing artifact falls back below.
				if titlePath := res.Paths.ArtifactPath(stage.KindTitle); fileutil.NonEmpty(titlePath) {
					data, err := os.ReadFile(titlePath)
					if err != nil {
						return fmt.Errorf("read title artifact: %w", err)
					}
					title = textutil.FirstLine(string(data))
				}
			} else {
				prosePath = res.Path
				projectLabel = res.Path
				if err := res.RequireExists(); err != nil {
					return err
				}
				outputPath = strings.TrimSpace(outputFlag)
				if outputPath == "" {
					outputPath = filepath.Join(filepath.Dir(prosePath), stage.KindEpub.Filename())
				}
			}
			if trimmed := strings.TrimSpace(titleFlag); trimmed != "" {
				title = trimmed
			}
			if title == "" {
				title = epub.FallbackTitle
			}

			prose, err := os.ReadFile(prosePath)
			if err != nil {
				return fmt.Errorf("read prose artifact: %w", err)
			}

			started := time.Now().UTC()
			book := epub.Book{
				Title:    title,
				Author:   cfg.Export.Author,
				Language: cfg.Export.Language,
				Prose:    string(prose),
			}
			exportErr := epub.Write(outputPath, book)

			if runs := ctx.openRunlog(); runs != nil {
				run := runlog.Run{
					Project:    projectLabel,
					Stage:      stage.KindEpub.String(),
					Status:     runlog.StatusSuccess,
					Words:      textutil.CountWords(string(prose)),
					StartedAt:  started,
					FinishedAt: time.Now().UTC(),
				}
				if exportErr != nil {
					run.Status = runlog.StatusFailed
					run.Detail = exportErr.Error()
				}
				_ = runs.Record(cmd.Context(), run)
				_ = runs.Close()
			}
			if exportErr != nil {
				return exportErr
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %q to %s\n", title, outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&titleFlag, "title", "", "Override the book title")
	cmd.Flags().StringVar(&outputFlag, "output", "", "Destination path (direct mode)")

	return cmd
}
