package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"inkwell/internal/generate"
	"inkwell/internal/projlock"
	"inkwell/internal/resolve"
	"inkwell/internal/stage"
	"inkwell/internal/story"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var inputFlag string
	var premiseFlag string
	var typeFlag string
	var wordsFlag int

	cmd := &cobra.Command{
		Use:   "run <stage> <project|path>",
		Short: "Run one generation stage",
		Long: "Run one pipeline stage (idea, characters, locations, outline, breakdown,\n" +
			"prose, title). A managed project name reads and writes artifacts inside the\n" +
			"project directory; any other identifier is treated as the literal output\n" +
			"path, with --input naming the prerequisite artifact and --premise/--type\n" +
			"describing the story.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := stage.Parse(args[0])
			if err != nil {
				return err
			}
			if kind == stage.KindEpub {
				return fmt.Errorf("use 'inkwell export' for the epub stage")
			}

			store, err := ctx.projectStore()
			if err != nil {
				return err
			}

			runs := ctx.openRunlog()
			if runs != nil {
				defer runs.Close()
			}
			runner, err := ctx.newRunner(runs)
			if err != nil {
				return err
			}

			res := resolve.Artifact(store, args[1], kind)
			if res.Mode == resolve.ModeManaged {
				lock, err := projlock.Acquire(res.Paths.Dir)
				if err != nil {
					return err
				}
				defer lock.Release()

				if err := runner.RunProject(cmd.Context(), kind, res.Paths); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", res.Path)
				return nil
			}

			req, err := directRequest(kind, res.Path, inputFlag, premiseFlag, typeFlag, wordsFlag)
			if err != nil {
				return err
			}
			if err := runner.Run(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", res.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputFlag, "input", "", "Prerequisite artifact path (direct mode)")
	cmd.Flags().StringVar(&premiseFlag, "premise", "", "Story premise (direct mode)")
	cmd.Flags().StringVar(&typeFlag, "type", "", "Story length class (direct mode)")
	cmd.Flags().IntVar(&wordsFlag, "words", 0, "Target word count (direct mode)")

	return cmd
}

// directRequest assembles a stage run against raw paths. Direct mode has no
// story config on disk, so the story description arrives via flags.
func directRequest(kind stage.Kind, output, input, premise, typeValue string, words int) (generate.Request, error) {
	var zero generate.Request

	var storyType story.Type
	if trimmed := strings.TrimSpace(typeValue); trimmed != "" {
		parsed, err := story.ParseType(trimmed)
		if err != nil {
			return zero, err
		}
		storyType = parsed
	}
	storyType, words, err := story.ResolveDefaults(storyType, words)
	if err != nil {
		return zero, err
	}
	premise = strings.TrimSpace(premise)
	if premise == "" {
		return zero, fmt.Errorf("%w: premise required in direct mode (use --premise)", story.ErrIncomplete)
	}

	input = strings.TrimSpace(input)
	if _, needsInput := stage.Prerequisite(kind); needsInput && input == "" {
		return zero, fmt.Errorf("stage %s needs --input in direct mode", kind)
	}

	return generate.Request{
		Kind:   kind,
		Input:  input,
		Output: output,
		Config: &story.Config{
			Type:        storyType,
			TargetWords: words,
			Premise:     premise,
		},
	}, nil
}
