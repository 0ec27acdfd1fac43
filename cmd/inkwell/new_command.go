package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"inkwell/internal/story"
)

func newNewCommand(ctx *commandContext) *cobra.Command {
	var premiseFlag string
	var typeFlag string
	var wordsFlag int

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a project",
		Long:  "Create a managed project directory with its story configuration.\nMissing premise, length, or word target are collected interactively when\nrunning at a terminal.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.projectStore()
			if err != nil {
				return err
			}

			premise := strings.TrimSpace(premiseFlag)
			var storyType story.Type
			if trimmed := strings.TrimSpace(typeFlag); trimmed != "" {
				if storyType, err = story.ParseType(trimmed); err != nil {
					return err
				}
			}
			words := wordsFlag

			if (premise == "" || storyType == "") && stdinIsInteractive() {
				premise, storyType, words, err = promptStoryInput(cmd, premise, storyType, words)
				if err != nil {
					return err
				}
			}
			if premise == "" {
				return fmt.Errorf("%w: premise required (use --premise)", story.ErrIncomplete)
			}
			storyType, words, err = story.ResolveDefaults(storyType, words)
			if err != nil {
				return err
			}

			paths, err := store.Create(args[0])
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			cfg := &story.Config{
				Type:        storyType,
				TargetWords: words,
				Premise:     premise,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := story.Save(paths.StoryConfigPath(), cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created project %q: %s, target %s words\n",
				paths.Name, storyType.Label(), formatWords(words))
			fmt.Fprintf(cmd.OutOrStdout(), "Next: inkwell run idea %s\n", paths.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&premiseFlag, "premise", "", "Story premise")
	cmd.Flags().StringVar(&typeFlag, "type", "", "Story length class (flash-fiction, short-story, novelette, novella, novel)")
	cmd.Flags().IntVar(&wordsFlag, "words", 0, "Target word count (defaults from the length class)")

	return cmd
}
