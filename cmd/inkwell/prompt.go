package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"inkwell/internal/story"
)

// stdinIsInteractive reports whether missing project inputs may be collected
// from the user.
func stdinIsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// promptStoryInput fills premise, story type, and target words from the
// terminal. Values already supplied are kept; an empty answer accepts the
// shown default.
func promptStoryInput(cmd *cobra.Command, premise string, storyType story.Type, words int) (string, story.Type, int, error) {
	reader := bufio.NewReader(os.Stdin)
	out := cmd.OutOrStdout()

	if strings.TrimSpace(premise) == "" {
		fmt.Fprint(out, "Premise: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", 0, fmt.Errorf("read premise: %w", err)
		}
		premise = strings.TrimSpace(line)
	}

	if storyType == "" {
		types := story.Types()
		fmt.Fprintln(out, "Story length:")
		for i, t := range types {
			fmt.Fprintf(out, "  %d. %s\n", i+1, t.Label())
		}
		fmt.Fprintf(out, "Choose [1-%d]: ", len(types))
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", 0, fmt.Errorf("read story type: %w", err)
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > len(types) {
			return "", "", 0, fmt.Errorf("invalid choice %q", strings.TrimSpace(line))
		}
		storyType = types[choice-1]
	}

	if words <= 0 {
		defaults := story.DefaultTargets()
		fmt.Fprintf(out, "Target words [%d]: ", defaults[storyType])
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", 0, fmt.Errorf("read target words: %w", err)
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			parsed, err := strconv.Atoi(trimmed)
			if err != nil || parsed <= 0 {
				return "", "", 0, fmt.Errorf("invalid word count %q", trimmed)
			}
			words = parsed
		}
	}

	return premise, storyType, words, nil
}
