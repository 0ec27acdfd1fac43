package generate

import (
	"fmt"
	"strings"

	"inkwell/internal/stage"
	"inkwell/internal/story"
)

// systemPrompt is shared by every generation stage. Keep prompt text
// centralized here so it is easy to tweak without hunting through call sites.
const systemPrompt = `You are a fiction-writing assistant working through a fixed pipeline: idea, characters, locations, outline, chapter breakdown, prose, title. Each request gives you the output of the previous stage. Respond with the requested document only, in plain Markdown, with no preamble and no commentary about the task.`

// stageInstructions maps each generation stage to the instruction block sent
// with the previous stage's output.
var stageInstructions = map[stage.Kind]string{
	stage.KindIdea:       `Expand the premise below into a one-page story idea: central conflict, stakes, tone, and the arc from opening to ending.`,
	stage.KindCharacters: `From the story idea below, write a character document: every significant character with name, role, motivation, and how they change over the story.`,
	stage.KindLocations:  `From the story idea and characters below, write a locations document: every significant setting with a short evocative description and its role in the story.`,
	stage.KindOutline:    `From the material below, write a chapter-level outline: a numbered list of chapters, each with a one-paragraph summary of its events.`,
	stage.KindBreakdown:  `Expand the outline below into a detailed scene breakdown: for each chapter, the scenes it contains, who appears, where it happens, and what changes.`,
	stage.KindProse:      `Write the full prose of the story from the scene breakdown below. Write complete scenes with dialogue and description; separate chapters with Markdown headings.`,
	stage.KindTitle:      `Suggest a title for the story below. Respond with the title alone on a single line, with no quotes and no explanation.`,
}

// buildPrompts assembles the system and user prompts for one stage run.
func buildPrompts(kind stage.Kind, cfg *story.Config, predecessor string) (string, string, error) {
	instructions, ok := stageInstructions[kind]
	if !ok {
		return "", "", fmt.Errorf("stage %s has no generation prompt", kind)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Story class: %s, target length about %d words.\n", cfg.Type.Label(), cfg.TargetWords)
	fmt.Fprintf(&b, "Premise: %s\n\n", strings.TrimSpace(cfg.Premise))
	b.WriteString(instructions)
	if predecessor = strings.TrimSpace(predecessor); predecessor != "" {
		b.WriteString("\n\n---\n\n")
		b.WriteString(predecessor)
	}
	return systemPrompt, b.String(), nil
}
