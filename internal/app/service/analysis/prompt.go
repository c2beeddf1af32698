package analysis

import "fmt"

// promptTemplate instructs the model to answer with a bare JSON object
// matching types.AnalysisResult. This is a convention, not a protocol
// guarantee; the parser still strips fences and validates the shape.
const promptTemplate = `Analyze the following journal entry and respond with ONLY a JSON object, no markdown and no code fences, in exactly this shape:
{
  "moodScore": <number between 1 and 10>,
  "summary": "<2-3 sentence summary of the entry>",
  "emotions": {
    "primary": "<the dominant emotion>",
    "secondary": ["<other emotions present>"],
    "intensity": "<low, medium or high>"
  },
  "topics": ["<key topics mentioned>"],
  "suggestions": {
    "immediate": "<one thing the writer can do right now>",
    "longTerm": "<a longer-term suggestion>",
    "activities": ["<recommended wellness activities>"],
    "resources": ["<helpful resources>"]
  }
}

Journal entry:
%s`

func buildPrompt(content string) string {
	return fmt.Sprintf(promptTemplate, content)
}
