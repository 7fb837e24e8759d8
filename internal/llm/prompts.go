package llm

import (
	_ "embed"
	"fmt"
	"strings"
)

// The four instruction templates are fixed; their literal JSON schemas are
// the wire contract with the model.
var (
	//go:embed prompts/section_detection.txt
	SectionDetectionPrompt string
	//go:embed prompts/feedback.txt
	FeedbackPrompt string
	//go:embed prompts/scoring.txt
	ScoringPrompt string
	//go:embed prompts/rewrite.txt
	RewritePrompt string
)

// QuickSummaryPrompt asks for a one-paragraph overall impression.
const QuickSummaryPrompt = "You are a helpful career advisor. Provide a brief, encouraging 2-3 sentence summary of this resume's overall impression."

// FeedbackUserPrompt wraps resume text for the feedback call.
func FeedbackUserPrompt(resumeText string) string {
	return fmt.Sprintf(`Please analyze this resume and provide section-by-section feedback:

---RESUME START---
%s
---RESUME END---

Remember to be encouraging and specific in your feedback.`, resumeText)
}

// ScoringUserPrompt wraps resume text for the scoring call.
func ScoringUserPrompt(resumeText string) string {
	return fmt.Sprintf(`Score this resume according to the rubric:

---RESUME START---
%s
---RESUME END---

Return only the JSON scores.`, resumeText)
}

// RewriteUserPrompt lists bullet points for the batched rewrite call.
func RewriteUserPrompt(bullets []string) string {
	var b strings.Builder
	b.WriteString("Please improve these resume bullet points:\n\n")
	for _, bullet := range bullets {
		b.WriteString("- ")
		b.WriteString(bullet)
		b.WriteString("\n")
	}
	b.WriteString("\nTransform each into an impactful, action-oriented statement.")
	return b.String()
}

// RewriteSingleUserPrompt wraps one piece of text with an optional context
// tag such as "summary" or "bullet point".
func RewriteSingleUserPrompt(text, context string) string {
	note := ""
	if context != "" {
		note = fmt.Sprintf(" (This is a %s)", context)
	}
	return fmt.Sprintf("Please improve this text%s:\n\n%s", note, text)
}
