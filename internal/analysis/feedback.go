package analysis

import (
	"context"

	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/shared/telemetry"
	"resume-analyzer/internal/textproc"
)

const quickSummaryTruncateLimit = 5000

// FeedbackGenerator produces per-section coaching feedback via the gateway.
type FeedbackGenerator struct {
	Client llm.Client
}

type feedbackPayload struct {
	OverallSummary string `json:"overall_summary"`
	Sections       []struct {
		SectionName     string   `json:"section_name"`
		ContentFound    *bool    `json:"content_found"`
		Strengths       []string `json:"strengths"`
		Improvements    []string `json:"improvements"`
		MissingElements []string `json:"missing_elements"`
	} `json:"sections"`
}

// Analyze returns per-section feedback plus a short overall summary. The
// prompt asks for at most three items per list, but longer lists from the
// model are accepted as-is. On failure the caller gets a single explanatory
// feedback entry and a user-safe summary, never an error.
func (g *FeedbackGenerator) Analyze(ctx context.Context, text string) ([]SectionFeedback, string) {
	req := llm.Request{
		System:      llm.FeedbackPrompt,
		User:        llm.FeedbackUserPrompt(textproc.Truncate(text, textproc.DefaultTruncateLimit)),
		Temperature: llm.TempGenerative,
	}

	var payload feedbackPayload
	if err := llm.CompleteJSON(ctx, g.Client, req, &payload); err != nil {
		telemetry.Warn("feedback.fallback", map[string]any{"err": err.Error()})
		return []SectionFeedback{{
			SectionName:  "Error",
			ContentFound: false,
			Improvements: []string{"Analysis failed: " + err.Error()},
		}}, "Unable to generate analysis. Please try again."
	}

	feedback := make([]SectionFeedback, 0, len(payload.Sections))
	for _, section := range payload.Sections {
		name := section.SectionName
		if name == "" {
			name = "Unknown"
		}
		contentFound := true
		if section.ContentFound != nil {
			contentFound = *section.ContentFound
		}
		feedback = append(feedback, SectionFeedback{
			SectionName:     name,
			ContentFound:    contentFound,
			Strengths:       section.Strengths,
			Improvements:    section.Improvements,
			MissingElements: section.MissingElements,
		})
	}
	return feedback, payload.OverallSummary
}

// QuickSummary asks for a one-paragraph overall impression in plain text.
func (g *FeedbackGenerator) QuickSummary(ctx context.Context, text string) string {
	req := llm.Request{
		System:      llm.QuickSummaryPrompt,
		User:        textproc.Truncate(text, quickSummaryTruncateLimit),
		Temperature: llm.TempGenerative,
	}
	summary, err := g.Client.Complete(ctx, req)
	if err != nil {
		return "Unable to generate summary: " + err.Error()
	}
	return summary
}
