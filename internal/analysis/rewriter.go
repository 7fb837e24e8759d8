package analysis

import (
	"context"

	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/shared/telemetry"
	"resume-analyzer/internal/textproc"
)

// Rewriter turns weak bullet points into improved phrasing via the gateway.
type Rewriter struct {
	Client llm.Client
}

type rewritePayload struct {
	Rewrites []struct {
		Original    string `json:"original"`
		Improved    string `json:"improved"`
		Explanation string `json:"explanation"`
	} `json:"rewrites"`
}

// RewriteBullets sends all bullets in one batched request. The model may
// omit bullets it judges already strong, so the result can be shorter than
// the input; callers match by Original, not position. Empty input returns
// empty output without a gateway call, and any failure returns an empty
// list for the orchestrator's fallback to handle.
func (r *Rewriter) RewriteBullets(ctx context.Context, bullets []string) []RewriteSuggestion {
	if len(bullets) == 0 {
		return nil
	}

	req := llm.Request{
		System:      llm.RewritePrompt,
		User:        llm.RewriteUserPrompt(bullets),
		Temperature: llm.TempGenerative,
	}

	var payload rewritePayload
	if err := llm.CompleteJSON(ctx, r.Client, req, &payload); err != nil {
		telemetry.Warn("rewriter.fallback", map[string]any{"err": err.Error(), "bullets": len(bullets)})
		return nil
	}

	suggestions := make([]RewriteSuggestion, 0, len(payload.Rewrites))
	for _, rw := range payload.Rewrites {
		suggestions = append(suggestions, RewriteSuggestion{
			Original:    rw.Original,
			Improved:    rw.Improved,
			Explanation: rw.Explanation,
		})
	}
	return suggestions
}

// RewriteSingle improves one piece of text with an optional context tag.
// Unlike the batched call it degrades per item: on failure the original
// text comes back unchanged with the reason in the explanation.
func (r *Rewriter) RewriteSingle(ctx context.Context, text, contextTag string) RewriteSuggestion {
	req := llm.Request{
		System:      llm.RewritePrompt,
		User:        llm.RewriteSingleUserPrompt(text, contextTag),
		Temperature: llm.TempGenerative,
	}

	var payload rewritePayload
	if err := llm.CompleteJSON(ctx, r.Client, req, &payload); err != nil {
		return RewriteSuggestion{
			Original:    text,
			Improved:    text,
			Explanation: "Rewrite failed: " + err.Error(),
		}
	}
	if len(payload.Rewrites) == 0 {
		return RewriteSuggestion{Original: text, Improved: text, Explanation: "No changes needed"}
	}

	first := payload.Rewrites[0]
	improved := first.Improved
	if improved == "" {
		improved = text
	}
	return RewriteSuggestion{Original: text, Improved: improved, Explanation: first.Explanation}
}

// ExtractAndRewrite pulls bullet candidates from the document and rewrites
// them. When the raw text has no recognizable bullets it retries on the
// experience-like section before giving up.
func (r *Rewriter) ExtractAndRewrite(ctx context.Context, doc Document, maxBullets int, actionVerbs []string) []RewriteSuggestion {
	bullets := textproc.ExtractBullets(doc.RawText, maxBullets, actionVerbs)

	if len(bullets) == 0 {
		if section, ok := sectionNamed(doc.Sections, "experience", "work", "employment"); ok {
			bullets = textproc.ExtractBullets(section.Content, maxBullets, actionVerbs)
		}
	}
	if len(bullets) == 0 {
		return nil
	}
	return r.RewriteBullets(ctx, bullets)
}
