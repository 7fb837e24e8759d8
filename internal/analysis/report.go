package analysis

import (
	"fmt"
	"strings"
)

// Views are the rendered outputs of one analysis: four markdown panels for
// interactive display plus the canonical plain-text report used for
// export. Pure formatting over the Result; no failure mode.
type Views struct {
	Summary         string `json:"summary"`
	Scores          string `json:"scores"`
	Feedback        string `json:"feedback"`
	Rewrites        string `json:"rewrites"`
	PlainTextReport string `json:"plainTextReport"`
}

const noRewritesMessage = "No bullet points found to improve. Try adding more content to your experience section."

// RenderViews assembles every rendering from the result.
func RenderViews(res *Result) Views {
	return Views{
		Summary:         renderSummary(res),
		Scores:          renderScores(res.Scores, res.ScoreExplanations),
		Feedback:        renderFeedback(res.SectionFeedback),
		Rewrites:        renderRewrites(res.RewriteSuggestions),
		PlainTextReport: renderReport(res),
	}
}

func renderSummary(res *Result) string {
	var b strings.Builder
	b.WriteString("## Resume Analysis Complete\n\n")
	fmt.Fprintf(&b, "**File:** %s  \n", res.Document.FileName)
	fmt.Fprintf(&b, "**Word Count:** %d words  \n", res.Document.WordCount)
	fmt.Fprintf(&b, "**Sections Detected:** %d\n", len(res.Document.Sections))
	if res.OverallSummary != "" {
		b.WriteString("\n---\n\n### Overview\n\n")
		b.WriteString(res.OverallSummary)
		b.WriteString("\n")
	}
	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "**Overall Grade: %s** (%.1f/10)\n", res.Scores.Grade(), res.Scores.Overall())
	return b.String()
}

func renderScores(scores ScoreResult, explanations map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Overall Score: %.1f/10** (%s)\n\n", scores.Overall(), scores.Grade())
	b.WriteString("**Breakdown:**\n")
	fmt.Fprintf(&b, "%s Clarity: %s\n", scoreLevel(scores.Clarity), scoreBar(scores.Clarity))
	fmt.Fprintf(&b, "%s Impact: %s\n", scoreLevel(scores.Impact), scoreBar(scores.Impact))
	fmt.Fprintf(&b, "%s Relevance: %s\n", scoreLevel(scores.Relevance), scoreBar(scores.Relevance))
	fmt.Fprintf(&b, "%s Completeness: %s\n", scoreLevel(scores.Completeness), scoreBar(scores.Completeness))
	fmt.Fprintf(&b, "%s ATS Score: %s\n", scoreLevel(scores.ATSScore), scoreBar(scores.ATSScore))

	if len(explanations) > 0 {
		b.WriteString("\n**Score Details:**\n")
		for _, name := range criteriaOrder {
			if explanation, ok := explanations[name]; ok && explanation != "" {
				fmt.Fprintf(&b, "- **%s**: %s\n", displayName(name), explanation)
			}
		}
	}
	return b.String()
}

// scoreLevel maps a score to its traffic-light indicator.
func scoreLevel(score int) string {
	switch {
	case score >= 8:
		return "🟢"
	case score >= 6:
		return "🟡"
	case score >= 4:
		return "🟠"
	default:
		return "🔴"
	}
}

// scoreBar draws a fixed-width visual bar like "[████████░░] 8/10" scaled
// over 20 characters.
func scoreBar(score int) string {
	const barLength = 20
	filled := score * barLength / 10
	if filled < 0 {
		filled = 0
	}
	if filled > barLength {
		filled = barLength
	}
	return fmt.Sprintf("[%s%s] %d/10", strings.Repeat("█", filled), strings.Repeat("░", barLength-filled), score)
}

func renderFeedback(feedback []SectionFeedback) string {
	var b strings.Builder
	b.WriteString("## Section-by-Section Feedback\n")
	for _, fb := range feedback {
		fmt.Fprintf(&b, "\n### %s\n", displayName(fb.SectionName))
		if len(fb.Strengths) > 0 {
			b.WriteString("\n**Strengths:**\n")
			for _, s := range fb.Strengths {
				fmt.Fprintf(&b, "- %s\n", s)
			}
		}
		if len(fb.Improvements) > 0 {
			b.WriteString("\n**Areas for Improvement:**\n")
			for _, i := range fb.Improvements {
				fmt.Fprintf(&b, "- %s\n", i)
			}
		}
		if len(fb.MissingElements) > 0 {
			b.WriteString("\n**Consider Adding:**\n")
			for _, m := range fb.MissingElements {
				fmt.Fprintf(&b, "- %s\n", m)
			}
		}
		b.WriteString("\n---\n")
	}
	return b.String()
}

func renderRewrites(suggestions []RewriteSuggestion) string {
	if len(suggestions) == 0 {
		return noRewritesMessage
	}

	var b strings.Builder
	b.WriteString("## Improved Bullet Points\n")
	for i, s := range suggestions {
		fmt.Fprintf(&b, "\n### %d. Improvement\n\n", i+1)
		b.WriteString("**Original:**\n")
		fmt.Fprintf(&b, "> %s\n\n", s.Original)
		b.WriteString("**Improved:**\n")
		fmt.Fprintf(&b, "> %s\n\n", s.Improved)
		fmt.Fprintf(&b, "*%s*\n\n---\n", s.Explanation)
	}
	return b.String()
}

// renderReport builds the canonical plain-text report: every score, every
// section's feedback, and every rewrite with its explanation, in the order
// held in the result.
func renderReport(res *Result) string {
	heavy := strings.Repeat("=", 60)
	light := strings.Repeat("-", 40)

	var lines []string
	lines = append(lines,
		heavy,
		"RESUME ANALYSIS REPORT",
		heavy,
		"",
		"File: "+res.Document.FileName,
		fmt.Sprintf("Word Count: %d", res.Document.WordCount),
		"",
		light,
		"SCORES",
		light,
		fmt.Sprintf("  Overall: %.1f/10 (%s)", res.Scores.Overall(), res.Scores.Grade()),
		fmt.Sprintf("  - Clarity:      %d/10", res.Scores.Clarity),
		fmt.Sprintf("  - Impact:       %d/10", res.Scores.Impact),
		fmt.Sprintf("  - Relevance:    %d/10", res.Scores.Relevance),
		fmt.Sprintf("  - Completeness: %d/10", res.Scores.Completeness),
		fmt.Sprintf("  - ATS Score:    %d/10", res.Scores.ATSScore),
	)

	if res.OverallSummary != "" {
		lines = append(lines, "", light, "SUMMARY", light, res.OverallSummary)
	}

	if len(res.SectionFeedback) > 0 {
		lines = append(lines, "", light, "SECTION FEEDBACK", light)
		for _, fb := range res.SectionFeedback {
			lines = append(lines, "", "* "+strings.ToUpper(fb.SectionName))
			if len(fb.Strengths) > 0 {
				lines = append(lines, "  Strengths:")
				for _, s := range fb.Strengths {
					lines = append(lines, "     - "+s)
				}
			}
			if len(fb.Improvements) > 0 {
				lines = append(lines, "  Improvements:")
				for _, i := range fb.Improvements {
					lines = append(lines, "     - "+i)
				}
			}
			if len(fb.MissingElements) > 0 {
				lines = append(lines, "  Missing:")
				for _, m := range fb.MissingElements {
					lines = append(lines, "     - "+m)
				}
			}
		}
	}

	if len(res.RewriteSuggestions) > 0 {
		lines = append(lines, "", light, "REWRITE SUGGESTIONS", light)
		for i, rw := range res.RewriteSuggestions {
			lines = append(lines,
				"",
				fmt.Sprintf("%d. Original:", i+1),
				fmt.Sprintf("   %q", rw.Original),
				"   Improved:",
				fmt.Sprintf("   %q", rw.Improved),
				"   Why: "+rw.Explanation,
			)
		}
	}

	lines = append(lines, "", heavy)
	return strings.Join(lines, "\n")
}

// displayName turns a taxonomy key like "ats_score" into "Ats Score".
func displayName(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
