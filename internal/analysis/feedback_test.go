package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"resume-analyzer/internal/llm"
)

func TestFeedbackAnalyzeParsesSections(t *testing.T) {
	client := &fakeClient{
		feedbackJSON: `{
			"overall_summary": "Solid resume with room to quantify impact.",
			"sections": [
				{"section_name": "Experience", "content_found": true,
				 "strengths": ["strong verbs"], "improvements": ["add metrics"],
				 "missing_elements": ["dates"]},
				{"section_name": "Education", "content_found": false,
				 "improvements": ["add your degree"]}
			]
		}`,
	}
	gen := &FeedbackGenerator{Client: client}

	feedback, summary := gen.Analyze(context.Background(), "resume text")

	if summary != "Solid resume with room to quantify impact." {
		t.Fatalf("summary = %q", summary)
	}
	if len(feedback) != 2 {
		t.Fatalf("got %d feedback entries, want 2", len(feedback))
	}
	if feedback[0].SectionName != "Experience" || !feedback[0].ContentFound {
		t.Fatalf("first entry = %+v", feedback[0])
	}
	if feedback[1].ContentFound {
		t.Fatal("content_found false should survive parsing")
	}
}

func TestFeedbackDefaultsApplied(t *testing.T) {
	client := &fakeClient{
		feedbackJSON: `{"sections": [
			{"strengths": ["s1", "s2", "s3", "s4"]}
		]}`,
	}
	gen := &FeedbackGenerator{Client: client}

	feedback, _ := gen.Analyze(context.Background(), "text")

	if len(feedback) != 1 {
		t.Fatalf("got %d entries, want 1", len(feedback))
	}
	entry := feedback[0]
	if entry.SectionName != "Unknown" {
		t.Fatalf("missing name should default to Unknown, got %q", entry.SectionName)
	}
	if !entry.ContentFound {
		t.Fatal("missing content_found should default to true")
	}
	// The prompt asks for at most three items but longer lists are kept.
	if len(entry.Strengths) != 4 {
		t.Fatalf("got %d strengths, want 4", len(entry.Strengths))
	}
}

func TestFeedbackFailureShape(t *testing.T) {
	client := &fakeClient{feedbackErr: errors.New("rate limited")}
	gen := &FeedbackGenerator{Client: client}

	feedback, summary := gen.Analyze(context.Background(), "text")

	if summary != "Unable to generate analysis. Please try again." {
		t.Fatalf("summary = %q", summary)
	}
	if len(feedback) != 1 {
		t.Fatalf("got %d entries, want 1", len(feedback))
	}
	entry := feedback[0]
	if entry.SectionName != "Error" || entry.ContentFound {
		t.Fatalf("error entry = %+v", entry)
	}
	if len(entry.Improvements) != 1 || !strings.Contains(entry.Improvements[0], "rate limited") {
		t.Fatalf("improvements should carry the failure reason: %v", entry.Improvements)
	}
}

func TestQuickSummary(t *testing.T) {
	client := &fakeClient{summaryText: "A focused two-page resume."}
	gen := &FeedbackGenerator{Client: client}

	if got := gen.QuickSummary(context.Background(), "text"); got != "A focused two-page resume." {
		t.Fatalf("QuickSummary = %q", got)
	}

	calls := client.callsFor(llm.QuickSummaryPrompt)
	if len(calls) != 1 {
		t.Fatalf("got %d summary calls, want 1", len(calls))
	}
	if calls[0].JSONResponse {
		t.Fatal("quick summary should be a plain-text completion")
	}
}

func TestQuickSummaryFailure(t *testing.T) {
	client := &fakeClient{summaryErr: errors.New("boom")}
	gen := &FeedbackGenerator{Client: client}

	got := gen.QuickSummary(context.Background(), "text")
	if !strings.HasPrefix(got, "Unable to generate summary:") {
		t.Fatalf("QuickSummary = %q", got)
	}
}
