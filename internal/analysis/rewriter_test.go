package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"resume-analyzer/internal/llm"
)

func TestRewriteBulletsEmptyInputSkipsGateway(t *testing.T) {
	client := &fakeClient{}
	r := &Rewriter{Client: client}

	if got := r.RewriteBullets(context.Background(), nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
	if client.callCount() != 0 {
		t.Fatalf("expected no gateway calls, got %d", client.callCount())
	}
}

func TestRewriteBulletsMatchesByOriginal(t *testing.T) {
	// The model omits the bullet it judged already strong.
	client := &fakeClient{
		rewriteJSON: `{"rewrites": [
			{"original": "helped with stuff",
			 "improved": "Assisted a cross-functional team in delivering quarterly releases",
			 "explanation": "Adds specificity"}
		]}`,
	}
	r := &Rewriter{Client: client}

	bullets := []string{"Led a team of 5 engineers", "helped with stuff"}
	got := r.RewriteBullets(context.Background(), bullets)

	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if got[0].Original != "helped with stuff" {
		t.Fatalf("Original = %q", got[0].Original)
	}

	calls := client.callsFor(llm.RewritePrompt)
	if len(calls) != 1 {
		t.Fatalf("got %d rewrite calls, want 1", len(calls))
	}
	for _, b := range bullets {
		if !strings.Contains(calls[0].User, b) {
			t.Fatalf("request should include bullet %q", b)
		}
	}
}

func TestRewriteBulletsFailureReturnsEmpty(t *testing.T) {
	client := &fakeClient{rewriteErr: errors.New("gateway down")}
	r := &Rewriter{Client: client}

	if got := r.RewriteBullets(context.Background(), []string{"a bullet"}); got != nil {
		t.Fatalf("expected nil on failure, got %+v", got)
	}
}

func TestRewriteSingle(t *testing.T) {
	tests := []struct {
		name            string
		client          *fakeClient
		wantImproved    string
		wantExplanation string
	}{
		{
			name: "success",
			client: &fakeClient{rewriteJSON: `{"rewrites": [
				{"original": "did things", "improved": "Delivered three features per sprint", "explanation": "Quantified"}
			]}`},
			wantImproved:    "Delivered three features per sprint",
			wantExplanation: "Quantified",
		},
		{
			name:            "empty rewrites list",
			client:          &fakeClient{rewriteJSON: `{"rewrites": []}`},
			wantImproved:    "did things",
			wantExplanation: "No changes needed",
		},
		{
			name:            "blank improved falls back to original",
			client:          &fakeClient{rewriteJSON: `{"rewrites": [{"original": "did things", "improved": "", "explanation": "n/a"}]}`},
			wantImproved:    "did things",
			wantExplanation: "n/a",
		},
		{
			name:            "gateway failure",
			client:          &fakeClient{rewriteErr: errors.New("timeout")},
			wantImproved:    "did things",
			wantExplanation: "Rewrite failed: timeout",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := &Rewriter{Client: tt.client}
			got := r.RewriteSingle(context.Background(), "did things", "experience")
			if got.Original != "did things" {
				t.Fatalf("Original = %q", got.Original)
			}
			if got.Improved != tt.wantImproved {
				t.Fatalf("Improved = %q, want %q", got.Improved, tt.wantImproved)
			}
			if got.Explanation != tt.wantExplanation {
				t.Fatalf("Explanation = %q, want %q", got.Explanation, tt.wantExplanation)
			}
		})
	}
}

func TestExtractAndRewriteFallsBackToExperienceSection(t *testing.T) {
	client := &fakeClient{
		rewriteJSON: `{"rewrites": [
			{"original": "Led migration of billing services to a new platform", "improved": "x", "explanation": "y"}
		]}`,
	}
	r := &Rewriter{Client: client}

	// The raw text has no bullets or verb-led lines; the experience section does.
	doc := NewDocument("Jane Doe\nSan Francisco", "resume.txt", "txt")
	doc.Sections = []Section{
		{Name: "experience", Content: "- Led migration of billing services to a new platform"},
	}

	got := r.ExtractAndRewrite(context.Background(), doc, 6, DefaultLexicon().ActionVerbs)
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}

	calls := client.callsFor(llm.RewritePrompt)
	if len(calls) != 1 {
		t.Fatalf("got %d rewrite calls, want 1", len(calls))
	}
	if !strings.Contains(calls[0].User, "Led migration of billing services") {
		t.Fatal("request should carry the section bullet")
	}
}

func TestExtractAndRewriteNoBulletsAnywhere(t *testing.T) {
	client := &fakeClient{}
	r := &Rewriter{Client: client}

	doc := NewDocument("Jane Doe", "resume.txt", "txt")
	if got := r.ExtractAndRewrite(context.Background(), doc, 6, DefaultLexicon().ActionVerbs); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
	if client.callCount() != 0 {
		t.Fatalf("expected no gateway calls, got %d", client.callCount())
	}
}
