package analysis

import (
	"os"
	"testing"
)

func TestOverallWeightedScore(t *testing.T) {
	tests := []struct {
		name   string
		scores ScoreResult
		want   float64
	}{
		{name: "all fives", scores: ScoreResult{Clarity: 5, Impact: 5, Relevance: 5, Completeness: 5, ATSScore: 5}, want: 5.0},
		{name: "all tens", scores: ScoreResult{Clarity: 10, Impact: 10, Relevance: 10, Completeness: 10, ATSScore: 10}, want: 10.0},
		{name: "clamped mix", scores: ScoreResult{Clarity: 10, Impact: 1, Relevance: 8, Completeness: 5, ATSScore: 5}, want: 5.6},
		{name: "impact weighted heaviest", scores: ScoreResult{Clarity: 5, Impact: 10, Relevance: 5, Completeness: 5, ATSScore: 5}, want: 6.3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scores.Overall(); got != tt.want {
				t.Fatalf("Overall() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGradeThresholds(t *testing.T) {
	tests := []struct {
		name   string
		scores ScoreResult
		want   string
	}{
		{name: "exactly 9 is A+", scores: ScoreResult{Clarity: 9, Impact: 9, Relevance: 9, Completeness: 9, ATSScore: 9}, want: "A+"},
		{name: "8.9 is A", scores: ScoreResult{Clarity: 9, Impact: 9, Relevance: 9, Completeness: 8, ATSScore: 9}, want: "A"},
		{name: "7s are B", scores: ScoreResult{Clarity: 7, Impact: 7, Relevance: 7, Completeness: 7, ATSScore: 7}, want: "B"},
		{name: "6s are C", scores: ScoreResult{Clarity: 6, Impact: 6, Relevance: 6, Completeness: 6, ATSScore: 6}, want: "C"},
		{name: "neutral is D", scores: ScoreResult{Clarity: 5, Impact: 5, Relevance: 5, Completeness: 5, ATSScore: 5}, want: "D"},
		{name: "low is F", scores: ScoreResult{Clarity: 2, Impact: 2, Relevance: 2, Completeness: 2, ATSScore: 2}, want: "F"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scores.Grade(); got != tt.want {
				t.Fatalf("Grade() = %q (overall %v), want %q", got, tt.scores.Overall(), tt.want)
			}
		})
	}
}

func TestNewDocumentWordCount(t *testing.T) {
	doc := NewDocument("one two three\nfour", "resume.txt", "txt")
	if doc.WordCount != 4 {
		t.Fatalf("WordCount = %d, want 4", doc.WordCount)
	}
	if len(doc.Sections) != 0 {
		t.Fatalf("expected no sections at construction, got %d", len(doc.Sections))
	}
}

func TestLoadLexiconDefaults(t *testing.T) {
	lex, err := LoadLexicon("")
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}
	if len(lex.SectionNames) != 7 {
		t.Fatalf("expected 7 section names, got %d", len(lex.SectionNames))
	}
	if lex.SectionNames[0] != "contact" || lex.SectionNames[6] != "other" {
		t.Fatalf("unexpected taxonomy order: %v", lex.SectionNames)
	}
	if len(lex.ActionVerbs) == 0 || len(lex.BoilerplateMarkers) == 0 {
		t.Fatal("expected non-empty verb and marker lists")
	}
}

func TestLoadLexiconOverride(t *testing.T) {
	path := t.TempDir() + "/lexicon.json"
	if err := os.WriteFile(path, []byte(`{"actionVerbs": ["shipped"]}`), 0o600); err != nil {
		t.Fatalf("write lexicon: %v", err)
	}

	lex, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}
	if len(lex.ActionVerbs) != 1 || lex.ActionVerbs[0] != "shipped" {
		t.Fatalf("override not applied: %v", lex.ActionVerbs)
	}
	// Untouched fields keep their defaults.
	if len(lex.SectionNames) != 7 {
		t.Fatalf("section names should keep defaults, got %v", lex.SectionNames)
	}
}
