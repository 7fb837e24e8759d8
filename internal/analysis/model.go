package analysis

import (
	"math"

	"resume-analyzer/internal/textproc"
)

// Document is a parsed upload. WordCount is derived once at construction;
// Sections start empty and are populated exactly once by section detection.
type Document struct {
	RawText   string    `json:"-"`
	FileName  string    `json:"fileName"`
	FileType  string    `json:"fileType"`
	Sections  []Section `json:"sections"`
	WordCount int       `json:"wordCount"`
}

// NewDocument builds a Document from normalized text.
func NewDocument(rawText, fileName, fileType string) Document {
	return Document{
		RawText:   rawText,
		FileName:  fileName,
		FileType:  fileType,
		WordCount: textproc.WordCount(rawText),
	}
}

// Section is a named excerpt of the document. Indices are informational and
// may remain zero. Immutable once created.
type Section struct {
	Name       string `json:"name"`
	Content    string `json:"content"`
	StartIndex int    `json:"startIndex"`
	EndIndex   int    `json:"endIndex"`
}

// ScoreResult holds the five criteria scores, each clamped to [1,10].
// Overall and Grade are always recomputed from the stored scores.
type ScoreResult struct {
	Clarity      int `json:"clarity"`
	Impact       int `json:"impact"`
	Relevance    int `json:"relevance"`
	Completeness int `json:"completeness"`
	ATSScore     int `json:"atsScore"`
}

// Criteria names in declaration order; also the tie-break order for
// improvement priority.
var criteriaOrder = []string{"clarity", "impact", "relevance", "completeness", "ats_score"}

func (s ScoreResult) byCriterion() map[string]int {
	return map[string]int{
		"clarity":      s.Clarity,
		"impact":       s.Impact,
		"relevance":    s.Relevance,
		"completeness": s.Completeness,
		"ats_score":    s.ATSScore,
	}
}

// Overall is the weighted mean of the five scores, rounded to one decimal.
func (s ScoreResult) Overall() float64 {
	weighted := 0.20*float64(s.Clarity) +
		0.25*float64(s.Impact) +
		0.20*float64(s.Relevance) +
		0.15*float64(s.Completeness) +
		0.20*float64(s.ATSScore)
	return math.Round(weighted*10) / 10
}

// Grade maps the overall score to a letter grade.
func (s ScoreResult) Grade() string {
	switch overall := s.Overall(); {
	case overall >= 9:
		return "A+"
	case overall >= 8:
		return "A"
	case overall >= 7:
		return "B"
	case overall >= 6:
		return "C"
	case overall >= 5:
		return "D"
	default:
		return "F"
	}
}

// SectionFeedback carries coaching notes for one section.
type SectionFeedback struct {
	SectionName     string   `json:"sectionName"`
	ContentFound    bool     `json:"contentFound"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	MissingElements []string `json:"missingElements"`
}

// RewriteSuggestion is one improved phrasing with its rationale. Improved
// may equal Original when no change was warranted.
type RewriteSuggestion struct {
	Original    string `json:"original"`
	Improved    string `json:"improved"`
	Explanation string `json:"explanation"`
}

// Result aggregates everything one analysis run produced. It is built once
// and never persisted; the report views render exclusively from it.
type Result struct {
	Document           Document            `json:"document"`
	Scores             ScoreResult         `json:"scores"`
	ScoreExplanations  map[string]string   `json:"scoreExplanations,omitempty"`
	SectionFeedback    []SectionFeedback   `json:"sectionFeedback"`
	RewriteSuggestions []RewriteSuggestion `json:"rewriteSuggestions"`
	OverallSummary     string              `json:"overallSummary"`
}
