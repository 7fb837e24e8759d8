package analysis

import (
	"context"
	"math"
	"sort"

	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/shared/telemetry"
	"resume-analyzer/internal/textproc"
)

// Scorer evaluates resume text on five rubric criteria via the model
// gateway. It holds no per-call state and is safe for concurrent use.
type Scorer struct {
	Client llm.Client
}

// Pointer fields distinguish "missing" (neutral 5) from an explicit zero.
type scorePayload struct {
	Clarity           *float64          `json:"clarity"`
	Impact            *float64          `json:"impact"`
	Relevance         *float64          `json:"relevance"`
	Completeness      *float64          `json:"completeness"`
	ATSScore          *float64          `json:"ats_score"`
	ScoreExplanations map[string]string `json:"score_explanations"`
}

// Score returns the clamped criteria scores and the per-criterion
// explanations the model provided. Any gateway or parse failure yields the
// neutral all-5 result; the pipeline never crashes on a failed score.
func (s *Scorer) Score(ctx context.Context, text string) (ScoreResult, map[string]string) {
	req := llm.Request{
		System:      llm.ScoringPrompt,
		User:        llm.ScoringUserPrompt(textproc.Truncate(text, textproc.DefaultTruncateLimit)),
		Temperature: llm.TempDeterministic,
	}

	var payload scorePayload
	if err := llm.CompleteJSON(ctx, s.Client, req, &payload); err != nil {
		telemetry.Warn("scorer.fallback", map[string]any{"err": err.Error()})
		return neutralScores(), nil
	}

	return ScoreResult{
		Clarity:      clampScore(payload.Clarity),
		Impact:       clampScore(payload.Impact),
		Relevance:    clampScore(payload.Relevance),
		Completeness: clampScore(payload.Completeness),
		ATSScore:     clampScore(payload.ATSScore),
	}, payload.ScoreExplanations
}

func neutralScores() ScoreResult {
	return ScoreResult{Clarity: 5, Impact: 5, Relevance: 5, Completeness: 5, ATSScore: 5}
}

func clampScore(v *float64) int {
	if v == nil {
		return 5
	}
	rounded := int(math.Round(*v))
	if rounded < 1 {
		return 1
	}
	if rounded > 10 {
		return 10
	}
	return rounded
}

// ImprovementPriority sorts criteria ascending by score so the weakest
// areas come first. Ties keep the criteria declaration order.
func ImprovementPriority(scores ScoreResult) []string {
	byName := scores.byCriterion()
	ordered := make([]string, len(criteriaOrder))
	copy(ordered, criteriaOrder)
	sort.SliceStable(ordered, func(i, j int) bool {
		return byName[ordered[i]] < byName[ordered[j]]
	})
	return ordered
}
