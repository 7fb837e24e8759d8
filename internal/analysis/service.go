package analysis

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"resume-analyzer/internal/extract"
	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/textproc"
)

const (
	defaultMaxBullets     = 6
	fallbackLineMinLen    = 40
	fallbackMaxCandidates = 5
)

// ErrNoText signals an upload with no extractable text; the pipeline halts
// before any gateway call is made.
var ErrNoText = errors.New("no readable text in document")

// Service runs the full document-to-feedback pipeline. It keeps no state
// across analyses; a single instance serves concurrent requests.
type Service struct {
	Detector   *SectionDetector
	Scorer     *Scorer
	Feedback   *FeedbackGenerator
	Rewriter   *Rewriter
	Lexicon    Lexicon
	MaxBullets int
}

// NewService wires the pipeline components around one gateway client.
func NewService(client llm.Client, lex Lexicon) *Service {
	return &Service{
		Detector:   &SectionDetector{Client: client, Taxonomy: lex.SectionNames},
		Scorer:     &Scorer{Client: client},
		Feedback:   &FeedbackGenerator{Client: client},
		Rewriter:   &Rewriter{Client: client},
		Lexicon:    lex,
		MaxBullets: defaultMaxBullets,
	}
}

// Analyze extracts text from the upload and produces a complete Result.
// Extraction problems abort the run; gateway problems never do — each
// gateway-backed step substitutes its documented neutral default so the
// report renders whatever succeeded.
func (s *Service) Analyze(ctx context.Context, fileName string, data []byte) (*Result, error) {
	fileType, err := extract.TypeFromFileName(fileName)
	if err != nil {
		return nil, err
	}
	rawText, err := extract.Text(data, fileType)
	if err != nil {
		return nil, err
	}

	cleaned := textproc.Normalize(rawText)
	if cleaned == "" {
		return nil, ErrNoText
	}
	doc := NewDocument(cleaned, fileName, string(fileType))

	// Section detection, scoring, and feedback depend only on the cleaned
	// text and run concurrently. None of them returns an error.
	var (
		sections     []Section
		scores       ScoreResult
		explanations map[string]string
		feedback     []SectionFeedback
		summary      string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sections = s.Detector.Detect(gctx, cleaned)
		return nil
	})
	g.Go(func() error {
		scores, explanations = s.Scorer.Score(gctx, cleaned)
		return nil
	})
	g.Go(func() error {
		feedback, summary = s.Feedback.Analyze(gctx, cleaned)
		return nil
	})
	_ = g.Wait()
	doc.Sections = sections

	maxBullets := s.MaxBullets
	if maxBullets <= 0 {
		maxBullets = defaultMaxBullets
	}
	suggestions := s.Rewriter.ExtractAndRewrite(ctx, doc, maxBullets, s.Lexicon.ActionVerbs)
	if len(suggestions) == 0 {
		if candidates := fallbackCandidates(cleaned, s.Lexicon.BoilerplateMarkers); len(candidates) > 0 {
			suggestions = s.Rewriter.RewriteBullets(ctx, candidates)
		}
	}

	return &Result{
		Document:           doc,
		Scores:             scores,
		ScoreExplanations:  explanations,
		SectionFeedback:    feedback,
		RewriteSuggestions: suggestions,
		OverallSummary:     summary,
	}, nil
}

// QuickSummary extracts the document and returns the one-paragraph overall
// impression without running the full pipeline.
func (s *Service) QuickSummary(ctx context.Context, fileName string, data []byte) (string, error) {
	fileType, err := extract.TypeFromFileName(fileName)
	if err != nil {
		return "", err
	}
	rawText, err := extract.Text(data, fileType)
	if err != nil {
		return "", err
	}
	cleaned := textproc.Normalize(rawText)
	if cleaned == "" {
		return "", ErrNoText
	}
	return s.Feedback.QuickSummary(ctx, cleaned), nil
}

// fallbackCandidates picks substantial raw lines that look like work
// descriptions: longer than fallbackLineMinLen and free of contact or
// education boilerplate.
func fallbackCandidates(text string, markers []string) []string {
	var candidates []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= fallbackLineMinLen {
			continue
		}
		lower := strings.ToLower(line)
		boilerplate := false
		for _, marker := range markers {
			if strings.Contains(lower, marker) {
				boilerplate = true
				break
			}
		}
		if boilerplate {
			continue
		}
		candidates = append(candidates, line)
		if len(candidates) >= fallbackMaxCandidates {
			break
		}
	}
	return candidates
}
