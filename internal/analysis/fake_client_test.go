package analysis

import (
	"context"
	"sync"

	"resume-analyzer/internal/llm"
)

// fakeClient scripts gateway replies per instruction template and records
// every request it sees.
type fakeClient struct {
	mu    sync.Mutex
	calls []llm.Request

	sectionsJSON string
	scoresJSON   string
	feedbackJSON string
	rewriteJSON  string
	summaryText  string

	sectionsErr error
	scoresErr   error
	feedbackErr error
	rewriteErr  error
	summaryErr  error
}

func (f *fakeClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	switch req.System {
	case llm.SectionDetectionPrompt:
		return f.sectionsJSON, f.sectionsErr
	case llm.ScoringPrompt:
		return f.scoresJSON, f.scoresErr
	case llm.FeedbackPrompt:
		return f.feedbackJSON, f.feedbackErr
	case llm.RewritePrompt:
		return f.rewriteJSON, f.rewriteErr
	case llm.QuickSummaryPrompt:
		return f.summaryText, f.summaryErr
	}
	return "", nil
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeClient) callsFor(system string) []llm.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []llm.Request
	for _, call := range f.calls {
		if call.System == system {
			out = append(out, call)
		}
	}
	return out
}
