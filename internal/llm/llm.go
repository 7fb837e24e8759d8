package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Temperatures used across the pipeline: low for extraction-like tasks,
// higher for generative ones.
const (
	TempDeterministic float32 = 0.3
	TempGenerative    float32 = 0.7
)

// Request describes one completion call to the external model service.
type Request struct {
	System       string
	User         string
	JSONResponse bool
	Temperature  float32
}

// Client is the single integration seam to the external reasoning service.
// Implementations must be safe for use across concurrent analyses.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ErrMalformed marks a reply that was requested as structured JSON but did
// not parse as such.
var ErrMalformed = errors.New("malformed model response")

// CompleteJSON performs a structured request and decodes the JSON reply into
// out. Every structured call in the pipeline goes through here so the
// parse-or-fail contract lives in one place.
func CompleteJSON[T any](ctx context.Context, client Client, req Request, out *T) error {
	req.JSONResponse = true
	raw, err := client.Complete(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
