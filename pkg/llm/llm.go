package llm

import (
	"context"
	"errors"
	"fmt"
)

// TextModel is a minimal abstraction for single-shot text generation used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type TextModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

var (
	ErrMissingAPIKey = errors.New("llm api key is empty")
	ErrNoCandidates  = errors.New("no candidates returned by model")
)

// UpstreamError carries a non-success status returned by the provider.
// Body is kept for server-side logs only.
type UpstreamError struct {
	Provider string
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s http %d", e.Provider, e.Status)
}
