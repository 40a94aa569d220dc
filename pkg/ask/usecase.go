package ask

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/artem13815/askgemini/pkg/llm"
)

// Instruction is prepended to every prompt so answers stay within the
// formatting subset the front end can render.
const Instruction = "Please answer the following question in maximum 600 words. " +
	"Use only these formatting rules: **text** for bold, *text* for italic, " +
	"numbered lists as 1) 2) 3), and regular paragraphs. " +
	"Do not use any other formatting like bullet points, HTML tags, or code blocks:\n\n"

// UseCase relays a question to the language model.
type UseCase interface {
	Ask(ctx context.Context, q Query) (Result, error)
}

type service struct {
	model      llm.TextModel
	configured bool
}

// NewService creates the default implementation. configured reports whether an
// API credential is present; without it Ask fails before any outbound call.
func NewService(model llm.TextModel, configured bool) UseCase {
	return &service{model: model, configured: configured}
}

// BuildPrompt wraps the user's question in the fixed instruction preamble.
func BuildPrompt(prompt string) string {
	return Instruction + prompt
}

func (s *service) Ask(ctx context.Context, q Query) (Result, error) {
	if strings.TrimSpace(q.Prompt) == "" {
		return Result{}, ErrEmptyPrompt
	}
	if !s.configured || s.model == nil {
		return Result{}, ErrNotConfigured
	}
	text, err := s.model.Generate(ctx, BuildPrompt(q.Prompt))
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrNoCandidates):
			return Result{}, ErrEmptyResponse
		case errors.Is(err, llm.ErrMissingAPIKey):
			return Result{}, ErrNotConfigured
		}
		return Result{}, fmt.Errorf("generate: %w", err)
	}
	return Result{Text: text, Model: s.model.Model()}, nil
}
