package ask

import "errors"

// Query is a single user question. It lives for one request only.
type Query struct {
	Prompt string `json:"prompt"`
}

// Result is the answer relayed back to the caller.
type Result struct {
	Text  string
	Model string
}

// Errors returned by the use case. Handlers map them to HTTP statuses;
// upstream failures surface as *llm.UpstreamError.
var (
	ErrEmptyPrompt   = errors.New("prompt is required")
	ErrNotConfigured = errors.New("gemini api key not configured")
	ErrEmptyResponse = errors.New("no response from model")
)
