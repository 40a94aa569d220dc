package checkers

import "context"

// Pinger is the part of the Gemini client the checker needs.
type Pinger interface {
	Ping(ctx context.Context) error
	Model() string
}

// GeminiChecker reports ready when the Gemini API accepts the key and knows the model.
type GeminiChecker struct {
	client Pinger
}

func NewGeminiChecker(client Pinger) *GeminiChecker {
	return &GeminiChecker{client: client}
}

func (c *GeminiChecker) Name() string { return "gemini" }

func (c *GeminiChecker) Detail() string { return c.client.Model() }

func (c *GeminiChecker) Check(ctx context.Context) error {
	return c.client.Ping(ctx)
}
