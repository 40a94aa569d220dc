package health

import (
	"context"
	"errors"
	"fmt"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Describer is implemented by checkers that can say what they check,
// e.g. the model behind an LLM dependency.
type Describer interface {
	Detail() string
}

// Result is the outcome of one checker.
type Result struct {
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) ([]Result, error)
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

// Ready runs every checker and joins the failures.
func (s *service) Ready(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(s.checkers))
	var errs []error
	for _, ch := range s.checkers {
		r := Result{Name: ch.Name()}
		if d, ok := ch.(Describer); ok {
			r.Detail = d.Detail()
		}
		if err := ch.Check(ctx); err != nil {
			r.Error = err.Error()
			errs = append(errs, fmt.Errorf("%s: %w", ch.Name(), err))
		}
		results = append(results, r)
	}
	return results, errors.Join(errs...)
}
