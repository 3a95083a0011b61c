package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the model produced no text (ex: blocked by safety filters).
var ErrEmptyResponse = errors.New("llm: empty response")

// Provider is a hosted text-generation endpoint: one prompt in, generated text out.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}
