package llmclient

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when a provider answers without usable text.
var ErrEmptyResponse = errors.New("llmclient: empty response from model")

// TextClient defines the interface for generative model providers. Two calls
// with the same prompt may yield different text; callers must not assume
// determinism.
type TextClient interface {
	Name() string
	Close() error
	GenerateText(ctx context.Context, system, user string) (string, error)
}

// PermanentError indicates a provider error that will not resolve with
// retries, such as an over-long prompt.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}
