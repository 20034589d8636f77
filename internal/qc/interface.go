package qc

import (
	"context"
	"errors"
)

// ErrEmptyModelResponse is returned when the model answers with no choices
// or no text.
var ErrEmptyModelResponse = errors.New("empty model response")

// Requester asks a hosted language model for a QC checklist comparing a
// lecture transcript with its slides.
type Requester interface {
	Check(ctx context.Context, transcript, slideText string) (string, error)
}
