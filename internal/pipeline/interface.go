package pipeline

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrMissingInput is returned when the video or the slide deck is absent.
var ErrMissingInput = errors.New("both a video and a slide deck are required")

// Input is one user-triggered QC request.
type Input struct {
	Video      io.Reader
	VideoName  string // used only for its extension
	Slides     io.ReaderAt
	SlidesSize int64
}

// Result carries every intermediate artifact of a successful run.
type Result struct {
	RunID      string
	Transcript string
	SlideText  string
	Report     string
	Duration   time.Duration
}

// Pipeline runs convert -> transcribe -> extract slides -> quality check
type Pipeline interface {
	Run(ctx context.Context, in Input) (*Result, error)
}
