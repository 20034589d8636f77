package media

import (
	"context"
	"errors"
	"io"
)

// ErrConversionFailed is returned when ffmpeg is missing, exits non-zero or
// produces no audio file.
var ErrConversionFailed = errors.New("conversion failed")

// Converter turns an uploaded video stream into a mono WAV file
type Converter interface {
	// Convert writes video to a scoped temp file next to audioPath, converts it
	// to 16kHz mono PCM at audioPath and removes the temp file.
	Convert(ctx context.Context, video io.Reader, ext, audioPath string) error
}
