package transcriber

import "context"

// Transcriber turns a WAV file into plain text using a local whisper model
type Transcriber interface {
	// Transcribe returns the spoken text of the audio file. Silent or empty
	// audio yields "" and no error.
	Transcribe(ctx context.Context, audioPath string) (string, error)
	// Close releases engine resources held for the life of the process.
	Close() error
}
