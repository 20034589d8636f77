package transcriber

import (
	"fmt"
	"os"
	"strings"
)

// wavHeaderSize is the size of a canonical RIFF/WAVE header with no samples.
const wavHeaderSize = 44

// isEmptyAudio reports whether the file carries no audio samples at all.
func isEmptyAudio(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat audio: %w", err)
	}
	return info.Size() <= wavHeaderSize, nil
}

// normalizeTranscript joins whisper's per-segment lines into one string.
func normalizeTranscript(raw string) string {
	lines := strings.Split(raw, "\n")
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
