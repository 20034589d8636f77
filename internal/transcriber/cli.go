package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/recording-qc/internal/config"
	"github.com/nguyentantai21042004/recording-qc/internal/logger"
	"github.com/nguyentantai21042004/recording-qc/pkg/executor"
)

// cliTranscriber runs the whisper.cpp binary once per file. The model is
// loaded from disk on every call.
type cliTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

func (t *cliTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	empty, err := isEmptyAudio(audioPath)
	if err != nil {
		return "", err
	}
	if empty {
		t.logger.Info(ctx, "Audio has no samples, skipping transcription: %s", audioPath)
		return "", nil
	}

	// Whisper appends .txt to the output prefix
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Starting transcription with %d threads: %s", t.cfg.Threads, audioPath)

	// -otxt: plain text output, -np: no progress prints on stdout
	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-of", outputPrefix,
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"-np",
	}
	if t.cfg.Prompt != "" {
		args = append(args, "--prompt", t.cfg.Prompt)
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	if err := os.Remove(txtPath); err != nil {
		t.logger.Warn(ctx, "Failed to cleanup transcript file %s: %v", txtPath, err)
	}

	text := normalizeTranscript(string(data))
	t.logger.Info(ctx, "Transcription completed: %d characters", len(text))
	return text, nil
}

func (t *cliTranscriber) Close() error {
	return nil
}
