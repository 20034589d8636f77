package transcriber

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/recording-qc/internal/logger"
)

// serverTranscriber talks to a whisper.cpp whisper-server that keeps the
// model loaded between runs.
type serverTranscriber struct {
	baseURL    string
	language   string
	prompt     string
	httpClient *http.Client
	logger     logger.Logger
}

func (t *serverTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	empty, err := isEmptyAudio(audioPath)
	if err != nil {
		return "", err
	}
	if empty {
		t.logger.Info(ctx, "Audio has no samples, skipping transcription: %s", audioPath)
		return "", nil
	}

	body, contentType, err := t.buildForm(audioPath)
	if err != nil {
		return "", err
	}

	url := t.baseURL + "/inference"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	t.logger.Info(ctx, "Sending audio to whisper server %s: %s", url, audioPath)

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("whisper server request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("whisper server error (status %d): %s", resp.StatusCode, string(data))
	}

	text := normalizeTranscript(string(data))
	t.logger.Info(ctx, "Transcription completed: %d characters", len(text))
	return text, nil
}

func (t *serverTranscriber) buildForm(audioPath string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	audioFile, err := os.Open(audioPath)
	if err != nil {
		return nil, "", fmt.Errorf("open audio: %w", err)
	}
	defer audioFile.Close()

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, audioFile); err != nil {
		return nil, "", fmt.Errorf("copy audio data: %w", err)
	}

	writer.WriteField("response_format", "text")
	writer.WriteField("temperature", "0.0")
	if t.language != "" && t.language != "auto" {
		writer.WriteField("language", t.language)
	}
	if t.prompt != "" {
		writer.WriteField("prompt", t.prompt)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

func (t *serverTranscriber) Close() error {
	t.httpClient.CloseIdleConnections()
	return nil
}
