package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Convert extracts the audio track as 16kHz mono WAV, the format whisper expects.
func (c *implConverter) Convert(ctx context.Context, video io.Reader, ext, audioPath string) error {
	if ext == "" || !strings.HasPrefix(ext, ".") {
		ext = ".mp4"
	}

	inputPath, err := c.writeTempInput(video, filepath.Dir(audioPath), ext)
	if err != nil {
		return fmt.Errorf("stage upload: %w", err)
	}
	defer c.cleanupTempFile(ctx, inputPath)

	c.logger.Info(ctx, "Extracting audio: %s -> %s", filepath.Base(inputPath), audioPath)

	// -vn: drop video, -ac 1 -ar 16000: mono 16kHz, pcm_s16le: uncompressed WAV
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", inputPath,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		audioPath,
	}

	if _, err := c.executor.Execute(ctx, c.ffmpegPath, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	info, err := os.Stat(audioPath)
	if err != nil {
		return fmt.Errorf("%w: ffmpeg produced no output: %w", ErrConversionFailed, err)
	}

	c.logger.Info(ctx, "Audio extracted successfully: %s (%d bytes)", audioPath, info.Size())
	return nil
}

func (c *implConverter) writeTempInput(video io.Reader, dir, ext string) (string, error) {
	f, err := os.CreateTemp(dir, "upload-*"+ext)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, video); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return f.Name(), nil
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (c *implConverter) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		c.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		c.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
