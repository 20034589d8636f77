package media

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/recording-qc/internal/logger"
	"github.com/nguyentantai21042004/recording-qc/pkg/executor"
	"github.com/nguyentantai21042004/recording-qc/pkg/executor/executortest"
)

func newTestConverter(fake *executortest.Fake) Converter {
	return New("ffmpeg", fake, logger.NewWithWriter("error", io.Discard))
}

// writeOutput simulates ffmpeg by creating the last argument as a file.
func writeOutput(t *testing.T) func(string, []string) (string, error) {
	return func(name string, args []string) (string, error) {
		out := args[len(args)-1]
		if err := os.WriteFile(out, []byte("RIFF"), 0644); err != nil {
			t.Errorf("write fake output: %v", err)
		}
		return "", nil
	}
}

func inputArg(args []string) string {
	for i, a := range args {
		if a == "-i" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	audioPath := filepath.Join(dir, "audio.wav")

	var stagedInput string
	fake := &executortest.Fake{Run: func(name string, args []string) (string, error) {
		stagedInput = inputArg(args)
		data, err := os.ReadFile(stagedInput)
		if err != nil {
			t.Errorf("staged input not readable during conversion: %v", err)
		}
		if string(data) != "video-bytes" {
			t.Errorf("staged input = %q, want %q", data, "video-bytes")
		}
		return writeOutput(t)(name, args)
	}}

	err := newTestConverter(fake).Convert(context.Background(), strings.NewReader("video-bytes"), ".mp4", audioPath)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	calls := fake.Calls()
	if len(calls) != 1 || calls[0].Name != "ffmpeg" {
		t.Fatalf("Calls() = %+v, want one ffmpeg call", calls)
	}
	args := strings.Join(calls[0].Args, " ")
	for _, want := range []string{"-vn", "-ac 1", "-ar 16000", "-c:a pcm_s16le", audioPath} {
		if !strings.Contains(args, want) {
			t.Errorf("ffmpeg args %q missing %q", args, want)
		}
	}
	if !strings.HasSuffix(stagedInput, ".mp4") {
		t.Errorf("staged input = %q, want .mp4 suffix", stagedInput)
	}
	if _, err := os.Stat(stagedInput); !os.IsNotExist(err) {
		t.Errorf("staged input %s was not removed", stagedInput)
	}
}

func TestConvertFailure(t *testing.T) {
	dir := t.TempDir()
	audioPath := filepath.Join(dir, "audio.wav")

	fake := &executortest.Fake{Run: func(name string, args []string) (string, error) {
		return "", &executor.Error{Name: name, ExitCode: 1, Stderr: "Invalid data found when processing input", Err: errors.New("exit status 1")}
	}}

	err := newTestConverter(fake).Convert(context.Background(), strings.NewReader("not a video"), ".mp4", audioPath)
	if !errors.Is(err, ErrConversionFailed) {
		t.Fatalf("Convert() error = %v, want ErrConversionFailed", err)
	}
	if !strings.Contains(err.Error(), "Invalid data found") {
		t.Errorf("Convert() error = %q, want ffmpeg stderr included", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("run dir has %d leftover entries, want 0", len(entries))
	}
}

func TestConvertNoOutput(t *testing.T) {
	audioPath := filepath.Join(t.TempDir(), "audio.wav")
	fake := &executortest.Fake{}

	err := newTestConverter(fake).Convert(context.Background(), strings.NewReader("x"), ".mp4", audioPath)
	if !errors.Is(err, ErrConversionFailed) {
		t.Errorf("Convert() error = %v, want ErrConversionFailed", err)
	}
}

func TestConvertDefaultExtension(t *testing.T) {
	audioPath := filepath.Join(t.TempDir(), "audio.wav")

	var staged string
	fake := &executortest.Fake{Run: func(name string, args []string) (string, error) {
		staged = inputArg(args)
		return writeOutput(t)(name, args)
	}}

	if err := newTestConverter(fake).Convert(context.Background(), strings.NewReader("x"), "", audioPath); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if filepath.Ext(staged) != ".mp4" {
		t.Errorf("staged input = %q, want .mp4 extension", staged)
	}
}
