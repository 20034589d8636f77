package watcher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/recording-qc/internal/logger"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestMatchPair(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "week1.mp4"))
	touch(t, filepath.Join(dir, "week1.pptx"))
	touch(t, filepath.Join(dir, "week2.MOV"))
	touch(t, filepath.Join(dir, "week2.PPTX"))
	touch(t, filepath.Join(dir, "lonely.mp4"))
	touch(t, filepath.Join(dir, "notes.txt"))

	tests := []struct {
		name       string
		path       string
		wantVideo  string
		wantSlides string
		wantOK     bool
	}{
		{"video with deck", "week1.mp4", "week1.mp4", "week1.pptx", true},
		{"deck with video", "week1.pptx", "week1.mp4", "week1.pptx", true},
		{"upper case extensions", "week2.MOV", "week2.MOV", "week2.PPTX", true},
		{"video without deck", "lonely.mp4", "", "", false},
		{"unrelated file", "notes.txt", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video, slides, ok := matchPair(filepath.Join(dir, tt.path))
			if ok != tt.wantOK {
				t.Fatalf("matchPair() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if video != filepath.Join(dir, tt.wantVideo) {
				t.Errorf("video = %v, want %v", video, tt.wantVideo)
			}
			if slides != filepath.Join(dir, tt.wantSlides) {
				t.Errorf("slides = %v, want %v", slides, tt.wantSlides)
			}
		})
	}
}

func TestWatcherHandlesPairOnce(t *testing.T) {
	dir := t.TempDir()

	type pair struct{ video, slides string }
	got := make(chan pair, 4)

	w, err := New(dir, func(ctx context.Context, video, slides string) error {
		got <- pair{video, slides}
		return nil
	}, logger.NewWithWriter("error", io.Discard))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()
	w.(*implWatcher).settle = 0

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	touch(t, filepath.Join(dir, "lecture.pptx"))
	touch(t, filepath.Join(dir, "lecture.mp4"))

	select {
	case p := <-got:
		if p.video != filepath.Join(dir, "lecture.mp4") || p.slides != filepath.Join(dir, "lecture.pptx") {
			t.Errorf("handler got %+v", p)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	// Re-touching an existing file does not trigger a second check.
	touch(t, filepath.Join(dir, "lecture.mp4"))
	select {
	case p := <-got:
		t.Errorf("pair handled twice: %+v", p)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWaitStableWaitsForGrowingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lecture.mp4")
	touch(t, path)

	const writes = 20
	done := make(chan struct{})
	go func() {
		defer close(done)
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return
		}
		defer f.Close()
		for i := 0; i < writes; i++ {
			f.Write([]byte("x"))
			time.Sleep(10 * time.Millisecond)
		}
	}()

	w := &implWatcher{logger: logger.NewWithWriter("error", io.Discard), settle: 50 * time.Millisecond}
	if err := w.waitStable(context.Background(), path); err != nil {
		t.Fatalf("waitStable() error = %v", err)
	}

	select {
	case <-done:
	default:
		t.Error("waitStable() returned while the file was still growing")
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != writes+1 {
		t.Errorf("size after waitStable() = %d, want %d", info.Size(), writes+1)
	}
}

func TestWaitStableErrors(t *testing.T) {
	dir := t.TempDir()
	w := &implWatcher{logger: logger.NewWithWriter("error", io.Discard), settle: time.Hour}

	if err := w.waitStable(context.Background(), filepath.Join(dir, "missing.mp4")); err == nil {
		t.Error("waitStable() on a missing file should fail")
	}

	path := filepath.Join(dir, "lecture.mp4")
	touch(t, path)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.waitStable(ctx, path); err != context.Canceled {
		t.Errorf("waitStable() error = %v, want %v", err, context.Canceled)
	}
}
