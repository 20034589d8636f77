package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/recording-qc/internal/logger"
)

var (
	videoExts = []string{".mp4", ".mov", ".mkv", ".webm", ".m4v"}
	deckExts  = []string{".pptx"}
)

type implWatcher struct {
	inputDir string
	handler  PairHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	settle   time.Duration
	handled  map[string]bool // base paths already checked
}

// Start watches the input directory until ctx is cancelled. A pair is handled
// as soon as both of its files exist, whichever arrives last.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Drop folder watcher started. Monitoring: %s", w.inputDir)
	w.logger.Info(ctx, "Supported videos: %s (slides: same name, .pptx)", strings.Join(videoExts, ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Drop folder watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			w.handleEvent(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

func (w *implWatcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	base := strings.TrimSuffix(event.Name, filepath.Ext(event.Name))

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		delete(w.handled, base)
		return
	}
	if !event.Has(fsnotify.Create) {
		return
	}

	videoPath, slidesPath, ok := matchPair(event.Name)
	if !ok {
		w.logger.Debug(ctx, "No complete pair for %s yet", event.Name)
		return
	}
	if w.handled[base] {
		return
	}

	w.logger.Info(ctx, "New pair detected: %s + %s", filepath.Base(videoPath), filepath.Base(slidesPath))

	if err := w.waitStable(ctx, videoPath, slidesPath); err != nil {
		w.logger.Warn(ctx, "Gave up waiting for %s: %v", filepath.Base(videoPath), err)
		return
	}

	w.handled[base] = true
	if err := w.handler(ctx, videoPath, slidesPath); err != nil {
		w.logger.Error(ctx, "Failed to check %s: %v", filepath.Base(videoPath), err)
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// waitStable blocks until none of paths changes size across one settle
// interval, so files still being copied are not handed to ffmpeg truncated.
func (w *implWatcher) waitStable(ctx context.Context, paths ...string) error {
	prev, err := fileSizes(paths)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.settle):
		}

		cur, err := fileSizes(paths)
		if err != nil {
			return err
		}
		if equalSizes(prev, cur) {
			return nil
		}
		w.logger.Debug(ctx, "Still being written: %s", filepath.Base(paths[0]))
		prev = cur
	}
}

func fileSizes(paths []string) ([]int64, error) {
	sizes := make([]int64, len(paths))
	for i, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		sizes[i] = info.Size()
	}
	return sizes, nil
}

func equalSizes(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// matchPair returns the video and deck sharing path's base name, if both exist.
func matchPair(path string) (string, string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	base := strings.TrimSuffix(path, filepath.Ext(path))

	switch {
	case hasExt(videoExts, ext):
		if deck, ok := findSibling(base, deckExts); ok {
			return path, deck, true
		}
	case hasExt(deckExts, ext):
		if video, ok := findSibling(base, videoExts); ok {
			return video, path, true
		}
	}
	return "", "", false
}

func hasExt(exts []string, ext string) bool {
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}

func findSibling(base string, exts []string) (string, bool) {
	for _, ext := range exts {
		for _, candidate := range []string{base + ext, base + strings.ToUpper(ext)} {
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}
	}
	return "", false
}
