package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// RunFiles runs the pipeline on a video and a slide deck stored on disk.
func RunFiles(ctx context.Context, p Pipeline, videoPath, slidesPath string) (*Result, error) {
	video, err := os.Open(videoPath)
	if err != nil {
		return nil, fmt.Errorf("open video: %w", err)
	}
	defer video.Close()

	deck, err := os.Open(slidesPath)
	if err != nil {
		return nil, fmt.Errorf("open slides: %w", err)
	}
	defer deck.Close()

	info, err := deck.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat slides: %w", err)
	}

	return p.Run(ctx, Input{
		Video:      video,
		VideoName:  filepath.Base(videoPath),
		Slides:     deck,
		SlidesSize: info.Size(),
	})
}
