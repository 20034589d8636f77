package watcher

import "context"

// Watcher defines the interface for drop-folder monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// PairHandler is called with a video and the slide deck sharing its base name
type PairHandler func(ctx context.Context, videoPath, slidesPath string) error
