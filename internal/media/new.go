package media

import (
	"github.com/nguyentantai21042004/recording-qc/internal/logger"
	"github.com/nguyentantai21042004/recording-qc/pkg/executor"
)

type implConverter struct {
	ffmpegPath string
	executor   executor.Executor
	logger     logger.Logger
}

// New creates a Converter that shells out to the ffmpeg binary at ffmpegPath
func New(ffmpegPath string, exec executor.Executor, log logger.Logger) Converter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &implConverter{
		ffmpegPath: ffmpegPath,
		executor:   exec,
		logger:     log,
	}
}
