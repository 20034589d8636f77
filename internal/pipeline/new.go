package pipeline

import (
	"github.com/nguyentantai21042004/recording-qc/internal/logger"
	"github.com/nguyentantai21042004/recording-qc/internal/media"
	"github.com/nguyentantai21042004/recording-qc/internal/qc"
	"github.com/nguyentantai21042004/recording-qc/internal/slides"
	"github.com/nguyentantai21042004/recording-qc/internal/transcriber"
)

type implPipeline struct {
	tempDir     string
	converter   media.Converter
	transcriber transcriber.Transcriber
	extractor   slides.Extractor
	requester   qc.Requester
	logger      logger.Logger
}

// New creates a Pipeline. Each run gets its own directory under tempDir
// ("" means the OS temp dir).
func New(
	tempDir string,
	conv media.Converter,
	tr transcriber.Transcriber,
	ex slides.Extractor,
	req qc.Requester,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		tempDir:     tempDir,
		converter:   conv,
		transcriber: tr,
		extractor:   ex,
		requester:   req,
		logger:      log,
	}
}
