package transcriber

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/recording-qc/internal/config"
	"github.com/nguyentantai21042004/recording-qc/internal/logger"
	"github.com/nguyentantai21042004/recording-qc/pkg/executor"
)

// New creates the Transcriber selected by cfg.Engine
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Engine {
	case config.EngineCLI, "":
		return &cliTranscriber{
			cfg:      cfg,
			executor: exec,
			logger:   log,
		}, nil
	case config.EngineServer:
		return &serverTranscriber{
			baseURL:    strings.TrimRight(cfg.ServerURL, "/"),
			language:   cfg.Language,
			prompt:     cfg.Prompt,
			httpClient: &http.Client{},
			logger:     log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown whisper engine: %s", cfg.Engine)
	}
}
