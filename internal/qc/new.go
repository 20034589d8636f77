package qc

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/recording-qc/internal/config"
	"github.com/nguyentantai21042004/recording-qc/internal/logger"
)

// New creates the Requester for cfg.Provider
func New(ctx context.Context, cfg config.LLMConfig, log logger.Logger) (Requester, error) {
	switch cfg.Provider {
	case config.ProviderAzure, "":
		return NewAzure(cfg.Azure, log), nil
	case config.ProviderGemini:
		return NewGemini(ctx, cfg.Gemini, log)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
