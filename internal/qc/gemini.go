package qc

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/recording-qc/internal/config"
	"github.com/nguyentantai21042004/recording-qc/internal/logger"
)

type geminiRequester struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// NewGemini creates a Requester backed by the Gemini API
func NewGemini(ctx context.Context, cfg config.GeminiConfig, log logger.Logger) (Requester, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &geminiRequester{
		client: client,
		model:  model,
		logger: log,
	}, nil
}

// Check sends the QC prompt to Gemini and returns the concatenated text parts.
func (r *geminiRequester) Check(ctx context.Context, transcript, slideText string) (string, error) {
	prompt := BuildPrompt(transcript, slideText)

	r.logger.Info(ctx, "Requesting QC from Gemini model %s (%d prompt characters)", r.model, len(prompt))

	result, err := r.client.Models.GenerateContent(ctx, r.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini model %s: %w", r.model, ErrEmptyModelResponse)
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("gemini model %s: %w", r.model, ErrEmptyModelResponse)
	}

	return text, nil
}
