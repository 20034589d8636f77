package qc

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/recording-qc/internal/config"
	"github.com/nguyentantai21042004/recording-qc/internal/logger"
)

type azureRequester struct {
	client     *openai.Client
	deployment string
	logger     logger.Logger
}

// NewAzure creates a Requester backed by an Azure OpenAI chat deployment
func NewAzure(cfg config.AzureConfig, log logger.Logger) Requester {
	clientCfg := openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	if cfg.APIVersion != "" {
		clientCfg.APIVersion = cfg.APIVersion
	}
	deployment := cfg.Deployment
	clientCfg.AzureModelMapperFunc = func(string) string {
		return deployment
	}

	return &azureRequester{
		client:     openai.NewClientWithConfig(clientCfg),
		deployment: deployment,
		logger:     log,
	}
}

func (r *azureRequester) Check(ctx context.Context, transcript, slideText string) (string, error) {
	prompt := BuildPrompt(transcript, slideText)

	r.logger.Info(ctx, "Requesting QC from Azure deployment %s (%d prompt characters)", r.deployment, len(prompt))

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.deployment,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("azure chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("azure deployment %s: %w", r.deployment, ErrEmptyModelResponse)
	}

	return resp.Choices[0].Message.Content, nil
}
