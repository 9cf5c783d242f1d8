package services

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"quizservice/internal/config"
	contextutils "quizservice/internal/utils"
)

// GenerationProvider is a text-in, text-out backend for question generation.
type GenerationProvider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewGenerationProvider builds the provider named in the config. A nil
// provider (with no error) means generation is disabled.
func NewGenerationProvider(ctx context.Context, cfg *config.AIConfig) (GenerationProvider, error) {
	if !cfg.GenerationEnabled() {
		return nil, nil
	}

	switch cfg.Provider {
	case "gemini":
		return NewGeminiProvider(ctx, cfg)
	case "openai":
		return NewOpenAIProvider(cfg), nil
	default:
		return nil, contextutils.WrapErrorf(contextutils.ErrInvalidInput, "unknown AI provider %q", cfg.Provider)
	}
}

// GeminiProvider generates text through the Google Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(ctx context.Context, cfg *config.AIConfig) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: cfg.Model}, nil
}

// Name implements GenerationProvider.
func (p *GeminiProvider) Name() string { return "gemini" }

// Generate implements GenerationProvider.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: prompt}}},
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	return result.Text(), nil
}

// OpenAIProvider generates text through the OpenAI chat completion API, or
// any OpenAI-compatible endpoint when a base URL is configured.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg *config.AIConfig) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}
}

// Name implements GenerationProvider.
func (p *OpenAIProvider) Name() string { return "openai" }

// Generate implements GenerationProvider.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat completion: empty response")
	}

	return resp.Choices[0].Message.Content, nil
}
