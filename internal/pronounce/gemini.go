package pronounce

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiProvider is an alternative completion provider using the Gemini
// API. The response is requested as application/json so the same strict
// parsing applies as for the Together provider.
type GeminiProvider struct {
	config *Config
	client *genai.Client
}

// NewGeminiProvider creates a provider backed by the Gemini API.
func NewGeminiProvider(config *Config) (Provider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if config.Model == "" {
		config.Model = DefaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		config: config,
		client: client,
	}, nil
}

// Complete sends the prompt and returns the raw completion text.
func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	temperature := float32(p.config.Temperature)

	resp, err := p.client.Models.GenerateContent(ctx, p.config.Model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:      &temperature,
			MaxOutputTokens:  int32(p.config.MaxTokens),
			ResponseMIMEType: "application/json",
		})
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &RequestError{
				Kind:       KindAPIError,
				StatusCode: apiErr.Code,
				Body:       apiErr.Message,
				Err:        err,
			}
		}
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", &RequestError{
			Kind: KindParseError,
			Err:  fmt.Errorf("empty response from Gemini"),
		}
	}

	return text, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the provider is properly configured.
func (p *GeminiProvider) IsAvailable() error {
	if p.config.APIKey == "" {
		return fmt.Errorf("Gemini API key is required")
	}
	return nil
}
