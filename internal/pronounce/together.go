package pronounce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"codeberg.org/snonux/uccharana/internal/httpclient"
)

// TogetherProvider calls the Together AI legacy completions endpoint. The
// request body is pinned to the exact wire contract the prompt was tuned
// against: model, prompt, max_tokens and a literal temperature of 0.
type TogetherProvider struct {
	config *Config
	client *http.Client
}

// completionRequest is the request body for POST /completions. Temperature
// must always be serialized, even at 0, to keep output deterministic.
type completionRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

// NewTogetherProvider creates a provider for the Together completions API.
func NewTogetherProvider(config *Config, client *http.Client) (Provider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Together API key is required")
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if client == nil {
		client = httpclient.Default()
	}

	return &TogetherProvider{
		config: config,
		client: client,
	}, nil
}

// Complete sends the prompt and returns the raw completion text of the
// first choice. Non-2xx statuses and unparseable success bodies are
// returned as classified RequestErrors carrying the raw body.
func (p *TogetherProvider) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := completionRequest{
		Model:       p.config.Model,
		Prompt:      prompt,
		MaxTokens:   p.config.MaxTokens,
		Temperature: p.config.Temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := p.config.BaseURL + "/completions"
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	body, resp, err := httpclient.DoAndRead(p.client, httpReq)
	if err != nil {
		// Timeout vs connection failure is classified by the caller.
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &RequestError{
			Kind:       KindAPIError,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var result completionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &RequestError{
			Kind: KindParseError,
			Body: string(body),
			Err:  fmt.Errorf("failed to decode response envelope: %w", err),
		}
	}
	if len(result.Choices) == 0 {
		return "", &RequestError{
			Kind: KindParseError,
			Body: string(body),
			Err:  fmt.Errorf("response contains no choices"),
		}
	}

	return result.Choices[0].Text, nil
}

// Name returns the provider name.
func (p *TogetherProvider) Name() string {
	return "together"
}

// IsAvailable checks if the provider is properly configured.
func (p *TogetherProvider) IsAvailable() error {
	if p.config.APIKey == "" {
		return fmt.Errorf("Together API key is required")
	}
	return nil
}
