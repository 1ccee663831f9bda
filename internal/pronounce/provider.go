package pronounce

import (
	"context"
	"fmt"

	"codeberg.org/snonux/uccharana/internal/httpclient"
)

// Default completion endpoint settings. The Together API is the original
// provider this application was built against.
const (
	DefaultBaseURL     = "https://api.together.xyz/v1"
	DefaultModel       = "meta-llama/Llama-3-70b-chat-hf"
	DefaultGeminiModel = "gemini-2.0-flash"

	// DefaultMaxTokens caps the completion output per word.
	DefaultMaxTokens = 200
)

// Provider defines the interface for completion endpoint providers.
type Provider interface {
	// Complete sends the prompt and returns the raw completion text.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name.
	Name() string

	// IsAvailable checks if the provider is properly configured.
	IsAvailable() error
}

// Config holds common configuration for completion providers.
type Config struct {
	Provider string // Provider name: "together" or "gemini"
	APIKey   string
	Model    string
	BaseURL  string // Together only

	MaxTokens   int
	Temperature float64
}

// DefaultProviderConfig returns default configuration: the Together
// endpoint with deterministic output.
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:    "together",
		Model:       DefaultModel,
		BaseURL:     DefaultBaseURL,
		MaxTokens:   DefaultMaxTokens,
		Temperature: 0,
	}
}

// NewProvider creates the appropriate completion provider based on
// configuration.
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultMaxTokens
	}

	switch config.Provider {
	case "together":
		return NewTogetherProvider(config, httpclient.Default())

	case "gemini":
		return NewGeminiProvider(config)

	default:
		return nil, fmt.Errorf("unknown completion provider: %s", config.Provider)
	}
}
