package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/uccharana/internal/pronounce"
)

// Lister handles listing models served by the completion endpoint
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister. An empty baseURL targets the
// default Together endpoint.
func NewLister(apiKey, baseURL string) *Lister {
	if baseURL == "" {
		baseURL = pronounce.DefaultBaseURL
	}
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
	}
}

// ListAvailableModels lists all models available for the current API key,
// grouped into chat/instruct models and everything else. The default
// pronunciation model is marked as such.
func (l *Lister) ListAvailableModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("API key not found. Set TOGETHER_API_KEY environment variable or configure in .uccharana.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	chatModels := []string{}
	otherModels := []string{}

	for _, model := range models.Models {
		id := model.ID
		lower := strings.ToLower(id)
		if strings.Contains(lower, "chat") || strings.Contains(lower, "instruct") {
			chatModels = append(chatModels, id)
		} else {
			otherModels = append(otherModels, id)
		}
	}

	sort.Strings(chatModels)
	sort.Strings(otherModels)

	fmt.Println("Available Models:")
	fmt.Println("\nChat/Instruct Models (suitable for pronunciation lookups):")
	if len(chatModels) == 0 {
		fmt.Println("  No chat models found")
	} else {
		for _, model := range chatModels {
			if model == pronounce.DefaultModel {
				fmt.Printf("  %s (default)\n", model)
			} else {
				fmt.Printf("  %s\n", model)
			}
		}
	}

	fmt.Println("\nOther Models:")
	if len(otherModels) == 0 {
		fmt.Println("  No other models found")
	} else if len(otherModels) > 20 {
		for _, model := range otherModels[:20] {
			fmt.Printf("  %s\n", model)
		}
		fmt.Printf("  ... and %d more models\n", len(otherModels)-20)
	} else {
		for _, model := range otherModels {
			fmt.Printf("  %s\n", model)
		}
	}

	return nil
}
