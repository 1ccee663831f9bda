// Package testutil provides shared mocks and helpers for tests.
package testutil

import (
	"context"
	"fmt"

	"codeberg.org/snonux/uccharana/internal/pronounce"
)

// MockPronouncer mocks the per-word pronunciation client.
type MockPronouncer struct {
	// Results maps words to canned results. Words without an entry get a
	// default success result.
	Results map[string]pronounce.WordResult
	Calls   []string
}

// Pronounce returns the canned result for the word.
func (m *MockPronouncer) Pronounce(_ context.Context, word string) pronounce.WordResult {
	m.Calls = append(m.Calls, word)

	if result, ok := m.Results[word]; ok {
		return result
	}

	// Default success response
	return pronounce.WordResult{
		Word:                word,
		Pronunciation:       fmt.Sprintf("mock pronunciation of %s", word),
		PronunciationTelugu: "మాక్",
	}
}

// MockProvider mocks a completion endpoint provider.
type MockProvider struct {
	Completions map[string]string
	Errors      map[string]error
	Calls       []string
}

// Complete returns the canned completion for the prompt.
func (m *MockProvider) Complete(_ context.Context, prompt string) (string, error) {
	m.Calls = append(m.Calls, prompt)

	if err, ok := m.Errors[prompt]; ok {
		return "", err
	}
	if text, ok := m.Completions[prompt]; ok {
		return text, nil
	}

	return `{"word":"mock","pronunciation":"mock","pronunciation_telugu":"మాక్"}`, nil
}

// Name returns the provider name.
func (m *MockProvider) Name() string { return "mock" }

// IsAvailable always reports the mock as configured.
func (m *MockProvider) IsAvailable() error { return nil }
