package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/snonux/uccharana/internal/pronounce"
)

// NewCompletionServer starts an httptest server that answers every request
// with the given model output wrapped in a completions response envelope.
func NewCompletionServer(t *testing.T, modelOutput string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := json.Marshal(map[string]any{
			"choices": []map[string]string{{"text": modelOutput}},
		})
		if err != nil {
			t.Errorf("Failed to marshal completion body: %v", err)
			return
		}
		w.Write(body)
	}))
	t.Cleanup(server.Close)

	return server
}

// NewFailingServer starts an httptest server that answers every request
// with the given status code and body.
func NewFailingServer(t *testing.T, statusCode int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

// SampleSuccess returns a realistic success result for tests.
func SampleSuccess(word string) pronounce.WordResult {
	return pronounce.WordResult{
		Word:                word,
		Pronunciation:       "TOy Luht",
		PronunciationTelugu: "టాయ్ లహ్ట్",
	}
}

// SampleFailure returns a realistic rate-limit failure result for tests.
func SampleFailure(word string) pronounce.WordResult {
	return pronounce.WordResult{
		Word:    word,
		Error:   "API request failed with status 429",
		Details: "Rate limit exceeded",
		Kind:    pronounce.KindAPIError,
	}
}
