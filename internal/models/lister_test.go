package models

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key", "")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}

	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	lister := NewLister("", "")

	err := lister.ListAvailableModels()
	if err == nil {
		t.Error("Expected error for missing API key")
	}

	expectedError := "API key not found. Set TOGETHER_API_KEY environment variable or configure in .uccharana.yaml"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got: %v", expectedError, err)
	}
}

func TestListAvailableModels_CustomBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			t.Errorf("Expected request to /models, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"data": []map[string]any{
				{"id": "meta-llama/Llama-3-70b-chat-hf", "object": "model"},
				{"id": "mistralai/Mixtral-8x7B-Instruct-v0.1", "object": "model"},
				{"id": "BAAI/bge-large-en-v1.5", "object": "model"},
			},
		})
	}))
	defer server.Close()

	lister := NewLister("test-api-key", server.URL)

	if err := lister.ListAvailableModels(); err != nil {
		t.Errorf("ListAvailableModels failed: %v", err)
	}
}

func TestListAvailableModels_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "invalid key"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	lister := NewLister("bad-key", server.URL)

	if err := lister.ListAvailableModels(); err == nil {
		t.Error("Expected error for unauthorized request")
	}
}
