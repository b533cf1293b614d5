package embedding

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/option"

	"memory-agent/config"
	"memory-agent/pkg/llmprovider"
	"memory-agent/pkg/voyage"
)

func TestOpenAIEmbedder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"object": "list",
			"model": "text-embedding-3-small",
			"data": [
				{"object": "embedding", "index": 1, "embedding": [0.5, 0.25]},
				{"object": "embedding", "index": 0, "embedding": [1, 0]}
			],
			"usage": {"prompt_tokens": 2, "total_tokens": 2}
		}`))
	}))
	defer ts.Close()

	t.Run("success keeps input order", func(t *testing.T) {
		e := NewOpenAI("test-key", ts.URL, "", option.WithMaxRetries(0))
		got, err := e.Embed(context.Background(), []string{"a", "b"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0][0] != 1 || got[1][1] != 0.25 {
			t.Errorf("unexpected vectors: %v", got)
		}
	})

	t.Run("non-success is a provider error", func(t *testing.T) {
		e := NewOpenAI("wrong", ts.URL, "", option.WithMaxRetries(0))
		_, err := EmbedOne(context.Background(), e, "a")
		var pErr *llmprovider.ProviderError
		if !errors.As(err, &pErr) {
			t.Fatalf("expected ProviderError, got %v", err)
		}
		if pErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", pErr.StatusCode)
		}
	})
}

func TestVoyageEmbedder_WrapsErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client, _ := voyage.New("k")
	client.WithBaseURL(ts.URL)

	_, err := EmbedOne(context.Background(), NewVoyage(client), "a")
	var pErr *llmprovider.ProviderError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pErr.Provider != "voyage" || pErr.StatusCode != http.StatusBadGateway {
		t.Errorf("unexpected error: %+v", pErr)
	}
}

type emptyEmbedder struct{}

func (emptyEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, nil
}

func TestEmbedOne_NoVector(t *testing.T) {
	if _, err := EmbedOne(context.Background(), emptyEmbedder{}, "x"); !errors.Is(err, ErrNoEmbedding) {
		t.Errorf("expected ErrNoEmbedding, got %v", err)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.EmbeddingConfig
		wantErr bool
	}{
		{"openai default", config.EmbeddingConfig{APIKey: "k"}, false},
		{"openai compatible without key", config.EmbeddingConfig{Provider: "openai", BaseURL: "http://localhost:11434/v1"}, false},
		{"openai missing key", config.EmbeddingConfig{Provider: "openai"}, true},
		{"voyage", config.EmbeddingConfig{Provider: "voyage", APIKey: "k", Model: "voyage-3-lite"}, false},
		{"voyage missing key", config.EmbeddingConfig{Provider: "voyage"}, true},
		{"unknown", config.EmbeddingConfig{Provider: "cohere", APIKey: "k"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
