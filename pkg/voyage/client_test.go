package voyage_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"memory-agent/pkg/voyage"
)

func TestVoyageClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-voyage-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req struct {
			Input []string `json:"input"`
			Model string   `json:"model"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if len(req.Input) > 0 && req.Input[0] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		// Success flow
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"data": [
				{
					"embedding": [0.1, 0.2, 0.3],
					"index": 0
				}
			]
		}`))
	}))
	defer ts.Close()

	client, _ := voyage.New("test-voyage-key")
	client.WithBaseURL(ts.URL).WithModel("custom-model")

	t.Run("Success Flow", func(t *testing.T) {
		emb, err := client.Embed(context.Background(), []string{"Hello world"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(emb) != 1 || len(emb[0]) != 3 {
			t.Fatalf("expected 1 embed with 3 dims, got len=%d", len(emb))
		}
		if emb[0][0] != 0.1 || emb[0][1] != 0.2 || emb[0][2] != 0.3 {
			t.Errorf("unexpected embedding values: %v", emb[0])
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.Embed(context.Background(), []string{"cause_500"})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Unauthorized Error Flow", func(t *testing.T) {
		badClient, _ := voyage.New("bad-key")
		badClient.WithBaseURL(ts.URL)
		_, err := badClient.Embed(context.Background(), []string{"Hello world"})
		if err == nil || !strings.Contains(err.Error(), "401") {
			t.Fatalf("expected 401 error, got %v", err)
		}
	})
}

func TestVoyageClient_OrdersByIndex(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req voyage.EmbedRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.InputType != "document" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"input_type missing"}}`))
			return
		}
		w.Write([]byte(`{"data":[{"embedding":[2],"index":1},{"embedding":[1],"index":0}]}`))
	}))
	defer ts.Close()

	client, _ := voyage.New("k")
	client.WithBaseURL(ts.URL).WithInputType("document")

	emb, err := client.Embed(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emb[0][0] != 1 || emb[1][0] != 2 {
		t.Errorf("embeddings not ordered by index: %v", emb)
	}

	client.WithInputType("")
	_, err = client.Embed(context.Background(), []string{"a"})
	var apiErr *voyage.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "input_type missing" {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
}
