package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openai/openai-go/option"
)

const chatCompletionBody = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "gpt-4o",
	"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "{\"ok\":true}"}}],
	"usage": {"prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16}
}`

func newOpenAITestProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	p, err := NewOpenAIProvider(OpenAIConfig{
		Name:    "openai",
		APIKey:  "test-key",
		BaseURL: ts.URL,
		Model:   "gpt-4o-mini",
		Options: []option.RequestOption{option.WithMaxRetries(0)},
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	return p
}

func TestOpenAIProvider_GenerateContent(t *testing.T) {
	var captured map[string]any
	p := newOpenAITestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionBody))
	})

	resp, err := p.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Message{Role: RoleSystem, Parts: []Part{{Text: "be terse"}}},
		Messages:          []Message{NewTextMessage(RoleUser, "status?")},
		Model:             "gpt-4o",
		Temperature:       0.3,
		MaxTokens:         256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Content.Text() != `{"ok":true}` {
		t.Errorf("unexpected content %q", resp.Content.Text())
	}
	if resp.ModelName != "gpt-4o" {
		t.Errorf("expected request model override, got %s", resp.ModelName)
	}
	if resp.Usage.TotalTokens != 16 {
		t.Errorf("expected 16 total tokens, got %d", resp.Usage.TotalTokens)
	}

	if captured["model"] != "gpt-4o" {
		t.Errorf("model not sent: %v", captured["model"])
	}
	if captured["max_tokens"] != float64(256) {
		t.Errorf("max_tokens not sent: %v", captured["max_tokens"])
	}
	msgs, _ := captured["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(msgs))
	}
	if first, _ := msgs[0].(map[string]any); first["role"] != "system" {
		t.Errorf("first message should be system, got %v", first["role"])
	}
}

func TestOpenAIProvider_Image(t *testing.T) {
	var raw string
	p := newOpenAITestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		raw = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionBody))
	})

	_, err := p.GenerateContent(context.Background(), &Request{
		Messages: []Message{{
			Role: RoleUser,
			Parts: []Part{
				{Text: "describe"},
				{Image: &Image{MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}},
			},
		}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(raw, "image_url") || !strings.Contains(raw, "data:image/png;base64,") {
		t.Errorf("image part not encoded as data URL: %s", raw)
	}
	if !strings.Contains(raw, `"model":"gpt-4o-mini"`) {
		t.Errorf("default model not used: %s", raw)
	}
}

func TestOpenAIProvider_ErrorStatus(t *testing.T) {
	p := newOpenAITestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	})

	_, err := p.GenerateContent(context.Background(), &Request{Messages: []Message{NewTextMessage(RoleUser, "x")}})

	var pErr *ProviderError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", pErr.StatusCode)
	}
	if pErr.Provider != "openai" {
		t.Errorf("expected provider openai, got %s", pErr.Provider)
	}
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	p := newOpenAITestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","created":1,"model":"gpt-4o","choices":[]}`))
	})

	_, err := p.GenerateContent(context.Background(), &Request{Messages: []Message{NewTextMessage(RoleUser, "x")}})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
}
