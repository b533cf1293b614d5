package embedding

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"memory-agent/pkg/llmprovider"
)

const DefaultOpenAIModel = "text-embedding-3-small"

// OpenAIEmbedder calls the OpenAI embeddings endpoint.
type OpenAIEmbedder struct {
	api   openai.Client
	model string
}

// NewOpenAI creates an OpenAI embedder. baseURL may point at any compatible server.
func NewOpenAI(apiKey, baseURL, model string, extra ...option.RequestOption) *OpenAIEmbedder {
	if model == "" {
		model = DefaultOpenAIModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	opts = append(opts, extra...)

	return &OpenAIEmbedder{api: openai.NewClient(opts...), model: model}
}

// Embed implements Embedder.
func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("embedding: no texts provided")
	}

	resp, err := e.api.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(e.model),
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
	})
	if err != nil {
		pErr := &llmprovider.ProviderError{Provider: "openai", Err: err}
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			pErr.StatusCode = apiErr.StatusCode
		}
		return nil, pErr
	}

	out := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || int(d.Index) >= len(texts) {
			return nil, fmt.Errorf("embedding: out-of-range index %d", d.Index)
		}
		out[d.Index] = toFloat32(d.Embedding)
	}
	return out, nil
}

func toFloat32(in []float64) []float32 {
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = float32(v)
	}
	return out
}
