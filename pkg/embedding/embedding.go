// Package embedding turns text into vectors for semantic retrieval.
package embedding

import (
	"context"
	"errors"

	"memory-agent/pkg/llmprovider"
	"memory-agent/pkg/voyage"
)

// Embedder generates one embedding per input text, in input order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

var ErrNoEmbedding = errors.New("embedding: provider returned no vector")

// EmbedOne embeds a single text.
func EmbedOne(ctx context.Context, e Embedder, text string) ([]float32, error) {
	vectors, err := e.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, ErrNoEmbedding
	}
	return vectors[0], nil
}

// voyageEmbedder reports Voyage failures as provider errors.
type voyageEmbedder struct {
	client *voyage.Client
}

func (v *voyageEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors, err := v.client.Embed(ctx, texts)
	if err != nil {
		pErr := &llmprovider.ProviderError{Provider: "voyage", Err: err}
		var apiErr *voyage.APIError
		if errors.As(err, &apiErr) {
			pErr.StatusCode = apiErr.StatusCode
		}
		return nil, pErr
	}
	return vectors, nil
}

// NewVoyage wraps a Voyage client as an Embedder.
func NewVoyage(client *voyage.Client) Embedder {
	if client == nil {
		panic("embedding: voyage client is required")
	}
	return &voyageEmbedder{client: client}
}
