package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIConfig configures an OpenAI-compatible chat completion provider.
type OpenAIConfig struct {
	Name    string // reported provider name, e.g. "openai", "deepseek", "ollama"
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Options []option.RequestOption // extra client options, mainly for tests
}

// OpenAIProvider talks to any endpoint speaking the OpenAI chat completions API.
type OpenAIProvider struct {
	client  openai.Client
	name    string
	model   string
	timeout time.Duration
}

// NewOpenAIProvider creates a provider backed by openai-go.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("%s: model is required", cfg.Name)
	}
	name := cfg.Name
	if name == "" {
		name = "openai"
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	opts = append(opts, cfg.Options...)

	return &OpenAIProvider{
		client:  openai.NewClient(opts...),
		name:    name,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// GenerateContent implements Provider interface
func (p *OpenAIProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	model := resolveModel(req, p.model)
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(model),
		Messages:    p.convertMessages(req),
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, p.wrapError(err)
	}
	if len(completion.Choices) == 0 {
		return nil, &ProviderError{Provider: p.name, Err: ErrEmptyResponse}
	}

	return &Response{
		Content:      NewTextMessage(RoleAssistant, completion.Choices[0].Message.Content),
		ProviderName: p.name,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:  int(completion.Usage.TotalTokens),
		},
	}, nil
}

// Name returns provider name
func (p *OpenAIProvider) Name() string {
	return p.name
}

// Model returns model name
func (p *OpenAIProvider) Model() string {
	return p.model
}

func (p *OpenAIProvider) convertMessages(req *Request) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		out = append(out, openai.SystemMessage(req.SystemInstruction.Text()))
	}

	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(msg.Text()))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Text()))
		default:
			out = append(out, p.convertUserMessage(msg))
		}
	}
	return out
}

func (p *OpenAIProvider) convertUserMessage(msg Message) openai.ChatCompletionMessageParamUnion {
	hasImage := false
	for _, part := range msg.Parts {
		if part.Image != nil {
			hasImage = true
			break
		}
	}
	if !hasImage {
		return openai.UserMessage(msg.Text())
	}

	parts := make([]openai.ChatCompletionContentPartUnionParam, 0, len(msg.Parts))
	for _, part := range msg.Parts {
		if part.Image != nil {
			parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL: imageDataURL(part.Image),
			}))
			continue
		}
		if part.Text != "" {
			parts = append(parts, openai.TextContentPart(part.Text))
		}
	}
	return openai.UserMessage(parts)
}

func (p *OpenAIProvider) wrapError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return &ProviderError{Provider: p.name, StatusCode: apiErr.StatusCode, Err: err}
	}
	return &ProviderError{Provider: p.name, Err: err}
}
