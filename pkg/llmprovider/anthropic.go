package llmprovider

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicConfig configures the Anthropic messages provider.
type AnthropicConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Options []option.RequestOption
}

// AnthropicProvider talks to the Anthropic messages API.
type AnthropicProvider struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
}

// NewAnthropicProvider creates a provider backed by anthropic-sdk-go.
func NewAnthropicProvider(cfg AnthropicConfig) (*AnthropicProvider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("anthropic: model is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	opts = append(opts, cfg.Options...)

	return &AnthropicProvider{
		client:  anthropic.NewClient(opts...),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// GenerateContent implements Provider interface
func (p *AnthropicProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	model := resolveModel(req, p.model)
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(req.Temperature),
	}

	var system []string
	if req.SystemInstruction != nil {
		system = append(system, req.SystemInstruction.Text())
	}
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem:
			// The messages API carries system text out of band.
			system = append(system, msg.Text())
		case RoleAssistant:
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Text())))
		default:
			params.Messages = append(params.Messages, anthropic.NewUserMessage(p.convertParts(msg.Parts)...))
		}
	}
	if len(system) > 0 {
		params.System = []anthropic.TextBlockParam{{Text: strings.Join(system, "\n\n")}}
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return nil, &ProviderError{Provider: p.Name(), StatusCode: apiErr.StatusCode, Err: err}
		}
		return nil, &ProviderError{Provider: p.Name(), Err: err}
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, &ProviderError{Provider: p.Name(), Err: ErrEmptyResponse}
	}

	return &Response{
		Content:      NewTextMessage(RoleAssistant, text.String()),
		ProviderName: p.Name(),
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
			TotalTokens:  int(resp.Usage.InputTokens + resp.Usage.OutputTokens),
		},
	}, nil
}

// Name returns provider name
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// Model returns model name
func (p *AnthropicProvider) Model() string {
	return p.model
}

func (p *AnthropicProvider) convertParts(parts []Part) []anthropic.ContentBlockParamUnion {
	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(parts))
	for _, part := range parts {
		if part.Image != nil {
			blocks = append(blocks, anthropic.NewImageBlockBase64(
				imageMIMEType(part.Image),
				base64.StdEncoding.EncodeToString(part.Image.Data),
			))
			continue
		}
		blocks = append(blocks, anthropic.NewTextBlock(part.Text))
	}
	return blocks
}
