package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "anthropic")
	Name() string

	// Model returns the default model being used
	Model() string
}

// Generator is the subset of Provider implemented by both providers and the Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// Roles used in Message.Role.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Model             string // overrides the provider's default model when set
	Temperature       float64
	MaxTokens         int
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "assistant", "system"
	Parts []Part
}

// Part represents a message part (text or inline image)
type Part struct {
	Text  string
	Image *Image
}

// Image is an inline image attachment.
type Image struct {
	MIMEType string
	Data     []byte
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// NewTextMessage builds a single-part text message.
func NewTextMessage(role, text string) Message {
	return Message{Role: role, Parts: []Part{{Text: text}}}
}

// Text concatenates the text parts of the message.
func (m Message) Text() string {
	if len(m.Parts) == 1 {
		return m.Parts[0].Text
	}
	var b strings.Builder
	for _, p := range m.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
