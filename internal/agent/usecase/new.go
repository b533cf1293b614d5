package usecase

import (
	"memory-agent/internal/agent/validation"
	memRepo "memory-agent/internal/memory/repository"
	"memory-agent/internal/profile"
	"memory-agent/pkg/embedding"
	"memory-agent/pkg/llmprovider"
	"memory-agent/pkg/log"
)

// Options are the loop and generation defaults. Zero fields take the
// values of DefaultOptions.
type Options struct {
	MaxRetries      int
	TopSimilarItems int
	PageSize        int
	Temperature     float64
	MaxTokens       int
	Model           string // empty leaves the choice to the provider
	ImageModel      string
	ImageMaxTokens  int
}

// DefaultOptions returns the standard loop configuration.
func DefaultOptions() Options {
	return Options{
		MaxRetries:      3,
		TopSimilarItems: 3,
		PageSize:        20,
		Temperature:     0.7,
		MaxTokens:       4000,
		ImageModel:      "gpt-4o",
		ImageMaxTokens:  8000,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MaxRetries <= 0 {
		o.MaxRetries = d.MaxRetries
	}
	if o.TopSimilarItems <= 0 {
		o.TopSimilarItems = d.TopSimilarItems
	}
	if o.PageSize <= 0 {
		o.PageSize = d.PageSize
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = d.MaxTokens
	}
	if o.ImageModel == "" {
		o.ImageModel = d.ImageModel
	}
	if o.ImageMaxTokens <= 0 {
		o.ImageMaxTokens = d.ImageMaxTokens
	}
	return o
}

// implUseCase is the private implementation of agent.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      memRepo.Repository
	profiles  profile.TemplateProvider
	llm       llmprovider.Generator
	embedder  embedding.Embedder
	validator validation.Validator
	opts      Options
}

// New creates a new agent UseCase. A nil validator selects the
// format validator.
func New(
	l log.Logger,
	repo memRepo.Repository,
	profiles profile.TemplateProvider,
	llm llmprovider.Generator,
	embedder embedding.Embedder,
	validator validation.Validator,
	opts Options,
) *implUseCase {
	if validator == nil {
		validator = validation.FormatValidator{}
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		profiles:  profiles,
		llm:       llm,
		embedder:  embedder,
		validator: validator,
		opts:      opts.withDefaults(),
	}
}
