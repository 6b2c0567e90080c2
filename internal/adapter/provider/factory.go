package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"shulelink/internal/config"
	"shulelink/internal/domain"

	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// Disabled is a tier with no backend configured. It always fails, so the
// cascade moves straight on.
type Disabled struct {
	Reason string
}

func (d Disabled) Name() string {
	return "disabled"
}

func (d Disabled) Generate(ctx context.Context, prompt string) domain.ProviderResult {
	return domain.Failed(domain.FailureTransport, "provider disabled: "+d.Reason, nil)
}

// NewFromConfig builds the provider selected by cfg.Type.
func NewFromConfig(cfg config.ProviderConfig, logger *zap.Logger) (domain.TextProvider, error) {
	switch strings.ToLower(cfg.Type) {
	case "gemini":
		p, err := NewGeminiProvider(cfg, logger)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "huggingface":
		p, err := NewHuggingFaceProvider(cfg, logger)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "ollama":
		opts := []ollama.Option{
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, ollama.WithServerURL(cfg.BaseURL))
		}
		llm, err := ollama.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		logger.Info("Initializing ollama provider", zap.String("model", cfg.Model))
		return NewLangChainProvider("ollama", llm, cfg.Temperature, cfg.MaxLength, cfg.Timeout, logger), nil
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key cannot be empty")
		}
		opts := []openai.Option{
			openai.WithToken(cfg.APIKey),
			openai.WithModel(cfg.Model),
			openai.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		logger.Info("Initializing openai provider", zap.String("model", cfg.Model))
		return NewLangChainProvider("openai", llm, cfg.Temperature, cfg.MaxLength, cfg.Timeout, logger), nil
	case "", "none":
		return Disabled{Reason: "no provider type configured"}, nil
	default:
		return nil, domain.NewInvalidConfigError(fmt.Sprintf("unsupported provider type: %s", cfg.Type))
	}
}

var _ domain.TextProvider = Disabled{}
