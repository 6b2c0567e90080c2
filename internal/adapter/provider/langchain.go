package provider

import (
	"context"
	"errors"
	"strings"
	"time"

	"shulelink/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// LangChainProvider adapts any langchaingo model (ollama, openai, ...) to a tier.
type LangChainProvider struct {
	name        string
	llm         llms.Model
	temperature float64
	maxTokens   int
	timeout     time.Duration
	logger      *zap.Logger
}

// NewLangChainProvider wraps llm. Zero temperature or maxTokens leave the model defaults.
func NewLangChainProvider(name string, llm llms.Model, temperature float64, maxTokens int, timeout time.Duration, logger *zap.Logger) *LangChainProvider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &LangChainProvider{
		name:        name,
		llm:         llm,
		temperature: temperature,
		maxTokens:   maxTokens,
		timeout:     timeout,
		logger:      logger,
	}
}

func (p *LangChainProvider) Name() string {
	return p.name
}

func (p *LangChainProvider) Generate(ctx context.Context, prompt string) domain.ProviderResult {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var opts []llms.CallOption
	if p.temperature > 0 {
		opts = append(opts, llms.WithTemperature(p.temperature))
	}
	if p.maxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(p.maxTokens))
	}

	text, err := llms.GenerateFromSinglePrompt(ctx, p.llm, prompt, opts...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			p.logger.Debug("LLM request timed out", zap.String("provider", p.name), zap.Error(err))
			return domain.Failed(domain.FailureTransport, "request timed out", err)
		}
		return domain.Failed(domain.FailureTransport, "LLM call failed", err)
	}
	if strings.TrimSpace(text) == "" {
		return domain.Failed(domain.FailureEnvelope, "model returned empty text", nil)
	}
	return domain.Success(text)
}

var _ domain.TextProvider = (*LangChainProvider)(nil)
