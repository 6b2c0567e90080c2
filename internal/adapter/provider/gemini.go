package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shulelink/internal/config"
	"shulelink/internal/domain"

	"go.uber.org/zap"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GeminiProvider calls a generateContent endpoint.
type GeminiProvider struct {
	baseURL    string
	model      string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

// NewGeminiProvider creates a GeminiProvider from cfg.
func NewGeminiProvider(cfg config.ProviderConfig, logger *zap.Logger) (*GeminiProvider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("Gemini API key cannot be empty")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("Gemini model name cannot be empty")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("Gemini base URL cannot be empty")
	}
	logger.Info("Initializing GeminiProvider", zap.String("model", cfg.Model))
	return &GeminiProvider{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		timeout:    cfg.Timeout,
		httpClient: newHTTPClient(),
		logger:     logger,
	}, nil
}

// NewGeminiProviderWithHTTPClient is intended for tests.
func NewGeminiProviderWithHTTPClient(cfg config.ProviderConfig, httpClient *http.Client, logger *zap.Logger) (*GeminiProvider, error) {
	p, err := NewGeminiProvider(cfg, logger)
	if err != nil {
		return nil, err
	}
	if httpClient != nil {
		p.httpClient = httpClient
	}
	return p, nil
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Generate sends prompt and returns candidates[0].content.parts[0].text.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) domain.ProviderResult {
	p.logger.Debug("Sending Gemini request", zap.String("model", p.model), zap.Int("prompt_chars", len(prompt)))
	start := time.Now()
	res := p.generate(ctx, prompt)
	logResult(p.logger, p.Name(), res, time.Since(start))
	return res
}

func (p *GeminiProvider) generate(ctx context.Context, prompt string) domain.ProviderResult {
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", p.baseURL, p.model, url.QueryEscape(p.apiKey))
	body := geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}}

	raw, failure := postJSON(ctx, p.httpClient, p.timeout, endpoint, nil, body)
	if failure != nil {
		return failed(failure)
	}

	var resp geminiResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return domain.Failed(domain.FailureEnvelope, "decode response", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return domain.Failed(domain.FailureEnvelope, "response has no candidate text", nil)
	}
	text := resp.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return domain.Failed(domain.FailureEnvelope, "candidate text is empty", nil)
	}
	return domain.Success(text)
}

var _ domain.TextProvider = (*GeminiProvider)(nil)
