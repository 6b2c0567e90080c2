package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shulelink/internal/config"
	"shulelink/internal/domain"

	"go.uber.org/zap"
)

type hfParameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
	DoSample    bool    `json:"do_sample"`
	TopP        float64 `json:"top_p"`
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfGeneration struct {
	GeneratedText *string `json:"generated_text"`
}

// HuggingFaceProvider calls a hosted inference endpoint.
type HuggingFaceProvider struct {
	baseURL    string
	model      string
	token      string
	params     hfParameters
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHuggingFaceProvider creates a HuggingFaceProvider. The token is optional.
func NewHuggingFaceProvider(cfg config.ProviderConfig, logger *zap.Logger) (*HuggingFaceProvider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("HuggingFace model name cannot be empty")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("HuggingFace base URL cannot be empty")
	}

	params := hfParameters{
		MaxLength:   cfg.MaxLength,
		Temperature: cfg.Temperature,
		DoSample:    true,
		TopP:        cfg.TopP,
	}
	if params.MaxLength <= 0 {
		params.MaxLength = 500
	}
	if params.Temperature <= 0 {
		params.Temperature = 0.7
	}
	if params.TopP <= 0 {
		params.TopP = 0.9
	}

	logger.Info("Initializing HuggingFaceProvider", zap.String("model", cfg.Model))
	return &HuggingFaceProvider{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		token:      cfg.APIKey,
		params:     params,
		timeout:    cfg.Timeout,
		httpClient: newHTTPClient(),
		logger:     logger,
	}, nil
}

// NewHuggingFaceProviderWithHTTPClient is intended for tests.
func NewHuggingFaceProviderWithHTTPClient(cfg config.ProviderConfig, httpClient *http.Client, logger *zap.Logger) (*HuggingFaceProvider, error) {
	p, err := NewHuggingFaceProvider(cfg, logger)
	if err != nil {
		return nil, err
	}
	if httpClient != nil {
		p.httpClient = httpClient
	}
	return p, nil
}

func (p *HuggingFaceProvider) Name() string {
	return "huggingface"
}

// Generate sends prompt and returns the first generated_text. Inference
// backends often echo the prompt, so an echoed prefix is removed.
func (p *HuggingFaceProvider) Generate(ctx context.Context, prompt string) domain.ProviderResult {
	p.logger.Debug("Sending HuggingFace request", zap.String("model", p.model), zap.Int("prompt_chars", len(prompt)))
	start := time.Now()
	res := p.generate(ctx, prompt)
	logResult(p.logger, p.Name(), res, time.Since(start))
	return res
}

func (p *HuggingFaceProvider) generate(ctx context.Context, prompt string) domain.ProviderResult {
	endpoint := fmt.Sprintf("%s/models/%s", p.baseURL, p.model)
	body := hfRequest{Inputs: prompt, Parameters: p.params}

	var headers map[string]string
	if p.token != "" {
		headers = map[string]string{"Authorization": "Bearer " + p.token}
	}

	raw, failure := postJSON(ctx, p.httpClient, p.timeout, endpoint, headers, body)
	if failure != nil {
		return failed(failure)
	}

	var resp []hfGeneration
	if err := json.Unmarshal(raw, &resp); err != nil {
		return domain.Failed(domain.FailureEnvelope, "decode response", err)
	}
	if len(resp) == 0 || resp[0].GeneratedText == nil {
		return domain.Failed(domain.FailureEnvelope, "response has no generated_text", nil)
	}

	text := strings.TrimSpace(strings.TrimPrefix(*resp[0].GeneratedText, prompt))
	if text == "" {
		return domain.Failed(domain.FailureEnvelope, "generated_text is empty", nil)
	}
	return domain.Success(text)
}

var _ domain.TextProvider = (*HuggingFaceProvider)(nil)
