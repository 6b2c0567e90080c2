// Package provider contains the remote text-generation backends used by the
// Primary and Secondary tiers.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"shulelink/internal/domain"

	"go.uber.org/zap"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 1 << 12
	userAgent      = "ShuleLink/1.0"
)

// HTTPError is returned for non-2xx responses.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http status %d: %s", e.StatusCode, e.Body)
}

func newHTTPClient() *http.Client {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{Transport: tr}
}

// postJSON sends body to url under timeout and returns the raw 2xx response
// body. Anything else is reported as a transport failure.
func postJSON(ctx context.Context, client *http.Client, timeout time.Duration, url string, headers map[string]string, body any) ([]byte, *domain.Failure) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, &domain.Failure{Kind: domain.FailureTransport, Reason: "encode request", Err: err}
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, &domain.Failure{Kind: domain.FailureTransport, Reason: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &domain.Failure{Kind: domain.FailureTransport, Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &domain.Failure{
			Kind:   domain.FailureTransport,
			Reason: "unexpected status",
			Err:    &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)},
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.Failure{Kind: domain.FailureTransport, Reason: "read response", Err: err}
	}
	return raw, nil
}

func failed(f *domain.Failure) domain.ProviderResult {
	return domain.ProviderResult{Failure: f}
}

// logResult records the outcome of one provider call at debug level.
func logResult(logger *zap.Logger, provider string, res domain.ProviderResult, elapsed time.Duration) {
	if res.OK() {
		logger.Debug("Provider request succeeded",
			zap.String("provider", provider),
			zap.Int("payload_chars", len(res.Payload)),
			zap.Duration("elapsed", elapsed))
		return
	}

	fields := []zap.Field{
		zap.String("provider", provider),
		zap.String("failure", string(res.Failure.Kind)),
		zap.String("reason", res.Failure.Reason),
		zap.Duration("elapsed", elapsed),
	}
	var httpErr *HTTPError
	if errors.As(res.Failure.Err, &httpErr) {
		fields = append(fields, zap.Int("status", httpErr.StatusCode))
	}
	if res.Failure.Err != nil {
		fields = append(fields, zap.Error(res.Failure.Err))
	}
	logger.Debug("Provider request failed", fields...)
}
