package domain

import "context"

// TextProvider is a remote generative-text backend.
// Generate issues exactly one outbound request and never retries. Every
// transport or envelope problem is reported through the returned
// ProviderResult, never as a panic or a separate error value.
type TextProvider interface {
	Name() string
	Generate(ctx context.Context, prompt string) ProviderResult
}
