package domain

import "fmt"

// FailureKind classifies why a tier did not produce usable content.
type FailureKind string

const (
	// FailureTransport covers network errors, timeouts and non-2xx statuses.
	FailureTransport FailureKind = "transport"
	// FailureEnvelope means the response body did not have the expected shape.
	FailureEnvelope FailureKind = "envelope"
	// FailureQualityGate means the text was extracted but rejected by the parser.
	FailureQualityGate FailureKind = "quality_gate"
	// FailureParseSkip marks a single malformed element inside a batch.
	FailureParseSkip FailureKind = "parse_skip"
)

// Failure is the reason half of a ProviderResult.
type Failure struct {
	Kind   FailureKind
	Reason string
	Err    error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Reason, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Reason)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// ProviderResult is the tagged outcome of one provider call.
// Exactly one of Payload (success) or Failure is meaningful.
type ProviderResult struct {
	Payload string
	Failure *Failure
}

// Success wraps the extracted text of a provider response.
func Success(payload string) ProviderResult {
	return ProviderResult{Payload: payload}
}

// Failed builds a failed ProviderResult.
func Failed(kind FailureKind, reason string, err error) ProviderResult {
	return ProviderResult{Failure: &Failure{Kind: kind, Reason: reason, Err: err}}
}

func (r ProviderResult) OK() bool {
	return r.Failure == nil
}
