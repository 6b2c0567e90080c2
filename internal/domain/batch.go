package domain

import "context"

// WarmupTopic is one subject/grade/topic combination whose content is pre-generated.
type WarmupTopic struct {
	Subject    string
	GradeLevel string
	Topic      string
}

// WarmupReport summarizes one warm-up run.
type WarmupReport struct {
	Topics      int `json:"topics"`
	Notes       int `json:"notes"`
	Questions   int `json:"questions"`
	Degraded    int `json:"degraded"`
	Invalidated int `json:"invalidated"`
}

// WarmupService defines the interface for batch pre-generation of content.
type WarmupService interface {
	// WarmContent generates notes and a quiz batch for every configured
	// topic. It stops early only when ctx ends.
	WarmContent(ctx context.Context) (WarmupReport, error)
}
