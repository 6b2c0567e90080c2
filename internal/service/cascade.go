package service

import (
	"context"

	"shulelink/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// remote is one provider-backed tier of the cascade.
type remote struct {
	tier     domain.Tier
	provider domain.TextProvider
}

// cascade runs TryPrimary -> TrySecondary -> UseOffline for single-shot
// content. prompt builds the tier-specific prompt, accept applies the quality
// gate and offline is the unconditional last tier. A cancelled or expired
// ctx skips any remaining remote tier.
func cascade[T any](
	ctx context.Context,
	s *contentService,
	kind domain.ContentKind,
	prompt func(domain.Tier) string,
	accept func(string) (T, error),
	offline func() T,
) T {
	v, _ := cascadeFrom(ctx, s, kind, prompt, accept, offline)
	return v
}

// cascadeFrom is cascade that also reports the tier that answered.
func cascadeFrom[T any](
	ctx context.Context,
	s *contentService,
	kind domain.ContentKind,
	prompt func(domain.Tier) string,
	accept func(string) (T, error),
	offline func() T,
) (T, domain.Tier) {
	ctx, span := s.tracer.Start(ctx, "content."+string(kind))
	defer span.End()

	for _, r := range s.tiers() {
		if err := ctx.Err(); err != nil {
			s.logger.Info("Request deadline reached, using offline content",
				zap.String("kind", string(kind)),
				zap.String("tier", r.tier.String()),
				zap.Error(err))
			break
		}

		value, failure := attempt(ctx, s, r, kind, prompt(r.tier), accept)
		if failure == nil {
			span.SetAttributes(attribute.String("content.tier", r.tier.String()))
			return value, r.tier
		}
		s.logFailure(kind, r, failure)
	}

	span.SetAttributes(attribute.String("content.tier", domain.TierOffline.String()))
	return offline(), domain.TierOffline
}

// attempt makes one provider call and applies the quality gate.
func attempt[T any](
	ctx context.Context,
	s *contentService,
	r remote,
	kind domain.ContentKind,
	prompt string,
	accept func(string) (T, error),
) (T, *domain.Failure) {
	var zero T

	ctx, span := s.tracer.Start(ctx, "tier."+r.tier.String())
	defer span.End()
	span.SetAttributes(
		attribute.String("content.kind", string(kind)),
		attribute.String("provider", r.provider.Name()),
	)

	res := r.provider.Generate(ctx, prompt)
	if !res.OK() {
		span.SetStatus(codes.Error, string(res.Failure.Kind))
		return zero, res.Failure
	}

	value, err := accept(res.Payload)
	if err != nil {
		f := &domain.Failure{Kind: domain.FailureQualityGate, Reason: "rejected by quality gate", Err: err}
		span.SetStatus(codes.Error, string(f.Kind))
		return zero, f
	}
	return value, nil
}

func (s *contentService) tiers() []remote {
	return []remote{
		{tier: domain.TierPrimary, provider: s.primary},
		{tier: domain.TierSecondary, provider: s.secondary},
	}
}

func (s *contentService) logFailure(kind domain.ContentKind, r remote, f *domain.Failure) {
	s.logger.Warn("Tier failed, cascading",
		zap.String("kind", string(kind)),
		zap.String("tier", r.tier.String()),
		zap.String("provider", r.provider.Name()),
		zap.String("failure", string(f.Kind)),
		zap.String("reason", f.Reason),
		zap.Error(f.Err))
}
