// Package app wires configuration into the content pipeline shared by the
// HTTP server and the contentgen CLI.
package app

import (
	"context"
	"errors"
	"fmt"

	"shulelink/internal/adapter"
	"shulelink/internal/adapter/provider"
	"shulelink/internal/cache"
	"shulelink/internal/catalog"
	"shulelink/internal/config"
	"shulelink/internal/domain"
	"shulelink/internal/observability"
	"shulelink/internal/offline"
	"shulelink/internal/parser"
	"shulelink/internal/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Components is the assembled pipeline.
type Components struct {
	// Content is the cached content service when a cache is configured.
	Content domain.ContentService
	// Cache is nil when no Redis address is configured or Redis is unreachable.
	Cache domain.Cache
	// Invalidator drops cached topics; nil without a cache.
	Invalidator service.TopicInvalidator
	Warmup      domain.WarmupService
	// RefreshWarmup regenerates topics even when they are cached.
	RefreshWarmup domain.WarmupService

	redisClient    *redis.Client
	shutdownTracer func(context.Context) error
	warmup         config.WarmupConfig
	logger         *zap.Logger
}

// Build assembles the pipeline from cfg. Remote providers that cannot be
// constructed are replaced by disabled tiers so the offline generator still
// answers.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Components, error) {
	shutdownTracer, err := observability.InitTracing(ctx, cfg.Tracing, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	primary := buildProvider("primary", cfg.Providers.Primary, logger)
	secondary := buildProvider("secondary", cfg.Providers.Secondary, logger)

	gen := offline.New(offlineOptions(cfg.Pipeline)...)
	content := service.NewContentService(primary, secondary, gen, parser.New(logger), cfg.Pipeline, logger)

	c := &Components{shutdownTracer: shutdownTracer, warmup: cfg.Warmup, logger: logger}

	if cfg.Redis.Address != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, serving content without cache", zap.String("address", cfg.Redis.Address), zap.Error(err))
		} else {
			logger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
			c.redisClient = client
			c.Cache = adapter.NewRedisCacheAdapter(client)
		}
	}

	if c.Cache != nil {
		cached := service.NewCachedContentService(content, c.Cache, cfg, logger)
		c.Content = cached
		c.Invalidator = cached
	} else {
		c.Content = content
	}

	c.Warmup = service.NewWarmupService(c.Content, nil, cfg.Warmup, logger)
	c.RefreshWarmup = service.NewWarmupService(c.Content, c.Invalidator, cfg.Warmup, logger)
	return c, nil
}

// CatalogWarmup returns a warm-up runner over the reading catalog topics for
// grade instead of the configured topic list.
func (c *Components) CatalogWarmup(grade string, refresh bool) (domain.WarmupService, error) {
	topics := catalog.TopicsForGrade(grade)
	if len(topics) == 0 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("no catalog topics for grade %q", grade))
	}

	cfg := config.WarmupConfig{QuestionsPerTopic: c.warmup.QuestionsPerTopic}
	for _, t := range topics {
		cfg.Topics = append(cfg.Topics, config.WarmupTopic{Subject: t.Subject, Grade: grade, Topic: t.Title})
	}

	var invalidator service.TopicInvalidator
	if refresh {
		invalidator = c.Invalidator
	}
	return service.NewWarmupService(c.Content, invalidator, cfg, c.logger), nil
}

// Close releases the cache connection and flushes pending spans.
func (c *Components) Close(ctx context.Context) error {
	var errs []error
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
		}
	}
	if c.shutdownTracer != nil {
		if err := c.shutdownTracer(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shut down tracer: %w", err))
		}
	}
	return errors.Join(errs...)
}

func buildProvider(tier string, cfg config.ProviderConfig, logger *zap.Logger) domain.TextProvider {
	p, err := provider.NewFromConfig(cfg, logger)
	if err != nil {
		logger.Warn("Provider misconfigured, tier disabled",
			zap.String("tier", tier),
			zap.String("type", cfg.Type),
			zap.Error(err))
		return provider.Disabled{Reason: err.Error()}
	}
	return p
}

func offlineOptions(p config.PipelineConfig) []offline.Option {
	opts := []offline.Option{offline.WithVariationPolicy(offline.VariationPolicy{MaxVariations: p.MaxVariations})}
	if p.OfflineSeed != 0 {
		opts = append(opts, offline.WithSeed(p.OfflineSeed))
	}
	return opts
}
