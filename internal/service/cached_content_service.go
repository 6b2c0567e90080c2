package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"shulelink/internal/cache"
	"shulelink/internal/config"
	"shulelink/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	quoteCacheType         = "quote"
	notesCacheType         = "notes"
	comprehensiveCacheType = "comprehensive_notes"
	quizCacheType          = "quiz"

	// cacheFormat is part of every key; bump it when cached JSON changes shape.
	cacheFormat = "v1"

	defaultQuoteTTL = 24 * time.Hour
	defaultNotesTTL = 7 * 24 * time.Hour
	defaultQuizTTL  = 24 * time.Hour

	// cacheOpTimeout bounds cache reads and writes so a slow cache never
	// delays content.
	cacheOpTimeout = 500 * time.Millisecond
)

// CachedContentService stores generated content in a domain.Cache. The quote
// is cached per calendar day; notes and quiz batches per topic. Quiz batches
// that needed offline questions are not cached so the next request can try
// the providers again. Chat and answer checks pass straight through.
type CachedContentService struct {
	next   domain.ContentService
	cache  domain.Cache
	group  singleflight.Group
	ttls   map[string]time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// NewCachedContentService wraps next. A nil cache disables caching.
func NewCachedContentService(next domain.ContentService, c domain.Cache, cfg *config.Config, logger *zap.Logger) *CachedContentService {
	ttls := map[string]time.Duration{
		quoteCacheType:         defaultQuoteTTL,
		notesCacheType:         defaultNotesTTL,
		comprehensiveCacheType: defaultNotesTTL,
		quizCacheType:          defaultQuizTTL,
	}
	if cfg != nil {
		ttls[quoteCacheType] = cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Quote, defaultQuoteTTL)
		ttls[notesCacheType] = cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Notes, defaultNotesTTL)
		ttls[comprehensiveCacheType] = ttls[notesCacheType]
		ttls[quizCacheType] = cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Quiz, defaultQuizTTL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedContentService{
		next:   next,
		cache:  c,
		ttls:   ttls,
		now:    time.Now,
		logger: logger,
	}
}

// GetDailyQuote implements domain.ContentService. Offline quotes are not
// stored so a later request retries the providers.
func (s *CachedContentService) GetDailyQuote(ctx context.Context) domain.Quote {
	key := cache.GenerateCacheKey(cache.ContentService, quoteCacheType, s.now().Format(time.DateOnly), cacheFormat)
	return cached(ctx, s, key, quoteCacheType, func(ctx context.Context) (domain.Quote, bool) {
		quote := s.next.GetDailyQuote(ctx)
		return quote, quote.Source != domain.TierOffline
	})
}

// GetTopicNotes implements domain.ContentService
func (s *CachedContentService) GetTopicNotes(ctx context.Context, subject, grade, topic string) domain.NotesDocument {
	key := topicKey(notesCacheType, subject, grade, topic)
	return cached(ctx, s, key, notesCacheType, func(ctx context.Context) (domain.NotesDocument, bool) {
		return s.next.GetTopicNotes(ctx, subject, grade, topic), true
	})
}

// GetComprehensiveNotes implements domain.ContentService
func (s *CachedContentService) GetComprehensiveNotes(ctx context.Context, subject, grade, topic string) domain.NotesDocument {
	key := topicKey(comprehensiveCacheType, subject, grade, topic)
	return cached(ctx, s, key, comprehensiveCacheType, func(ctx context.Context) (domain.NotesDocument, bool) {
		return s.next.GetComprehensiveNotes(ctx, subject, grade, topic), true
	})
}

// GetQuizQuestions implements domain.ContentService
func (s *CachedContentService) GetQuizQuestions(ctx context.Context, subject, grade, topic string, count int) []domain.QuizQuestion {
	if count <= 0 {
		return s.next.GetQuizQuestions(ctx, subject, grade, topic, count)
	}
	key := topicKey(quizCacheType, subject, grade, topic, strconv.Itoa(count))
	return cached(ctx, s, key, quizCacheType, func(ctx context.Context) ([]domain.QuizQuestion, bool) {
		questions := s.next.GetQuizQuestions(ctx, subject, grade, topic, count)
		return questions, countFrom(questions, domain.TierOffline) == 0
	})
}

// GetChatResponse implements domain.ContentService
func (s *CachedContentService) GetChatResponse(ctx context.Context, message string, history []domain.ChatTurn) string {
	return s.next.GetChatResponse(ctx, message, history)
}

// CheckAnswer implements domain.ContentService
func (s *CachedContentService) CheckAnswer(ctx context.Context, question, userAnswer, correctAnswer string) bool {
	return s.next.CheckAnswer(ctx, question, userAnswer, correctAnswer)
}

// InvalidateTopic drops cached notes and quiz batches for one topic.
func (s *CachedContentService) InvalidateTopic(ctx context.Context, subject, grade, topic string) (int, error) {
	if s.cache == nil {
		return 0, nil
	}
	total := 0
	for _, objectType := range []string{notesCacheType, comprehensiveCacheType, quizCacheType} {
		n, err := s.cache.DeletePrefix(ctx, cache.TopicPrefix(objectType, subject, grade, topic))
		total += n
		if err != nil {
			return total, domain.NewInternalError("failed to invalidate cached content", err)
		}
	}
	return total, nil
}

func topicKey(objectType, subject, grade, topic string, params ...string) string {
	return cache.GenerateCacheKey(cache.ContentService, objectType,
		cache.TopicIdentifier(subject, grade, topic), append([]string{cacheFormat}, params...)...)
}

// cached serves key from the cache or computes it once per key across
// concurrent callers. generate reports whether its value may be stored.
// Cache errors are logged and never reach the caller.
func cached[T any](ctx context.Context, s *CachedContentService, key, objectType string, generate func(context.Context) (T, bool)) T {
	if s.cache == nil {
		v, _ := generate(ctx)
		return v
	}

	if v, ok := readCache[T](ctx, s, key); ok {
		return v
	}

	res, _, _ := s.group.Do(key, func() (any, error) {
		// A concurrent caller may have filled the key while this one waited.
		if v, ok := readCache[T](ctx, s, key); ok {
			return v, nil
		}
		v, storable := generate(ctx)
		if storable {
			writeCache(ctx, s, key, v, s.ttls[objectType])
		}
		return v, nil
	})
	return res.(T)
}

func readCache[T any](ctx context.Context, s *CachedContentService, key string) (T, bool) {
	var zero T

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheOpTimeout)
	defer cancel()

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return zero, false
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.Warn("Discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Debug("Cache delete failed", zap.String("key", key), zap.Error(err))
		}
		return zero, false
	}
	s.logger.Debug("Cache hit", zap.String("key", key))
	return v, true
}

func writeCache(ctx context.Context, s *CachedContentService, key string, v any, ttl time.Duration) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("Failed to encode content for cache", zap.String("key", key), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheOpTimeout)
	defer cancel()
	if err := s.cache.Set(ctx, key, string(raw), ttl); err != nil {
		s.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

var _ domain.ContentService = (*CachedContentService)(nil)
