package service

import (
	"context"
	"time"

	"shulelink/internal/config"
	"shulelink/internal/domain"

	"go.uber.org/zap"
)

const defaultWarmupQuestions = 30

// TopicInvalidator drops cached content for one topic before it is regenerated.
type TopicInvalidator interface {
	InvalidateTopic(ctx context.Context, subject, grade, topic string) (int, error)
}

// warmupService implements the domain.WarmupService interface.
type warmupService struct {
	content     domain.ContentService
	invalidator TopicInvalidator
	topics      []domain.WarmupTopic
	questions   int
	logger      *zap.Logger
}

// NewWarmupService creates a warm-up runner over content, which is normally
// the cached service so generated content lands in the cache. A non-nil
// invalidator forces every topic to be regenerated.
func NewWarmupService(
	content domain.ContentService,
	invalidator TopicInvalidator,
	cfg config.WarmupConfig,
	logger *zap.Logger,
) domain.WarmupService {
	topics := make([]domain.WarmupTopic, 0, len(cfg.Topics))
	for _, t := range cfg.Topics {
		topics = append(topics, domain.WarmupTopic{Subject: t.Subject, GradeLevel: t.Grade, Topic: t.Topic})
	}
	questions := cfg.QuestionsPerTopic
	if questions <= 0 {
		questions = defaultWarmupQuestions
	}
	return &warmupService{
		content:     content,
		invalidator: invalidator,
		topics:      topics,
		questions:   questions,
		logger:      logger,
	}
}

// WarmContent implements domain.WarmupService.
func (s *warmupService) WarmContent(ctx context.Context) (domain.WarmupReport, error) {
	start := time.Now()
	s.logger.Info("Starting content warm-up", zap.Int("topics", len(s.topics)))

	var report domain.WarmupReport
	if len(s.topics) == 0 {
		s.logger.Info("No warm-up topics configured. Warm-up finishing early.")
		return report, nil
	}

	for _, t := range s.topics {
		if err := ctx.Err(); err != nil {
			s.logger.Warn("Warm-up interrupted", zap.Int("completed_topics", report.Topics), zap.Error(err))
			return report, err
		}

		topicLog := s.logger.With(
			zap.String("subject", t.Subject),
			zap.String("grade", t.GradeLevel),
			zap.String("topic", t.Topic),
		)

		if s.invalidator != nil {
			n, err := s.invalidator.InvalidateTopic(ctx, t.Subject, t.GradeLevel, t.Topic)
			if err != nil {
				// Stale entries only delay the refresh; keep warming.
				topicLog.Warn("Failed to invalidate cached content", zap.Error(err))
			}
			report.Invalidated += n
		}

		notes := s.content.GetTopicNotes(ctx, t.Subject, t.GradeLevel, t.Topic)
		if notes.Text != "" {
			report.Notes++
		}

		questions := s.content.GetQuizQuestions(ctx, t.Subject, t.GradeLevel, t.Topic, s.questions)
		report.Questions += len(questions)
		offline := countFrom(questions, domain.TierOffline)
		if offline > 0 {
			report.Degraded++
			topicLog.Warn("Quiz batch needed offline questions",
				zap.Int("requested", s.questions),
				zap.Int("offline", offline))
		}

		report.Topics++
		topicLog.Info("Finished warming topic",
			zap.Int("notes_chars", len(notes.Text)),
			zap.Int("questions", len(questions)))
	}

	s.logger.Info("Content warm-up completed",
		zap.Int("topics", report.Topics),
		zap.Int("questions", report.Questions),
		zap.Int("degraded", report.Degraded),
		zap.Duration("elapsed", time.Since(start)))
	return report, nil
}
