package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shulelink/internal/config"
	"shulelink/internal/domain"
	"shulelink/internal/offline"
	"shulelink/internal/observability"
	"shulelink/internal/parser"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	defaultPrimaryChunkSize   = 10
	defaultSecondaryChunkSize = 5
	defaultNotesMinLength     = 200
	defaultComprehensiveMin   = 500
	defaultCalculationBias    = 0.6
	chatMinLength             = 15
)

// providerKinds are the question types a provider chunk may be asked for.
var providerKinds = []domain.QuestionKind{
	domain.QuestionMultipleChoice,
	domain.QuestionFillBlank,
	domain.QuestionTrueFalse,
	domain.QuestionCalculation,
	domain.QuestionShortAnswer,
}

// contentService implements domain.ContentService on top of two remote tiers
// and the offline generator.
type contentService struct {
	primary   domain.TextProvider
	secondary domain.TextProvider
	offline   *offline.Generator
	parser    *parser.Parser
	cfg       config.PipelineConfig
	tracer    trace.Tracer
	logger    *zap.Logger
}

// NewContentService creates the fallback orchestrator. Unset chunk sizes and
// length gates fall back to their defaults.
func NewContentService(
	primary domain.TextProvider,
	secondary domain.TextProvider,
	gen *offline.Generator,
	p *parser.Parser,
	cfg config.PipelineConfig,
	logger *zap.Logger,
) domain.ContentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if gen == nil {
		gen = offline.New()
	}
	if p == nil {
		p = parser.New(logger)
	}
	if cfg.PrimaryChunkSize <= 0 {
		cfg.PrimaryChunkSize = defaultPrimaryChunkSize
	}
	if cfg.SecondaryChunkSize <= 0 {
		cfg.SecondaryChunkSize = defaultSecondaryChunkSize
	}
	if cfg.NotesMinLength <= 0 {
		cfg.NotesMinLength = defaultNotesMinLength
	}
	if cfg.ComprehensiveNotesMinLength <= 0 {
		cfg.ComprehensiveNotesMinLength = defaultComprehensiveMin
	}
	if cfg.CalculationBias < 0 || cfg.CalculationBias > 1 {
		cfg.CalculationBias = defaultCalculationBias
	}
	if cfg.ChunkConcurrency <= 0 {
		cfg.ChunkConcurrency = 1
	}

	return &contentService{
		primary:   primary,
		secondary: secondary,
		offline:   gen,
		parser:    p,
		cfg:       cfg,
		tracer:    otel.Tracer(observability.TracerName),
		logger:    logger,
	}
}

// withDeadline applies the configured per-request timeout on top of ctx.
func (s *contentService) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.RequestTimeout > 0 {
		return context.WithTimeout(ctx, s.cfg.RequestTimeout)
	}
	return context.WithCancel(ctx)
}

// GetDailyQuote implements domain.ContentService
func (s *contentService) GetDailyQuote(ctx context.Context) domain.Quote {
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	req := domain.NewQuoteRequest()
	quote, tier := cascadeFrom(ctx, s, req.Kind,
		func(domain.Tier) string { return quotePrompt },
		s.parser.ParseQuote,
		s.offline.Quote,
	)
	quote.Source = tier
	return quote
}

// GetTopicNotes implements domain.ContentService
func (s *contentService) GetTopicNotes(ctx context.Context, subject, grade, topic string) domain.NotesDocument {
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	req := domain.NewNotesRequest(subject, grade, topic)
	return cascade(ctx, s, req.Kind,
		func(t domain.Tier) string { return notesPrompt(t, req.Subject, req.GradeLevel, req.Topic) },
		func(raw string) (domain.NotesDocument, error) {
			return s.parser.ParseNotes(raw, s.cfg.NotesMinLength)
		},
		func() domain.NotesDocument { return s.offline.Notes(req.Subject, req.GradeLevel, req.Topic) },
	)
}

// GetComprehensiveNotes implements domain.ContentService
func (s *contentService) GetComprehensiveNotes(ctx context.Context, subject, grade, topic string) domain.NotesDocument {
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	req := domain.NewComprehensiveNotesRequest(subject, grade, topic)
	return cascade(ctx, s, req.Kind,
		func(t domain.Tier) string { return comprehensiveNotesPrompt(t, req.Subject, req.GradeLevel, req.Topic) },
		func(raw string) (domain.NotesDocument, error) {
			return s.parser.ParseNotes(raw, s.cfg.ComprehensiveNotesMinLength)
		},
		func() domain.NotesDocument {
			return s.offline.ComprehensiveNotes(req.Subject, req.GradeLevel, req.Topic)
		},
	)
}

// GetChatResponse implements domain.ContentService
func (s *contentService) GetChatResponse(ctx context.Context, message string, history []domain.ChatTurn) string {
	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	return cascade(ctx, s, domain.KindChat,
		func(t domain.Tier) string { return chatPrompt(t, message, history) },
		func(raw string) (string, error) { return acceptChatReply(raw, message) },
		func() string { return s.offline.ChatResponse(message) },
	)
}

// acceptChatReply rejects replies that are too short or echo the student.
func acceptChatReply(raw, message string) (string, error) {
	reply := strings.TrimSpace(raw)
	if len(reply) <= chatMinLength {
		return "", domain.NewParseError(fmt.Sprintf("reply shorter than %d characters", chatMinLength+1), nil)
	}
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg != "" && strings.Contains(strings.ToLower(reply), msg) {
		return "", domain.NewParseError("reply echoes the message", nil)
	}
	return reply, nil
}

// CheckAnswer implements domain.ContentService
func (s *contentService) CheckAnswer(ctx context.Context, question, userAnswer, correctAnswer string) bool {
	exact := strings.EqualFold(strings.TrimSpace(userAnswer), strings.TrimSpace(correctAnswer))
	if exact {
		return true
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "content.check_answer")
	defer span.End()

	res := s.primary.Generate(ctx, checkAnswerPrompt(question, userAnswer, correctAnswer))
	if !res.OK() {
		s.logger.Warn("Answer check unavailable, using exact match",
			zap.String("provider", s.primary.Name()),
			zap.String("failure", string(res.Failure.Kind)),
			zap.Error(res.Failure.Err))
		return exact
	}
	return strings.Contains(strings.ToUpper(res.Payload), "TRUE")
}

// GetQuizQuestions implements domain.ContentService. Valid questions
// accumulate across chunks and tiers; the offline generator fills whatever
// is still missing and the result always has exactly count entries.
func (s *contentService) GetQuizQuestions(ctx context.Context, subject, grade, topic string, count int) []domain.QuizQuestion {
	if count <= 0 {
		return []domain.QuizQuestion{}
	}

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	req := domain.NewQuizBatchRequest(subject, grade, topic, count)
	ctx, span := s.tracer.Start(ctx, "content."+string(req.Kind))
	defer span.End()

	start := time.Now()
	questions := make([]domain.QuizQuestion, 0, count)
	for _, r := range s.tiers() {
		if len(questions) >= count {
			break
		}
		if err := ctx.Err(); err != nil {
			s.logger.Info("Request deadline reached, filling quiz offline",
				zap.String("tier", r.tier.String()),
				zap.Int("have", len(questions)),
				zap.Error(err))
			break
		}
		questions = append(questions, s.collectQuestions(ctx, r, req, count-len(questions))...)
	}

	if missing := count - len(questions); missing > 0 {
		questions = append(questions, s.offline.QuizBatch(req.Subject, req.GradeLevel, req.Topic, missing)...)
	}
	questions = questions[:count]

	s.logger.Debug("Quiz batch assembled",
		zap.Int("requested", count),
		zap.Int("offline", countFrom(questions, domain.TierOffline)),
		zap.Duration("elapsed", time.Since(start)))
	return questions
}

func countFrom(qs []domain.QuizQuestion, tier domain.Tier) int {
	n := 0
	for _, q := range qs {
		if q.Source == tier {
			n++
		}
	}
	return n
}

func (s *contentService) chunkSize(tier domain.Tier) int {
	if tier == domain.TierSecondary {
		return s.cfg.SecondaryChunkSize
	}
	return s.cfg.PrimaryChunkSize
}

// chooseKind picks the question type for one chunk. Quantitative subjects
// lean towards calculation questions.
func (s *contentService) chooseKind(subject string) domain.QuestionKind {
	if offline.IsQuantitative(subject) && s.offline.Float64() < s.cfg.CalculationBias {
		return domain.QuestionCalculation
	}
	return providerKinds[int(s.offline.Float64()*float64(len(providerKinds)))%len(providerKinds)]
}
