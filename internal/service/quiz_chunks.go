package service

import (
	"context"

	"shulelink/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
	"go.uber.org/zap"
)

// chunk is one provider request inside a quiz batch.
type chunk struct {
	index int
	ask   int
	kind  domain.QuestionKind
}

type chunkResult struct {
	questions []domain.QuizQuestion
	failure   *domain.Failure
}

// collectQuestions asks one tier for up to need questions in
// ceil(need/chunkSize) chunks.
func (s *contentService) collectQuestions(ctx context.Context, r remote, req domain.ContentRequest, need int) []domain.QuizQuestion {
	size := s.chunkSize(r.tier)
	attempts := (need + size - 1) / size

	ctx, span := s.tracer.Start(ctx, "tier."+r.tier.String())
	defer span.End()
	span.SetAttributes(
		attribute.String("content.kind", string(req.Kind)),
		attribute.String("provider", r.provider.Name()),
		attribute.Int("quiz.need", need),
		attribute.Int("quiz.chunks", attempts),
	)

	var got []domain.QuizQuestion
	if s.cfg.ChunkConcurrency > 1 && attempts > 1 {
		got = s.collectConcurrent(ctx, r, req, need, size, attempts)
	} else {
		got = s.collectSequential(ctx, r, req, need, size, attempts)
	}

	span.SetAttributes(attribute.Int("quiz.parsed", len(got)))
	return got
}

// collectSequential sizes every chunk from what is still missing. A transport
// or envelope failure abandons the tier; a chunk that yields no valid
// question only skips that chunk.
func (s *contentService) collectSequential(ctx context.Context, r remote, req domain.ContentRequest, need, size, attempts int) []domain.QuizQuestion {
	var got []domain.QuizQuestion
	for i := 0; i < attempts; i++ {
		ask := min(size, need-len(got))
		if ask <= 0 {
			break
		}
		if ctx.Err() != nil {
			break
		}

		res := s.runChunk(ctx, r, req, chunk{index: i, ask: ask, kind: s.chunkKind(r.tier, req.Subject)})
		if res.failure != nil {
			s.logChunkFailure(r, i, res.failure)
			if res.failure.Kind != domain.FailureQualityGate {
				break
			}
			continue
		}
		got = append(got, res.questions...)
	}
	return got
}

// collectConcurrent dispatches every chunk up front on a bounded pool and
// keeps the results in chunk order. Failed chunks contribute nothing.
func (s *contentService) collectConcurrent(ctx context.Context, r remote, req domain.ContentRequest, need, size, attempts int) []domain.QuizQuestion {
	chunks := make([]chunk, attempts)
	remaining := need
	for i := range chunks {
		ask := min(size, remaining)
		chunks[i] = chunk{index: i, ask: ask, kind: s.chunkKind(r.tier, req.Subject)}
		remaining -= ask
	}

	results := make([]chunkResult, attempts)
	var g errgroup.Group
	g.SetLimit(s.cfg.ChunkConcurrency)
	for i, c := range chunks {
		g.Go(func() error {
			results[i] = s.runChunk(ctx, r, req, c)
			return nil
		})
	}
	_ = g.Wait()

	var got []domain.QuizQuestion
	for i, res := range results {
		if res.failure != nil {
			s.logChunkFailure(r, i, res.failure)
			continue
		}
		got = append(got, res.questions...)
	}
	return got
}

func (s *contentService) runChunk(ctx context.Context, r remote, req domain.ContentRequest, c chunk) chunkResult {
	prompt := quizPrompt(r.tier, c.kind, req.Subject, req.GradeLevel, req.Topic, c.ask, c.index+1)

	res := r.provider.Generate(ctx, prompt)
	if !res.OK() {
		return chunkResult{failure: res.Failure}
	}

	questions, err := s.parser.ParseQuizBatch(res.Payload, c.kind)
	if err != nil {
		return chunkResult{failure: &domain.Failure{
			Kind:   domain.FailureQualityGate,
			Reason: "no valid questions in chunk",
			Err:    err,
		}}
	}
	for i := range questions {
		questions[i].Source = r.tier
	}

	s.logger.Debug("Quiz chunk parsed",
		zap.String("tier", r.tier.String()),
		zap.Int("chunk", c.index),
		zap.Int("requested", c.ask),
		zap.Int("parsed", len(questions)))
	return chunkResult{questions: questions}
}

// chunkKind picks the requested question type. The line format used for the
// Secondary tier only carries multiple-choice questions.
func (s *contentService) chunkKind(tier domain.Tier, subject string) domain.QuestionKind {
	if tier == domain.TierSecondary {
		return domain.QuestionMultipleChoice
	}
	return s.chooseKind(subject)
}

func (s *contentService) logChunkFailure(r remote, index int, f *domain.Failure) {
	s.logger.Warn("Quiz chunk failed",
		zap.String("tier", r.tier.String()),
		zap.String("provider", r.provider.Name()),
		zap.Int("chunk", index),
		zap.String("failure", string(f.Kind)),
		zap.String("reason", f.Reason),
		zap.Error(f.Err))
}
