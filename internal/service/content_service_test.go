package service

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"shulelink/internal/config"
	"shulelink/internal/domain"
	"shulelink/internal/logger"
	"shulelink/internal/offline"
	"shulelink/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	code := m.Run()
	_ = logger.Sync()
	os.Exit(code)
}

const testSeed = 42

func newTestService(primary, secondary domain.TextProvider, cfg config.PipelineConfig) *contentService {
	svc := NewContentService(
		primary,
		secondary,
		offline.New(offline.WithSeed(testSeed)),
		parser.New(logger.Get()),
		cfg,
		logger.Get(),
	)
	return svc.(*contentService)
}

func longText(n int) string {
	return strings.Repeat("Photosynthesis turns light into food. ", n/38+1)[:n]
}

func sources(qs []domain.QuizQuestion) map[domain.Tier]int {
	out := map[domain.Tier]int{}
	for _, q := range qs {
		out[q.Source]++
	}
	return out
}

func askedCounts(p *funcProvider) []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	var asks []int
	for _, prompt := range p.prompts {
		ask, _ := promptNumbers(prompt)
		asks = append(asks, ask)
	}
	return asks
}

func TestGetDailyQuote(t *testing.T) {
	t.Run("primary success", func(t *testing.T) {
		primary := &MockTextProvider{name: "primary"}
		secondary := &MockTextProvider{name: "secondary"}
		primary.On("Generate", mock.Anything, quotePrompt).
			Return(domain.Success(`"Learning never exhausts the mind." - Leonardo da Vinci`)).Once()

		svc := newTestService(primary, secondary, config.PipelineConfig{})
		quote := svc.GetDailyQuote(context.Background())

		assert.Equal(t, domain.Quote{Text: "Learning never exhausts the mind.", Author: "Leonardo da Vinci"}, quote)
		primary.AssertExpectations(t)
		secondary.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("quality gate cascades to secondary", func(t *testing.T) {
		primary := &MockTextProvider{name: "primary"}
		secondary := &MockTextProvider{name: "secondary"}
		primary.On("Generate", mock.Anything, mock.Anything).Return(domain.Success("   ")).Once()
		secondary.On("Generate", mock.Anything, mock.Anything).Return(domain.Success("Keep asking questions.")).Once()

		svc := newTestService(primary, secondary, config.PipelineConfig{})
		quote := svc.GetDailyQuote(context.Background())

		assert.Equal(t, "Keep asking questions.", quote.Text)
		assert.Equal(t, domain.UnknownAuthor, quote.Author)
		assert.Equal(t, domain.TierSecondary, quote.Source)
		primary.AssertExpectations(t)
		secondary.AssertExpectations(t)
	})

	t.Run("both tiers down uses offline", func(t *testing.T) {
		primary, secondary := unreachable("primary"), unreachable("secondary")

		svc := newTestService(primary, secondary, config.PipelineConfig{})
		quote := svc.GetDailyQuote(context.Background())

		expected := offline.New(offline.WithSeed(testSeed)).Quote()
		assert.Equal(t, expected, quote)
		assert.Equal(t, domain.TierOffline, quote.Source)
		assert.Equal(t, 1, primary.Calls())
		assert.Equal(t, 1, secondary.Calls())
	})
}

func TestGetTopicNotes(t *testing.T) {
	t.Run("short primary notes rejected", func(t *testing.T) {
		primary := &MockTextProvider{name: "primary"}
		secondary := &MockTextProvider{name: "secondary"}
		primary.On("Generate", mock.Anything, mock.Anything).Return(domain.Success(longText(199))).Once()
		secondary.On("Generate", mock.Anything, mock.Anything).Return(domain.Success(longText(200))).Once()

		svc := newTestService(primary, secondary, config.PipelineConfig{})
		notes := svc.GetTopicNotes(context.Background(), "Science", "5", "Plants")

		assert.Len(t, []rune(notes.Text), 200)
		primary.AssertExpectations(t)
		secondary.AssertExpectations(t)
	})

	t.Run("prompts are tier specific", func(t *testing.T) {
		primary := &MockTextProvider{name: "primary"}
		secondary := &MockTextProvider{name: "secondary"}
		primary.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "on the topic 'Plants' in Science subject")
		})).Return(domain.Failed(domain.FailureEnvelope, "no candidates", nil)).Once()
		secondary.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.HasSuffix(p, "Educational Content:")
		})).Return(domain.Success(longText(300))).Once()

		svc := newTestService(primary, secondary, config.PipelineConfig{})
		notes := svc.GetTopicNotes(context.Background(), "Science", "5", "Plants")

		assert.NotEmpty(t, notes.Text)
		primary.AssertExpectations(t)
		secondary.AssertExpectations(t)
	})

	t.Run("offline fallback", func(t *testing.T) {
		svc := newTestService(unreachable("primary"), unreachable("secondary"), config.PipelineConfig{})
		notes := svc.GetTopicNotes(context.Background(), "Science", "5", "Plants")

		expected := offline.New().Notes("Science", "5", "Plants")
		assert.Equal(t, expected, notes)
		assert.GreaterOrEqual(t, len([]rune(notes.Text)), 200)
	})
}

func TestGetComprehensiveNotes(t *testing.T) {
	primary := &MockTextProvider{name: "primary"}
	secondary := &MockTextProvider{name: "secondary"}
	primary.On("Generate", mock.Anything, mock.Anything).Return(domain.Success(longText(450))).Once()
	secondary.On("Generate", mock.Anything, mock.Anything).Return(domain.Success(longText(499))).Once()

	svc := newTestService(primary, secondary, config.PipelineConfig{})
	notes := svc.GetComprehensiveNotes(context.Background(), "Mathematics", "6", "Fractions")

	assert.Equal(t, offline.New().ComprehensiveNotes("Mathematics", "6", "Fractions"), notes)
	primary.AssertExpectations(t)
	secondary.AssertExpectations(t)
}

func TestGetQuizQuestions_ZeroCount(t *testing.T) {
	primary, secondary := unreachable("primary"), unreachable("secondary")
	svc := newTestService(primary, secondary, config.PipelineConfig{})

	assert.Empty(t, svc.GetQuizQuestions(context.Background(), "Science", "5", "Plants", 0))
	assert.Empty(t, svc.GetQuizQuestions(context.Background(), "Science", "5", "Plants", -3))
	assert.Zero(t, primary.Calls())
	assert.Zero(t, secondary.Calls())
}

func TestGetQuizQuestions_PrimaryChunks(t *testing.T) {
	primary := chunkEcho("primary", jsonBatch)
	secondary := unreachable("secondary")
	svc := newTestService(primary, secondary, config.PipelineConfig{})

	qs := svc.GetQuizQuestions(context.Background(), "History", "7", "Kingdoms", 25)

	require.Len(t, qs, 25)
	assert.Equal(t, []int{10, 10, 5}, askedCounts(primary))
	assert.Equal(t, map[domain.Tier]int{domain.TierPrimary: 25}, sources(qs))
	assert.Zero(t, secondary.Calls())
	for _, q := range qs {
		assert.NoError(t, q.Validate())
		assert.Empty(t, q.ID)
	}
	assert.Equal(t, "primary-b1 question 1?", qs[0].Text)
	assert.Equal(t, "primary-b3 question 5?", qs[24].Text)
}

func TestGetQuizQuestions_SecondaryAfterPrimaryFailure(t *testing.T) {
	primary := unreachable("primary")
	secondary := chunkEcho("secondary", lineBatch)
	svc := newTestService(primary, secondary, config.PipelineConfig{})

	qs := svc.GetQuizQuestions(context.Background(), "History", "7", "Kingdoms", 12)

	require.Len(t, qs, 12)
	// A transport failure abandons the rest of the Primary tier.
	assert.Equal(t, 1, primary.Calls())
	assert.Equal(t, []int{5, 5, 2}, askedCounts(secondary))
	assert.Equal(t, map[domain.Tier]int{domain.TierSecondary: 12}, sources(qs))
	assert.Equal(t, 1, qs[0].CorrectOptionIndex)
}

func TestGetQuizQuestions_ShortfallFilledOffline(t *testing.T) {
	primary := &funcProvider{name: "primary", fn: func(_ context.Context, prompt string) domain.ProviderResult {
		_, batch := promptNumbers(prompt)
		return domain.Success(jsonBatch("partial-"+string(rune('0'+batch)), 3))
	}}
	secondary := &funcProvider{name: "secondary", fn: func(context.Context, string) domain.ProviderResult {
		return domain.Success("I am not sure what you mean.")
	}}
	svc := newTestService(primary, secondary, config.PipelineConfig{})

	qs := svc.GetQuizQuestions(context.Background(), "History", "7", "Kingdoms", 20)

	require.Len(t, qs, 20)
	assert.Equal(t, []int{10, 10}, askedCounts(primary))
	// Quality-gate failures move on to the next chunk rather than the next tier.
	assert.Equal(t, []int{5, 5, 5}, askedCounts(secondary))
	assert.Equal(t, map[domain.Tier]int{domain.TierPrimary: 6, domain.TierOffline: 14}, sources(qs))

	for i, q := range qs {
		if i < 6 {
			assert.Equal(t, domain.TierPrimary, q.Source, "index %d", i)
		} else {
			assert.Equal(t, domain.TierOffline, q.Source, "index %d", i)
		}
		assert.NoError(t, q.Validate())
	}
	assert.Equal(t, domain.QuestionMultipleChoice, qs[6].Kind)
}

func TestGetQuizQuestions_TruncatesOversizedChunks(t *testing.T) {
	primary := &funcProvider{name: "primary", fn: func(context.Context, string) domain.ProviderResult {
		return domain.Success(jsonBatch("big", 12))
	}}
	svc := newTestService(primary, unreachable("secondary"), config.PipelineConfig{})

	qs := svc.GetQuizQuestions(context.Background(), "History", "7", "Kingdoms", 7)

	require.Len(t, qs, 7)
	assert.Equal(t, 1, primary.Calls())
	assert.Equal(t, map[domain.Tier]int{domain.TierPrimary: 7}, sources(qs))
}

func TestGetQuizQuestions_CancelledContext(t *testing.T) {
	primary, secondary := chunkEcho("primary", jsonBatch), chunkEcho("secondary", lineBatch)
	svc := newTestService(primary, secondary, config.PipelineConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	qs := svc.GetQuizQuestions(ctx, "Physics", "7", "Motion", 9)

	require.Len(t, qs, 9)
	assert.Zero(t, primary.Calls())
	assert.Zero(t, secondary.Calls())
	assert.Equal(t, map[domain.Tier]int{domain.TierOffline: 9}, sources(qs))
}

func TestRequestDeadline(t *testing.T) {
	cfg := config.PipelineConfig{RequestTimeout: 50 * time.Millisecond}

	t.Run("quote", func(t *testing.T) {
		primary, secondary := blocking("primary"), chunkEcho("secondary", lineBatch)
		svc := newTestService(primary, secondary, cfg)

		start := time.Now()
		quote := svc.GetDailyQuote(context.Background())

		assert.Less(t, time.Since(start), 2*time.Second)
		assert.NotEmpty(t, quote.Text)
		assert.Equal(t, 1, primary.Calls())
		assert.Zero(t, secondary.Calls())
	})

	t.Run("quiz", func(t *testing.T) {
		primary, secondary := blocking("primary"), chunkEcho("secondary", lineBatch)
		svc := newTestService(primary, secondary, cfg)

		start := time.Now()
		qs := svc.GetQuizQuestions(context.Background(), "Science", "4", "Water", 30)

		assert.Less(t, time.Since(start), 2*time.Second)
		require.Len(t, qs, 30)
		assert.Equal(t, 1, primary.Calls())
		assert.Zero(t, secondary.Calls())
		assert.Equal(t, map[domain.Tier]int{domain.TierOffline: 30}, sources(qs))
	})
}

func TestGetQuizQuestions_ConcurrentChunksKeepOrder(t *testing.T) {
	primary := &funcProvider{name: "primary", fn: func(_ context.Context, prompt string) domain.ProviderResult {
		ask, batch := promptNumbers(prompt)
		// Later chunks finish first.
		time.Sleep(time.Duration(4-batch) * 20 * time.Millisecond)
		return domain.Success(jsonBatch("primary-b"+string(rune('0'+batch)), ask))
	}}
	svc := newTestService(primary, unreachable("secondary"), config.PipelineConfig{ChunkConcurrency: 3})

	qs := svc.GetQuizQuestions(context.Background(), "History", "7", "Kingdoms", 30)

	require.Len(t, qs, 30)
	assert.Equal(t, 3, primary.Calls())
	assert.Equal(t, "primary-b1 question 1?", qs[0].Text)
	assert.Equal(t, "primary-b2 question 1?", qs[10].Text)
	assert.Equal(t, "primary-b3 question 10?", qs[29].Text)
}

func TestChooseKind(t *testing.T) {
	svc := newTestService(unreachable("p"), unreachable("s"), config.PipelineConfig{CalculationBias: 1})
	for i := 0; i < 20; i++ {
		assert.Equal(t, domain.QuestionCalculation, svc.chooseKind("Mathematics"))
		assert.Contains(t, providerKinds, svc.chooseKind("History"))
	}
	assert.Equal(t, domain.QuestionMultipleChoice, svc.chunkKind(domain.TierSecondary, "Physics"))
}

func TestGetChatResponse(t *testing.T) {
	const message = "Tell me about plants"

	t.Run("short and echoing replies cascade", func(t *testing.T) {
		primary := &MockTextProvider{name: "primary"}
		secondary := &MockTextProvider{name: "secondary"}
		primary.On("Generate", mock.Anything, mock.Anything).
			Return(domain.Success("You asked: tell me about plants. Sure!")).Once()
		secondary.On("Generate", mock.Anything, mock.Anything).
			Return(domain.Success("Plants make their own food using sunlight. What plant do you like?")).Once()

		svc := newTestService(primary, secondary, config.PipelineConfig{})
		reply := svc.GetChatResponse(context.Background(), message, []domain.ChatTurn{{Role: "user", Text: "hi"}})

		assert.Equal(t, "Plants make their own food using sunlight. What plant do you like?", reply)
		primary.AssertExpectations(t)
		secondary.AssertExpectations(t)
	})

	t.Run("offline responder", func(t *testing.T) {
		primary := &MockTextProvider{name: "primary"}
		primary.On("Generate", mock.Anything, mock.Anything).Return(domain.Success("Nice!")).Once()

		svc := newTestService(primary, unreachable("secondary"), config.PipelineConfig{})
		reply := svc.GetChatResponse(context.Background(), "hello", nil)

		assert.NotEmpty(t, reply)
		primary.AssertExpectations(t)
	})
}

func TestAcceptChatReply(t *testing.T) {
	_, err := acceptChatReply("exactly 15 char", "x")
	assert.Error(t, err)

	reply, err := acceptChatReply("  sixteen chars!!!  ", "x")
	assert.NoError(t, err)
	assert.Equal(t, "sixteen chars!!!", reply)

	_, err = acceptChatReply("I think WHAT IS RAIN is a great question", "what is rain")
	assert.Error(t, err)
}

func TestCheckAnswer(t *testing.T) {
	t.Run("exact match skips the provider", func(t *testing.T) {
		primary := &MockTextProvider{name: "primary"}
		svc := newTestService(primary, unreachable("secondary"), config.PipelineConfig{})

		assert.True(t, svc.CheckAnswer(context.Background(), "2+2?", " four ", "FOUR"))
		primary.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	tests := []struct {
		name   string
		result domain.ProviderResult
		want   bool
	}{
		{"judged true", domain.Success("TRUE"), true},
		{"judged true lowercase", domain.Success("true, close enough"), true},
		{"judged false", domain.Success("FALSE"), false},
		{"provider down", domain.Failed(domain.FailureTransport, "timeout", nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &MockTextProvider{name: "primary"}
			primary.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
				return strings.Contains(p, "User Answer: 4.0")
			})).Return(tt.result).Once()

			svc := newTestService(primary, unreachable("secondary"), config.PipelineConfig{})
			assert.Equal(t, tt.want, svc.CheckAnswer(context.Background(), "2+2?", "4.0", "4"))
			primary.AssertExpectations(t)
		})
	}
}

func TestCascadeSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	secondary := &MockTextProvider{name: "secondary"}
	secondary.On("Generate", mock.Anything, mock.Anything).Return(domain.Success("Read every day. - Anonymous")).Once()
	svc := newTestService(unreachable("primary"), secondary, config.PipelineConfig{})

	svc.GetDailyQuote(context.Background())

	spans := recorder.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, "tier.primary", spans[0].Name())
	assert.Equal(t, "tier.secondary", spans[1].Name())
	assert.Equal(t, "content.quote", spans[2].Name())
	assert.Contains(t, spans[2].Attributes(), attribute.String("content.tier", "secondary"))
	assert.Equal(t, spans[2].SpanContext().TraceID(), spans[0].SpanContext().TraceID())
}
