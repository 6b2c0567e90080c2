package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"shulelink/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTextProvider ---
type MockTextProvider struct {
	mock.Mock
	name string
}

func (m *MockTextProvider) Name() string {
	if m.name == "" {
		return "mock"
	}
	return m.name
}

func (m *MockTextProvider) Generate(ctx context.Context, prompt string) domain.ProviderResult {
	args := m.Called(ctx, prompt)
	return args.Get(0).(domain.ProviderResult)
}

// --- funcProvider ---
// funcProvider answers from a function and counts calls; used where the reply
// depends on the prompt.
type funcProvider struct {
	name  string
	fn    func(ctx context.Context, prompt string) domain.ProviderResult
	calls atomic.Int32

	mu      sync.Mutex
	prompts []string
}

func (p *funcProvider) Name() string {
	return p.name
}

func (p *funcProvider) Generate(ctx context.Context, prompt string) domain.ProviderResult {
	p.calls.Add(1)
	p.mu.Lock()
	p.prompts = append(p.prompts, prompt)
	p.mu.Unlock()
	return p.fn(ctx, prompt)
}

func (p *funcProvider) Calls() int {
	return int(p.calls.Load())
}

// unreachable fails every call with a transport failure.
func unreachable(name string) *funcProvider {
	return &funcProvider{name: name, fn: func(context.Context, string) domain.ProviderResult {
		return domain.Failed(domain.FailureTransport, "connection refused", nil)
	}}
}

// blocking waits for the request context to end.
func blocking(name string) *funcProvider {
	return &funcProvider{name: name, fn: func(ctx context.Context, _ string) domain.ProviderResult {
		select {
		case <-ctx.Done():
			return domain.Failed(domain.FailureTransport, "request timed out", ctx.Err())
		case <-time.After(5 * time.Second):
			return domain.Failed(domain.FailureTransport, "test provider gave up", nil)
		}
	}}
}

var (
	askPattern   = regexp.MustCompile(`Generate (\d+) `)
	batchPattern = regexp.MustCompile(`Batch:? (\d+)`)
)

// promptNumbers extracts the requested question count and batch number.
func promptNumbers(prompt string) (ask, batch int) {
	if m := askPattern.FindStringSubmatch(prompt); m != nil {
		ask, _ = strconv.Atoi(m[1])
	}
	if m := batchPattern.FindStringSubmatch(prompt); m != nil {
		batch, _ = strconv.Atoi(m[1])
	}
	return ask, batch
}

// jsonBatch renders n valid multiple-choice items in the Primary JSON format.
func jsonBatch(label string, n int) string {
	items := make([]string, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, fmt.Sprintf(`{"question":"%s question %d?","optionA":"one","optionB":"two","optionC":"three","optionD":"four","correctAnswer":"%s","explanation":"because","questionType":"multiple_choice"}`,
			label, i+1, domain.OptionLetter(i%domain.MaxOptions)))
	}
	return "```json\n[" + strings.Join(items, ",") + "]\n```"
}

// lineBatch renders n valid items in the Secondary line format.
func lineBatch(label string, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "Q: %s question %d?\nA) one\nB) two\nC) three\nD) four\nCorrect: B\nExplanation: because\n\n", label, i+1)
	}
	return b.String()
}

// chunkEcho answers each quiz chunk with exactly the requested number of
// questions, labelled by batch number.
func chunkEcho(name string, render func(label string, n int) string) *funcProvider {
	return &funcProvider{name: name, fn: func(_ context.Context, prompt string) domain.ProviderResult {
		ask, batch := promptNumbers(prompt)
		return domain.Success(render(fmt.Sprintf("%s-b%d", name, batch), ask))
	}}
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.Error(1)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockContentService ---
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) GetDailyQuote(ctx context.Context) domain.Quote {
	args := m.Called(ctx)
	return args.Get(0).(domain.Quote)
}

func (m *MockContentService) GetTopicNotes(ctx context.Context, subject, grade, topic string) domain.NotesDocument {
	args := m.Called(ctx, subject, grade, topic)
	return args.Get(0).(domain.NotesDocument)
}

func (m *MockContentService) GetComprehensiveNotes(ctx context.Context, subject, grade, topic string) domain.NotesDocument {
	args := m.Called(ctx, subject, grade, topic)
	return args.Get(0).(domain.NotesDocument)
}

func (m *MockContentService) GetQuizQuestions(ctx context.Context, subject, grade, topic string, count int) []domain.QuizQuestion {
	args := m.Called(ctx, subject, grade, topic, count)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.QuizQuestion)
}

func (m *MockContentService) GetChatResponse(ctx context.Context, message string, history []domain.ChatTurn) string {
	args := m.Called(ctx, message, history)
	return args.String(0)
}

func (m *MockContentService) CheckAnswer(ctx context.Context, question, userAnswer, correctAnswer string) bool {
	args := m.Called(ctx, question, userAnswer, correctAnswer)
	return args.Bool(0)
}
