package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizQuestion_Validate(t *testing.T) {
	valid := func() QuizQuestion {
		return QuizQuestion{
			Text:               "What is 2 + 2?",
			Kind:               QuestionMultipleChoice,
			Options:            []string{"3", "4", "5", "6"},
			CorrectOptionIndex: 1,
			Explanation:        "Two plus two is four.",
		}
	}

	tests := []struct {
		name    string
		mutate  func(q *QuizQuestion)
		wantErr bool
	}{
		{"valid question", func(q *QuizQuestion) {}, false},
		{"empty text", func(q *QuizQuestion) { q.Text = "  " }, true},
		{"too many options", func(q *QuizQuestion) { q.Options = append(q.Options, "7") }, true},
		{"index out of range", func(q *QuizQuestion) { q.CorrectOptionIndex = 4 }, true},
		{"negative index", func(q *QuizQuestion) { q.CorrectOptionIndex = -1 }, true},
		{"correct option empty", func(q *QuizQuestion) { q.Options[1] = "" }, true},
		{"missing explanation", func(q *QuizQuestion) { q.Explanation = "" }, true},
		{"true/false with two options", func(q *QuizQuestion) {
			q.Kind = QuestionTrueFalse
			q.Options = []string{"True", "False"}
			q.CorrectOptionIndex = 0
		}, false},
		{"true/false with four options", func(q *QuizQuestion) { q.Kind = QuestionTrueFalse }, true},
		{"short answer without options", func(q *QuizQuestion) {
			q.Kind = QuestionShortAnswer
			q.Options = nil
			q.CorrectOptionIndex = 0
			q.BlankAnswer = "4"
		}, false},
		{"short answer without options or answer", func(q *QuizQuestion) {
			q.Kind = QuestionShortAnswer
			q.Options = nil
			q.CorrectOptionIndex = 0
		}, true},
		{"multiple choice without options", func(q *QuizQuestion) {
			q.Options = nil
			q.CorrectOptionIndex = 0
			q.BlankAnswer = "B"
		}, true},
		{"calculation without options", func(q *QuizQuestion) {
			q.Kind = QuestionCalculation
			q.Options = nil
			q.CorrectOptionIndex = 0
		}, true},
		{"true/false without options", func(q *QuizQuestion) {
			q.Kind = QuestionTrueFalse
			q.Options = nil
			q.CorrectOptionIndex = 0
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid()
			tt.mutate(&q)
			err := q.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				var domainErr *DomainError
				assert.True(t, errors.As(err, &domainErr))
				assert.Equal(t, ErrInvalidInput, domainErr.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOptionIndex(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"A", 0, true},
		{"b", 1, true},
		{" C ", 2, true},
		{"D)", 3, true},
		{"a.", 0, true},
		{"E", 0, false},
		{"", 0, false},
		{"AB", 0, false},
	}
	for _, tt := range tests {
		got, ok := OptionIndex(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
	assert.Equal(t, "C", OptionLetter(2))
	assert.Equal(t, "", OptionLetter(4))
}

func TestParseQuestionKind(t *testing.T) {
	k, ok := ParseQuestionKind("Calculation")
	assert.True(t, ok)
	assert.Equal(t, QuestionCalculation, k)

	k, ok = ParseQuestionKind("fill_in_the_blank")
	assert.True(t, ok)
	assert.Equal(t, QuestionFillBlank, k)

	_, ok = ParseQuestionKind("essay")
	assert.False(t, ok)
}

func TestProviderResult(t *testing.T) {
	ok := Success("hello")
	assert.True(t, ok.OK())
	assert.Equal(t, "hello", ok.Payload)

	cause := errors.New("connection refused")
	failed := Failed(FailureTransport, "request failed", cause)
	assert.False(t, failed.OK())
	assert.Equal(t, FailureTransport, failed.Failure.Kind)
	assert.ErrorIs(t, failed.Failure, cause)
	assert.Contains(t, failed.Failure.Error(), "transport")
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "primary", TierPrimary.String())
	assert.Equal(t, "secondary", TierSecondary.String())
	assert.Equal(t, "offline", TierOffline.String())
}

func TestTier_JSON(t *testing.T) {
	q := QuizQuestion{Text: "Q", Explanation: "E", Source: TierSecondary}
	raw, err := json.Marshal(q)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"source":"secondary"`)

	var back QuizQuestion
	assert.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, TierSecondary, back.Source)

	var tier Tier
	assert.Error(t, tier.UnmarshalText([]byte("quaternary")))
}
