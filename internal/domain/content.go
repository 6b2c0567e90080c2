package domain

import (
	"fmt"
	"strings"
)

// ContentKind identifies what a ContentRequest asks the pipeline to produce.
type ContentKind string

const (
	KindQuote              ContentKind = "quote"
	KindNotes              ContentKind = "notes"
	KindComprehensiveNotes ContentKind = "comprehensive_notes"
	KindQuizBatch          ContentKind = "quiz_batch"
	KindChat               ContentKind = "chat"
)

// Tier is one stage of the fallback cascade.
type Tier int

const (
	TierPrimary Tier = iota
	TierSecondary
	TierOffline
)

func (t Tier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierSecondary:
		return "secondary"
	case TierOffline:
		return "offline"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	switch string(b) {
	case "primary":
		*t = TierPrimary
	case "secondary":
		*t = TierSecondary
	case "offline":
		*t = TierOffline
	default:
		return fmt.Errorf("unknown tier %q", string(b))
	}
	return nil
}

// ContentRequest is the immutable description of one caller request.
type ContentRequest struct {
	Kind       ContentKind
	Subject    string
	GradeLevel string
	Topic      string
	Count      int
}

func NewQuoteRequest() ContentRequest {
	return ContentRequest{Kind: KindQuote}
}

func NewNotesRequest(subject, grade, topic string) ContentRequest {
	return ContentRequest{Kind: KindNotes, Subject: subject, GradeLevel: grade, Topic: topic}
}

func NewComprehensiveNotesRequest(subject, grade, topic string) ContentRequest {
	return ContentRequest{Kind: KindComprehensiveNotes, Subject: subject, GradeLevel: grade, Topic: topic}
}

func NewQuizBatchRequest(subject, grade, topic string, count int) ContentRequest {
	return ContentRequest{Kind: KindQuizBatch, Subject: subject, GradeLevel: grade, Topic: topic, Count: count}
}

// Quote is a motivational quote.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Source Tier   `json:"source"`
}

// UnknownAuthor is used when a provider returns a quote without attribution.
const UnknownAuthor = "Unknown"

// NotesDocument holds the prose of a set of study notes.
type NotesDocument struct {
	Text string `json:"text"`
}

// QuestionKind is the archetype of a quiz question.
type QuestionKind string

const (
	QuestionMultipleChoice QuestionKind = "MultipleChoice"
	QuestionTrueFalse      QuestionKind = "TrueFalse"
	QuestionFillBlank      QuestionKind = "FillInTheBlank"
	QuestionCalculation    QuestionKind = "Calculation"
	QuestionShortAnswer    QuestionKind = "ShortAnswer"
)

// ParseQuestionKind maps the names providers use to a QuestionKind.
func ParseQuestionKind(s string) (QuestionKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "multiplechoice", "multiple_choice", "multiple choice", "mcq":
		return QuestionMultipleChoice, true
	case "truefalse", "true_false", "true/false", "true or false":
		return QuestionTrueFalse, true
	case "fillintheblank", "fill_in_the_blank", "fill_blank", "fillblank", "fill in the blank":
		return QuestionFillBlank, true
	case "calculation":
		return QuestionCalculation, true
	case "shortanswer", "short_answer", "short answer":
		return QuestionShortAnswer, true
	}
	return "", false
}

// RequiresOptions reports whether the kind is answered by picking an option.
// FillInTheBlank and ShortAnswer may carry only a BlankAnswer.
func (k QuestionKind) RequiresOptions() bool {
	switch k {
	case QuestionFillBlank, QuestionShortAnswer:
		return false
	}
	return true
}

// MaxOptions is the number of answer slots (A-D) a question can carry.
const MaxOptions = 4

// FallbackExplanation is used when a provider omits the explanation.
const FallbackExplanation = "Review the topic notes to understand why this answer is correct."

// QuizQuestion is a single generated quiz question.
// ID is left empty by the pipeline; the storage collaborator assigns it.
type QuizQuestion struct {
	ID                 string       `json:"id,omitempty"`
	Text               string       `json:"question"`
	Kind               QuestionKind `json:"kind"`
	Options            []string     `json:"options"`
	CorrectOptionIndex int          `json:"correct_option_index"`
	Explanation        string       `json:"explanation"`
	WorkedSteps        string       `json:"worked_steps,omitempty"`
	Formula            string       `json:"formula,omitempty"`
	Units              string       `json:"units,omitempty"`
	BlankAnswer        string       `json:"blank_answer,omitempty"`
	ShowWorkRequired   bool         `json:"show_work_required,omitempty"`
	Source             Tier         `json:"source"`
}

// Validate checks the structural invariants every question must hold.
func (q QuizQuestion) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Options) > MaxOptions {
		return NewInvalidInputError(fmt.Sprintf("question has %d options, at most %d allowed", len(q.Options), MaxOptions))
	}
	if len(q.Options) == 0 {
		if q.Kind.RequiresOptions() {
			return NewInvalidInputError(fmt.Sprintf("%s question needs at least one option", q.Kind))
		}
		if strings.TrimSpace(q.BlankAnswer) == "" {
			return NewInvalidInputError("question without options needs a blank answer")
		}
	}
	if q.Kind == QuestionTrueFalse && len(q.Options) != 2 {
		return NewInvalidInputError("true/false question must have exactly two options")
	}
	if len(q.Options) > 0 {
		if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(q.Options) {
			return NewInvalidInputError(fmt.Sprintf("correct option index %d out of range", q.CorrectOptionIndex))
		}
		if strings.TrimSpace(q.Options[q.CorrectOptionIndex]) == "" {
			return NewInvalidInputError("correct option is empty")
		}
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return NewInvalidInputError("explanation is required")
	}
	return nil
}

// CorrectAnswer returns the text of the correct option, or BlankAnswer for option-less questions.
func (q QuizQuestion) CorrectAnswer() string {
	if q.CorrectOptionIndex >= 0 && q.CorrectOptionIndex < len(q.Options) {
		return q.Options[q.CorrectOptionIndex]
	}
	return q.BlankAnswer
}

// OptionIndex converts an answer letter ("A".."D", case-insensitive) to a 0-based index.
func OptionIndex(letter string) (int, bool) {
	l := strings.ToUpper(strings.TrimSpace(letter))
	l = strings.TrimSuffix(strings.TrimSuffix(l, ")"), ".")
	if len(l) != 1 || l[0] < 'A' || l[0] >= 'A'+MaxOptions {
		return 0, false
	}
	return int(l[0] - 'A'), true
}

// OptionLetter is the inverse of OptionIndex.
func OptionLetter(index int) string {
	if index < 0 || index >= MaxOptions {
		return ""
	}
	return string(rune('A' + index))
}

// ChatTurn is one prior exchange in a study-buddy conversation.
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
