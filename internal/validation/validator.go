package validation

import (
	"regexp"
	"strings"

	"shulelink/internal/domain"
)

const (
	MinQuizCount     = 1
	MaxQuizCount     = 50
	DefaultQuizCount = 30

	maxFieldLength   = 100
	maxMessageLength = 2000
	maxHistoryTurns  = 20
)

var (
	// Subjects, grades and topics are free text but limited to printable words.
	topicFieldPattern = regexp.MustCompile(`^[\p{L}\p{N} '&(),.\-/]+$`)
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateTopic validates the subject, grade and topic triple
func (v *Validator) ValidateTopic(subject, grade, topic string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	for _, f := range []struct{ name, value string }{
		{"subject", subject},
		{"grade", grade},
		{"topic", topic},
	} {
		if err, bad := validateTopicField(f.name, f.value); bad {
			errors = append(errors, err)
		}
	}
	return errors
}

// ValidateGrade validates a lone grade level
func (v *Validator) ValidateGrade(grade string) domain.ValidationErrors {
	if err, bad := validateTopicField("grade", grade); bad {
		return domain.ValidationErrors{err}
	}
	return nil
}

// ValidateQuizRequest validates a quiz batch request
func (v *Validator) ValidateQuizRequest(subject, grade, topic string, count int) domain.ValidationErrors {
	errors := v.ValidateTopic(subject, grade, topic)
	if count < MinQuizCount || count > MaxQuizCount {
		errors = append(errors, domain.NewOutOfRangeError("count", count, MinQuizCount, MaxQuizCount))
	}
	return errors
}

// ValidateChatRequest validates a chat message and its history
func (v *Validator) ValidateChatRequest(message string, historyLen int) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(message) == "" {
		errors = append(errors, domain.NewMissingFieldError("message"))
	} else if len(message) > maxMessageLength {
		errors = append(errors, domain.NewOutOfRangeError("message", len(message), 1, maxMessageLength))
	}
	if historyLen > maxHistoryTurns {
		errors = append(errors, domain.NewOutOfRangeError("history", historyLen, 0, maxHistoryTurns))
	}
	return errors
}

// ValidateCheckAnswerRequest validates the check answer request
func (v *Validator) ValidateCheckAnswerRequest(question, userAnswer, correctAnswer string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(question) == "" {
		errors = append(errors, domain.NewMissingFieldError("question"))
	}

	if strings.TrimSpace(userAnswer) == "" {
		errors = append(errors, domain.NewMissingFieldError("user_answer"))
	} else if len(userAnswer) > maxMessageLength {
		errors = append(errors, domain.NewOutOfRangeError("user_answer", len(userAnswer), 1, maxMessageLength))
	}

	if strings.TrimSpace(correctAnswer) == "" {
		errors = append(errors, domain.NewMissingFieldError("correct_answer"))
	}

	return errors
}

func validateTopicField(name, value string) (domain.ValidationError, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.NewMissingFieldError(name), true
	}
	if len(value) > maxFieldLength || !topicFieldPattern.MatchString(value) {
		return domain.NewInvalidFormatError(name, value), true
	}
	return domain.ValidationError{}, false
}
