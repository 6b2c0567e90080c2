package domain

import "context"

// ContentService produces educational content through the Primary, Secondary
// and Offline tiers. None of its operations fail: when both remote providers
// are unusable the Offline generator answers.
type ContentService interface {
	// GetDailyQuote returns a motivational quote
	GetDailyQuote(ctx context.Context) Quote

	// GetTopicNotes returns study notes for a topic
	GetTopicNotes(ctx context.Context, subject, grade, topic string) NotesDocument

	// GetComprehensiveNotes returns an extended learning guide for a topic
	GetComprehensiveNotes(ctx context.Context, subject, grade, topic string) NotesDocument

	// GetQuizQuestions returns exactly count questions (none when count <= 0)
	GetQuizQuestions(ctx context.Context, subject, grade, topic string, count int) []QuizQuestion

	// GetChatResponse answers a student's message in the study-buddy chat
	GetChatResponse(ctx context.Context, message string, history []ChatTurn) string

	// CheckAnswer reports whether userAnswer is an acceptable answer to question
	CheckAnswer(ctx context.Context, question, userAnswer, correctAnswer string) bool
}
