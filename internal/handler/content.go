package handler

import (
	"context"
	"time"

	"shulelink/internal/catalog"
	"shulelink/internal/domain"
	"shulelink/internal/dto"
	"shulelink/internal/logger"
	"shulelink/internal/middleware"
	"shulelink/internal/util"
	"shulelink/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = time.Second

// ContentHandler handles content-related HTTP requests
type ContentHandler struct {
	service   domain.ContentService
	cache     domain.Cache
	validator *validation.Validator
}

// NewContentHandler creates a new ContentHandler instance. cache may be nil
// when the service runs without one.
func NewContentHandler(service domain.ContentService, cache domain.Cache) *ContentHandler {
	return &ContentHandler{
		service:   service,
		cache:     cache,
		validator: validation.NewValidator(),
	}
}

// GetDailyQuote godoc
// @Summary Get the quote of the day
// @Description Returns a motivational quote. Falls back to a built-in quote when no provider answers.
// @Tags content
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Router /quote [get]
func (h *ContentHandler) GetDailyQuote(c *fiber.Ctx) error {
	quote := h.service.GetDailyQuote(c.UserContext())
	return c.JSON(dto.QuoteResponse{Text: quote.Text, Author: quote.Author, Source: quote.Source.String()})
}

// GetNotes godoc
// @Summary Get study notes
// @Description Returns study notes for a topic; comprehensive=true returns the extended learning guide
// @Tags content
// @Produce json
// @Param subject query string true "Subject"
// @Param grade query string true "Grade level"
// @Param topic query string true "Topic"
// @Param comprehensive query bool false "Extended learning guide"
// @Success 200 {object} dto.NotesResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /notes [get]
func (h *ContentHandler) GetNotes(c *fiber.Ctx) error {
	subject, grade, topic := topicLocals(c)
	comprehensive := c.QueryBool("comprehensive", false)

	var notes domain.NotesDocument
	if comprehensive {
		notes = h.service.GetComprehensiveNotes(c.UserContext(), subject, grade, topic)
	} else {
		notes = h.service.GetTopicNotes(c.UserContext(), subject, grade, topic)
	}

	return c.JSON(dto.NotesResponse{
		Subject:       subject,
		Grade:         grade,
		Topic:         topic,
		Comprehensive: comprehensive,
		Text:          notes.Text,
	})
}

// ListTopics godoc
// @Summary List reading topics
// @Description Returns the built-in reading lessons for a grade's band. Grades outside 1-7 have no topics.
// @Tags content
// @Produce json
// @Param grade query string true "Grade level"
// @Success 200 {object} dto.TopicListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /topics [get]
func (h *ContentHandler) ListTopics(c *fiber.Ctx) error {
	grade := c.Query("grade")
	if errs := h.validator.ValidateGrade(grade); len(errs) > 0 {
		return errs
	}

	topics := catalog.TopicsForGrade(grade)
	resp := dto.TopicListResponse{Grade: grade, Topics: make([]dto.TopicResponse, 0, len(topics))}
	for _, t := range topics {
		resp.Topics = append(resp.Topics, dto.TopicResponse{
			Title:       t.Title,
			Subject:     t.Subject,
			GradeBand:   string(t.Band),
			Description: t.Description,
			Content:     t.Content,
		})
	}
	return c.JSON(resp)
}

// GetQuizzes godoc
// @Summary Get a quiz batch
// @Description Returns exactly count questions for a topic
// @Tags quiz
// @Produce json
// @Param subject query string true "Subject"
// @Param grade query string true "Grade level"
// @Param topic query string true "Topic"
// @Param count query int false "Number of questions (1-50)" default(30)
// @Success 200 {object} dto.QuizBatchResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quizzes [get]
func (h *ContentHandler) GetQuizzes(c *fiber.Ctx) error {
	subject, grade, topic := topicLocals(c)
	count, _ := c.Locals(middleware.LocalCount).(int)

	questions := h.service.GetQuizQuestions(c.UserContext(), subject, grade, topic, count)

	// Batches may be shared between concurrent callers; build fresh responses.
	resp := dto.QuizBatchResponse{
		Subject:   subject,
		Grade:     grade,
		Topic:     topic,
		Questions: make([]dto.QuizQuestionResponse, 0, len(questions)),
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, toQuestionResponse(q))
	}
	return c.JSON(resp)
}

// Chat godoc
// @Summary Study-buddy chat
// @Description Answers a student's question
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /chat [post]
func (h *ContentHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be valid JSON")
	}
	if errs := h.validator.ValidateChatRequest(req.Message, len(req.History)); len(errs) > 0 {
		return errs
	}

	history := make([]domain.ChatTurn, 0, len(req.History))
	for _, turn := range req.History {
		history = append(history, domain.ChatTurn{Role: turn.Role, Text: turn.Text})
	}

	reply := h.service.GetChatResponse(c.UserContext(), req.Message, history)
	return c.JSON(dto.ChatResponse{Reply: reply})
}

// CheckAnswer godoc
// @Summary Check quiz answer
// @Description Checks if the provided answer is correct
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.CheckAnswerRequest true "Answer details"
// @Success 200 {object} dto.CheckAnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quiz/check [post]
func (h *ContentHandler) CheckAnswer(c *fiber.Ctx) error {
	var req dto.CheckAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be valid JSON")
	}
	if errs := h.validator.ValidateCheckAnswerRequest(req.Question, req.UserAnswer, req.CorrectAnswer); len(errs) > 0 {
		return errs
	}

	correct := h.service.CheckAnswer(c.UserContext(), req.Question, req.UserAnswer, req.CorrectAnswer)
	return c.JSON(dto.CheckAnswerResponse{Correct: correct})
}

// Health godoc
// @Summary Health check
// @Description Reports service status and cache reachability
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *ContentHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", Cache: "disabled"}
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
		defer cancel()
		if err := h.cache.Ping(ctx); err != nil {
			// Content still flows without the cache.
			logger.Get().Warn("Cache ping failed", zap.Error(err))
			resp.Cache = "unavailable"
		} else {
			resp.Cache = "ok"
		}
	}
	return c.JSON(resp)
}

func topicLocals(c *fiber.Ctx) (subject, grade, topic string) {
	subject, _ = c.Locals(middleware.LocalSubject).(string)
	grade, _ = c.Locals(middleware.LocalGrade).(string)
	topic, _ = c.Locals(middleware.LocalTopic).(string)
	return subject, grade, topic
}

func toQuestionResponse(q domain.QuizQuestion) dto.QuizQuestionResponse {
	options := make([]string, len(q.Options))
	copy(options, q.Options)

	id := q.ID
	if id == "" {
		id = util.NewULID()
	}
	return dto.QuizQuestionResponse{
		ID:                 id,
		Question:           q.Text,
		Kind:               string(q.Kind),
		Options:            options,
		CorrectOptionIndex: q.CorrectOptionIndex,
		CorrectAnswer:      q.CorrectAnswer(),
		Explanation:        q.Explanation,
		WorkedSteps:        q.WorkedSteps,
		Formula:            q.Formula,
		Units:              q.Units,
		ShowWorkRequired:   q.ShowWorkRequired,
		Source:             q.Source.String(),
	}
}
