package middleware

import (
	"strconv"

	"shulelink/internal/domain"
	"shulelink/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware
const (
	LocalSubject = "validated_subject"
	LocalGrade   = "validated_grade"
	LocalTopic   = "validated_topic"
	LocalCount   = "validated_count"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateTopicParams validates the subject, grade and topic query parameters
func (vm *ValidationMiddleware) ValidateTopicParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject, grade, topic := c.Query("subject"), c.Query("grade"), c.Query("topic")
		if errors := vm.validator.ValidateTopic(subject, grade, topic); len(errors) > 0 {
			return errors
		}
		storeTopic(c, subject, grade, topic)
		return c.Next()
	}
}

// ValidateQuizParams validates quiz batch query parameters
func (vm *ValidationMiddleware) ValidateQuizParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject, grade, topic := c.Query("subject"), c.Query("grade"), c.Query("topic")

		count := validation.DefaultQuizCount
		if countStr := c.Query("count"); countStr != "" {
			parsed, err := strconv.Atoi(countStr)
			if err != nil {
				return domain.ValidationErrors{domain.NewInvalidFormatError("count", countStr)}
			}
			count = parsed
		}

		if errors := vm.validator.ValidateQuizRequest(subject, grade, topic, count); len(errors) > 0 {
			return errors
		}

		storeTopic(c, subject, grade, topic)
		c.Locals(LocalCount, count)
		return c.Next()
	}
}

func storeTopic(c *fiber.Ctx, subject, grade, topic string) {
	c.Locals(LocalSubject, subject)
	c.Locals(LocalGrade, grade)
	c.Locals(LocalTopic, topic)
}
