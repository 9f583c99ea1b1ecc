package middleware

import (
	"quiz-board/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware checks path parameters before the handler runs.
type ValidationMiddleware struct {
	validator *validation.Validator
}

func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateQuizIDParam rejects a malformed quiz id in the named path parameter
// and stores the value under "validated_<param>".
func (vm *ValidationMiddleware) ValidateQuizIDParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params(param)
		if errors := vm.validator.ValidateQuizID(param, id); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler
		}
		c.Locals("validated_"+param, id)
		return c.Next()
	}
}
