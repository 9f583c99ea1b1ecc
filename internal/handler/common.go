package handler

import (
	"quiz-board/internal/domain"
	"quiz-board/internal/logger"
	"quiz-board/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// currentUser reads the id set by middleware.Protected. ok is false when the
// route was mounted without it.
func currentUser(c *fiber.Ctx) (string, bool) {
	userID := middleware.UserID(c)
	if userID == "" {
		logger.Get().Warn("User ID not found in context", zap.String("path", c.Path()))
		return "", false
	}
	return userID, true
}

func missingUserContext(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
		Code:    "INVALID_USER_CONTEXT",
		Message: "User ID not found in context",
		Status:  fiber.StatusUnauthorized,
	})
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		logger.Get().Debug("Failed to parse request body", zap.String("path", c.Path()), zap.Error(err))
		return domain.NewInvalidInputError("request body is not valid JSON")
	}
	return nil
}
