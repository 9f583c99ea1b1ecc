package handler

import (
	"quiz-board/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ResultHandler struct {
	results service.ResultService
}

func NewResultHandler(results service.ResultService) *ResultHandler {
	return &ResultHandler{results: results}
}

// ListByUser godoc
// @Summary List a user's results
// @Description Results newest first, each with its quiz and the quiz's category
// @Tags result
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {array} dto.ResultResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /result/user/{userId} [get]
func (h *ResultHandler) ListByUser(c *fiber.Ctx) error {
	results, err := h.results.ListByUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(results)
}

// ListByQuiz godoc
// @Summary List results for a quiz
// @Tags result
// @Produce json
// @Param quizId path string true "Quiz id"
// @Success 200 {array} dto.ResultResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /result/quiz/{quizId} [get]
func (h *ResultHandler) ListByQuiz(c *fiber.Ctx) error {
	results, err := h.results.ListByQuiz(c.UserContext(), c.Params("quizId"))
	if err != nil {
		return err
	}
	return c.JSON(results)
}
