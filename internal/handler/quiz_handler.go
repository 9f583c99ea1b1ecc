package handler

import (
	"quiz-board/internal/domain"
	"quiz-board/internal/dto"
	"quiz-board/internal/middleware"
	"quiz-board/internal/service"
	"quiz-board/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	quizzes     service.QuizService
	submissions service.SubmissionService
	validator   *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizzes service.QuizService, submissions service.SubmissionService) *QuizHandler {
	return &QuizHandler{
		quizzes:     quizzes,
		submissions: submissions,
		validator:   validation.NewValidator(),
	}
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description Creates a quiz with its questions. The slug is derived from the title. When a token is sent, userId defaults to the token's user and must match it.
// @Tags quiz
// @Accept json
// @Produce json
// @Param quiz body dto.CreateQuizRequest true "Quiz"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/create [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if tokenUser := middleware.UserID(c); tokenUser != "" {
		if req.UserID == "" {
			req.UserID = tokenUser
		} else if req.UserID != tokenUser {
			return domain.NewUnauthorizedError("userId does not match the authenticated user")
		}
	}

	if errs := h.validator.ValidateCreateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	quiz, err := h.quizzes.CreateQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(quiz)
}

// ListQuizzes godoc
// @Summary List quizzes
// @Description Returns every quiz, newest first, with its category
// @Tags quiz
// @Produce json
// @Success 200 {array} dto.QuizResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/get [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	quizzes, err := h.quizzes.ListQuizzes(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}

// GetQuizBySlug godoc
// @Summary Get a quiz by slug
// @Description Returns the quiz with its questions and answers. Correct answers are not included.
// @Tags quiz
// @Security ApiKeyAuth
// @Produce json
// @Param slug path string true "Quiz slug"
// @Success 200 {object} dto.QuizResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/get/{slug} [get]
func (h *QuizHandler) GetQuizBySlug(c *fiber.Ctx) error {
	quiz, err := h.quizzes.GetQuizBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// ListQuizzesByUser godoc
// @Summary List a user's quizzes
// @Tags quiz
// @Produce json
// @Param userId path string true "Author id"
// @Success 200 {array} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/user/{userId} [get]
func (h *QuizHandler) ListQuizzesByUser(c *fiber.Ctx) error {
	quizzes, err := h.quizzes.ListQuizzesByUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}

// ListQuizzesByCategory godoc
// @Summary List quizzes in a category
// @Tags quiz
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} dto.CategoryQuizzesResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/category/{slug} [get]
func (h *QuizHandler) ListQuizzesByCategory(c *fiber.Ctx) error {
	resp, err := h.quizzes.ListQuizzesByCategory(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuizStatistics godoc
// @Summary Quiz statistics
// @Description Attempts and average score computed from stored results
// @Tags quiz
// @Produce json
// @Param quizId path string true "Quiz id"
// @Success 200 {object} dto.QuizStatisticsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/statistics/{quizId} [get]
func (h *QuizHandler) GetQuizStatistics(c *fiber.Ctx) error {
	stats, err := h.quizzes.GetQuizStatistics(c.UserContext(), c.Params("quizId"))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// FinishQuiz godoc
// @Summary Submit answers for grading
// @Description Grades the submission, stores it as the user's result for the quiz (replacing any earlier one) and updates quiz popularity and the leaderboard.
// @Tags quiz
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param submission body dto.FinishQuizRequest true "Selected answer index per question; null or -1 for unanswered"
// @Success 201 {object} dto.FinishQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/finish [post]
func (h *QuizHandler) FinishQuiz(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return missingUserContext(c)
	}

	var req dto.FinishQuizRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateFinishQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	result, err := h.submissions.Finish(c.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
