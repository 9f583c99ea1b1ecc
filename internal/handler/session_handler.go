package handler

import (
	"quiz-board/internal/dto"
	"quiz-board/internal/service"
	"quiz-board/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler exposes the one-question-at-a-time flow. All routes are protected.
type SessionHandler struct {
	sessions  service.SessionService
	validator *validation.Validator
}

func NewSessionHandler(sessions service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions, validator: validation.NewValidator()}
}

// Start godoc
// @Summary Start a quiz session
// @Tags session
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param session body dto.StartSessionRequest true "Quiz to take"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /session/start [post]
func (h *SessionHandler) Start(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return missingUserContext(c)
	}

	var req dto.StartSessionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateQuizID("quizId", req.QuizID); len(errs) > 0 {
		return errs
	}

	session, err := h.sessions.Start(c.UserContext(), userID, req.QuizID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// Answer godoc
// @Summary Answer the current question
// @Description On the last question the session is graded and the result is attached
// @Tags session
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param answer body dto.SessionAnswerRequest true "Selected answer; null or -1 skips"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /session/{id}/answer [post]
func (h *SessionHandler) Answer(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return missingUserContext(c)
	}

	var req dto.SessionAnswerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateSessionAnswer(&req); len(errs) > 0 {
		return errs
	}

	session, err := h.sessions.Answer(c.UserContext(), userID, c.Params("id"), req.SelectedAnswer)
	if err != nil {
		return err
	}
	return c.JSON(session)
}

// Get godoc
// @Summary Get a quiz session
// @Tags session
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /session/{id} [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return missingUserContext(c)
	}
	session, err := h.sessions.Get(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(session)
}
