package handler

import (
	"quiz-board/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LeaderboardHandler struct {
	leaderboard service.LeaderboardService
}

func NewLeaderboardHandler(leaderboard service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

// GetAll godoc
// @Summary All-time leaderboard
// @Description Users ordered by total points, highest first, with rank
// @Tags leaderboard
// @Produce json
// @Success 200 {array} dto.LeaderboardEntryResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /leaderboard [get]
func (h *LeaderboardHandler) GetAll(c *fiber.Ctx) error {
	entries, err := h.leaderboard.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

// GetWeekly godoc
// @Summary Weekly leaderboard
// @Description Points from results completed in the current week
// @Tags leaderboard
// @Produce json
// @Success 200 {array} dto.LeaderboardEntryResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /leaderboard/weekly [get]
func (h *LeaderboardHandler) GetWeekly(c *fiber.Ctx) error {
	entries, err := h.leaderboard.GetWeekly(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

// GetByUser godoc
// @Summary Leaderboard entry for one user
// @Tags leaderboard
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} dto.LeaderboardEntryResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /leaderboard/user/{userId} [get]
func (h *LeaderboardHandler) GetByUser(c *fiber.Ctx) error {
	entry, err := h.leaderboard.GetByUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(entry)
}
