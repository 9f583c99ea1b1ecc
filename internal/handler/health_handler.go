package handler

import (
	"context"
	"time"

	"quiz-board/internal/domain"
	"quiz-board/internal/dto"
	"quiz-board/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache domain.Cache
}

// NewHealthHandler accepts a nil cache when Redis is not configured.
func NewHealthHandler(db Pinger, cache domain.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Check godoc
// @Summary Health check
// @Description Pings the database and Redis. Redis is optional, so only a database failure makes the service unhealthy.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: "up", Redis: "disabled"}
	status := fiber.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Error("Health check: database ping failed", zap.Error(err))
		resp.Status, resp.Database = "unavailable", "down"
		status = fiber.StatusServiceUnavailable
	}
	if h.cache != nil {
		resp.Redis = "up"
		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Health check: redis ping failed", zap.Error(err))
			resp.Redis = "down"
			if status == fiber.StatusOK {
				resp.Status = "degraded"
			}
		}
	}
	return c.Status(status).JSON(resp)
}
