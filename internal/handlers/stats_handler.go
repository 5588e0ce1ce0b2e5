package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/profileshield/backend/internal/dto"
	"github.com/profileshield/backend/internal/services"
)

type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Today(c *fiber.Ctx) error {
	stats, err := h.stats.Today()
	if err != nil {
		slog.Error("stats query failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Database error",
		})
	}
	return c.JSON(stats)
}
