package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/profileshield/backend/internal/dto"
	"github.com/profileshield/backend/internal/services"
)

type HistoryHandler struct {
	verifications *services.VerificationService
}

func NewHistoryHandler(verifications *services.VerificationService) *HistoryHandler {
	return &HistoryHandler{verifications: verifications}
}

func (h *HistoryHandler) List(c *fiber.Ctx) error {
	filter := services.HistoryFilter{
		Platform: c.Query("platform"),
		FakeOnly: c.Query("label") == "fake",
	}

	rows, err := h.verifications.History(filter)
	if err != nil {
		slog.Error("history query failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Database error",
		})
	}
	return c.JSON(rows)
}
