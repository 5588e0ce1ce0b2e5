package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/profileshield/backend/internal/dto"
	"github.com/profileshield/backend/internal/services"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.BodyParser(&req); err != nil ||
		req.VerificationID == "" || req.ProfileURL == "" || req.PlatformName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing required fields",
		})
	}

	verificationID, err := uuid.Parse(req.VerificationID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid verification ID",
		})
	}

	report, err := h.reports.Create(verificationID, req.ProfileURL, req.PlatformName)
	if err != nil {
		slog.Error("report insert failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Database error",
		})
	}

	return c.JSON(dto.ReportResponse{
		ReportID:         report.ID.String(),
		Message:          "Profile reported successfully",
		InternalReported: true,
	})
}

func (h *ReportHandler) Confirm(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("report_id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Report not found",
		})
	}

	if err := h.reports.Confirm(reportID); err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Report not found",
			})
		}
		slog.Error("report confirm failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Database error",
		})
	}

	return c.JSON(dto.ConfirmResponse{
		ReportID:                reportID.String(),
		Message:                 "Platform report confirmed",
		PlatformReportConfirmed: true,
	})
}
