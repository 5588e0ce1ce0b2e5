package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/profileshield/backend/internal/classifier"
	"github.com/profileshield/backend/internal/dto"
	"github.com/profileshield/backend/internal/features"
	"github.com/profileshield/backend/internal/middleware"
	"github.com/profileshield/backend/internal/models"
	"github.com/profileshield/backend/internal/services"
)

// Classifier is the outbound prediction call. It never fails; degraded
// results are folded into the returned verdict.
type Classifier interface {
	Classify(ctx context.Context, rec features.Record) classifier.Result
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

type VerifyHandler struct {
	verifications *services.VerificationService
	classifier    Classifier
	uploadDir     string
}

func NewVerifyHandler(verifications *services.VerificationService, cls Classifier, uploadDir string) *VerifyHandler {
	return &VerifyHandler{verifications: verifications, classifier: cls, uploadDir: uploadDir}
}

func (h *VerifyHandler) Verify(c *fiber.Ctx) error {
	var req dto.VerifyRequest
	if err := c.BodyParser(&req); err != nil || req.URL == "" || req.Platform == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "URL and platform required",
		})
	}

	rec, err := features.Extract(req.URL, req.Platform)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid URL",
		})
	}

	result := h.classifier.Classify(c.Context(), rec)

	verification := &models.Verification{
		ID:          uuid.New(),
		ProfileURL:  req.URL,
		Platform:    req.Platform,
		Prediction:  result.Prediction,
		Confidence:  result.Confidence,
		UserSession: middleware.GetSession(c),
	}
	if err := h.verifications.Create(verification); err != nil {
		slog.Error("verification insert failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Database error",
		})
	}

	return c.JSON(verifyResponse(verification, nil))
}

// VerifyLinkedIn is the image-capable variant: multipart form with a url
// field and an optional image file. Platform is always linkedin.
func (h *VerifyHandler) VerifyLinkedIn(c *fiber.Ctx) error {
	rawURL := c.FormValue("url")
	if rawURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "URL required",
		})
	}

	rec, err := features.Extract(rawURL, "linkedin")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid URL",
		})
	}

	imagePath, err := h.saveImage(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	result := h.classifier.Classify(c.Context(), rec)

	verification := &models.Verification{
		ID:          uuid.New(),
		ProfileURL:  rawURL,
		Platform:    "linkedin",
		Prediction:  result.Prediction,
		Confidence:  result.Confidence,
		ImagePath:   imagePath,
		UserSession: middleware.GetSession(c),
	}
	if err := h.verifications.Create(verification); err != nil {
		slog.Error("verification insert failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Database error",
		})
	}

	uploaded := imagePath != ""
	return c.JSON(verifyResponse(verification, &uploaded))
}

// saveImage stores the optional uploaded image under a fresh uuid name.
// Returns the empty path when no file was sent.
func (h *VerifyHandler) saveImage(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	if !allowedImageTypes[file.Header.Get("Content-Type")] {
		return "", errors.New("Only images allowed")
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	path := filepath.Join(h.uploadDir, name)
	if err := c.SaveFile(file, path); err != nil {
		slog.Error("image save failed", "error", err)
		return "", errors.New("Failed to store image")
	}
	return path, nil
}

func verifyResponse(v *models.Verification, imageUploaded *bool) dto.VerifyResponse {
	return dto.VerifyResponse{
		VerificationID:   v.ID.String(),
		ProfileURL:       v.ProfileURL,
		Platform:         v.Platform,
		Prediction:       v.Prediction,
		Confidence:       fmt.Sprintf("%.2f%%", v.Confidence*100),
		ImageUploaded:    imageUploaded,
		FeaturesAnalyzed: features.FieldCount,
	}
}
