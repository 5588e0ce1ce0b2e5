package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/profileshield/backend/internal/models"
	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("report not found")

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// Create inserts a report for a verification. internal_reported is always
// set at creation; platform confirmation starts false.
func (s *ReportService) Create(verificationID uuid.UUID, profileURL, platformName string) (*models.Report, error) {
	report := models.Report{
		ID:               uuid.New(),
		VerificationID:   verificationID,
		ProfileURL:       profileURL,
		PlatformName:     platformName,
		InternalReported: true,
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

// Confirm marks the report as confirmed on the platform. Confirming an
// already-confirmed report succeeds ("set true" semantics); only a missing
// id is an error.
func (s *ReportService) Confirm(reportID uuid.UUID) error {
	result := s.db.Model(&models.Report{}).
		Where("id = ?", reportID).
		Update("platform_report_confirmed", true)
	if result.Error != nil {
		return fmt.Errorf("failed to confirm report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}

// CountToday counts reports filed during the current calendar day.
func (s *ReportService) CountToday() (int64, error) {
	start, end := todayWindow()

	var count int64
	err := s.db.Model(&models.Report{}).
		Where("reported_at >= ? AND reported_at < ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}
