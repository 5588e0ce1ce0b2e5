package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/profileshield/backend/internal/models"
	"gorm.io/gorm"
)

type VerificationService struct {
	db *gorm.DB
}

func NewVerificationService(db *gorm.DB) *VerificationService {
	return &VerificationService{db: db}
}

// Create persists a verification row. The id is generated by the caller, so
// the only failure mode is a storage fault.
func (s *VerificationService) Create(v *models.Verification) error {
	if err := s.db.Create(v).Error; err != nil {
		return fmt.Errorf("failed to create verification: %w", err)
	}
	return nil
}

type HistoryFilter struct {
	Platform string // exact match; empty or "all" means no restriction
	FakeOnly bool
}

// HistoryRow is a verification left-joined with its at-most-one report.
// The report flags are rendered as 0/1, with 0 when no report exists.
type HistoryRow struct {
	ID                      uuid.UUID `json:"id"`
	ProfileURL              string    `json:"profile_url"`
	Platform                string    `json:"platform"`
	Prediction              string    `json:"prediction"`
	Confidence              float64   `json:"confidence"`
	Timestamp               time.Time `json:"timestamp"`
	InternalReported        int       `json:"internal_reported"`
	PlatformReportConfirmed int       `json:"platform_report_confirmed"`
}

// History returns every matching verification joined with its report,
// most recent first. No pagination.
func (s *VerificationService) History(filter HistoryFilter) ([]HistoryRow, error) {
	query := s.db.Model(&models.Verification{}).
		Select(`verifications.id,
			verifications.profile_url,
			verifications.platform,
			verifications.prediction,
			verifications.confidence,
			verifications.timestamp,
			COALESCE(CASE WHEN reports.internal_reported THEN 1 ELSE 0 END, 0) AS internal_reported,
			COALESCE(CASE WHEN reports.platform_report_confirmed THEN 1 ELSE 0 END, 0) AS platform_report_confirmed`).
		Joins("LEFT JOIN reports ON reports.verification_id = verifications.id")

	if filter.Platform != "" && filter.Platform != "all" {
		query = query.Where("verifications.platform = ?", filter.Platform)
	}
	if filter.FakeOnly {
		query = query.Where("verifications.prediction = ?", models.PredictionFake)
	}

	rows := []HistoryRow{}
	if err := query.Order("verifications.timestamp DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	return rows, nil
}

// CountToday counts verifications created during the current calendar day.
func (s *VerificationService) CountToday() (int64, error) {
	return s.countToday(false)
}

// CountTodayFake additionally restricts to Fake predictions.
func (s *VerificationService) CountTodayFake() (int64, error) {
	return s.countToday(true)
}

func (s *VerificationService) countToday(fakeOnly bool) (int64, error) {
	start, end := todayWindow()
	query := s.db.Model(&models.Verification{}).
		Where("timestamp >= ? AND timestamp < ?", start, end)
	if fakeOnly {
		query = query.Where("prediction = ?", models.PredictionFake)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count verifications: %w", err)
	}
	return count, nil
}

// todayWindow computes the day boundaries in Go so the comparison is
// portable across sqlite and postgres.
func todayWindow() (start, end time.Time) {
	now := time.Now()
	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}
