package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/profileshield/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Verification{}, &models.Report{}))
	return db
}

func newVerification(platform, prediction string) *models.Verification {
	return &models.Verification{
		ID:          uuid.New(),
		ProfileURL:  "https://" + platform + ".com/someuser",
		Platform:    platform,
		Prediction:  prediction,
		Confidence:  0.875,
		UserSession: uuid.New().String(),
	}
}

func TestVerificationRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewVerificationService(db)

	v := &models.Verification{
		ID:          uuid.New(),
		ProfileURL:  "https://linkedin.com/in/jane-doe?utm=x",
		Platform:    "linkedin",
		Prediction:  models.PredictionFake,
		Confidence:  0.875,
		ImagePath:   "uploads/abc.png",
		UserSession: "session-1",
	}
	require.NoError(t, svc.Create(v))

	rows, err := svc.History(HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, v.ID, row.ID)
	assert.Equal(t, v.ProfileURL, row.ProfileURL)
	assert.Equal(t, v.Platform, row.Platform)
	assert.Equal(t, v.Prediction, row.Prediction)
	assert.Equal(t, v.Confidence, row.Confidence)
	assert.Equal(t, 0, row.InternalReported)
	assert.Equal(t, 0, row.PlatformReportConfirmed)
}

func TestReportLifecycle(t *testing.T) {
	db := newTestDB(t)
	verifications := NewVerificationService(db)
	reports := NewReportService(db)

	v := newVerification("instagram", models.PredictionFake)
	require.NoError(t, verifications.Create(v))

	report, err := reports.Create(v.ID, v.ProfileURL, v.Platform)
	require.NoError(t, err)
	assert.True(t, report.InternalReported)
	assert.False(t, report.PlatformReportConfirmed)

	rows, err := verifications.History(HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].InternalReported)
	assert.Equal(t, 0, rows[0].PlatformReportConfirmed)

	require.NoError(t, reports.Confirm(report.ID))

	rows, err = verifications.History(HistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, rows[0].PlatformReportConfirmed)

	// Confirming again is idempotent success
	require.NoError(t, reports.Confirm(report.ID))
	rows, err = verifications.History(HistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, rows[0].PlatformReportConfirmed)

	assert.ErrorIs(t, reports.Confirm(uuid.New()), ErrReportNotFound)
}

func TestHistoryFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewVerificationService(db)

	require.NoError(t, svc.Create(newVerification("linkedin", models.PredictionFake)))
	require.NoError(t, svc.Create(newVerification("instagram", models.PredictionReal)))
	require.NoError(t, svc.Create(newVerification("other", models.PredictionFake)))

	rows, err := svc.History(HistoryFilter{Platform: "linkedin"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "linkedin", rows[0].Platform)

	rows, err = svc.History(HistoryFilter{Platform: "all"})
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	rows, err = svc.History(HistoryFilter{FakeOnly: true})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, models.PredictionFake, row.Prediction)
	}

	rows, err = svc.History(HistoryFilter{Platform: "instagram", FakeOnly: true})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestHistoryOrderedByTimestampDesc(t *testing.T) {
	db := newTestDB(t)
	svc := NewVerificationService(db)

	now := time.Now()
	oldest := newVerification("instagram", models.PredictionReal)
	oldest.Timestamp = now.Add(-2 * time.Hour)
	middle := newVerification("instagram", models.PredictionReal)
	middle.Timestamp = now.Add(-1 * time.Hour)
	newest := newVerification("instagram", models.PredictionReal)
	newest.Timestamp = now

	require.NoError(t, svc.Create(middle))
	require.NoError(t, svc.Create(oldest))
	require.NoError(t, svc.Create(newest))

	rows, err := svc.History(HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, newest.ID, rows[0].ID)
	assert.Equal(t, middle.ID, rows[1].ID)
	assert.Equal(t, oldest.ID, rows[2].ID)
}

func TestCountToday(t *testing.T) {
	db := newTestDB(t)
	verifications := NewVerificationService(db)
	reports := NewReportService(db)

	yesterday := newVerification("instagram", models.PredictionFake)
	yesterday.Timestamp = time.Now().AddDate(0, 0, -1)
	today := newVerification("instagram", models.PredictionFake)
	todayReal := newVerification("linkedin", models.PredictionReal)

	require.NoError(t, verifications.Create(yesterday))
	require.NoError(t, verifications.Create(today))
	require.NoError(t, verifications.Create(todayReal))

	total, err := verifications.CountToday()
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	fake, err := verifications.CountTodayFake()
	require.NoError(t, err)
	assert.Equal(t, int64(1), fake)

	oldReport, err := reports.Create(yesterday.ID, yesterday.ProfileURL, yesterday.Platform)
	require.NoError(t, err)
	require.NoError(t, db.Model(oldReport).Update("reported_at", time.Now().AddDate(0, 0, -1)).Error)
	_, err = reports.Create(today.ID, today.ProfileURL, today.Platform)
	require.NoError(t, err)

	reportCount, err := reports.CountToday()
	require.NoError(t, err)
	assert.Equal(t, int64(1), reportCount)
}
