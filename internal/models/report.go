package models

import (
	"time"

	"github.com/google/uuid"
)

// Report links a user flag to a verification. profile_url and platform_name
// are denormalized copies captured at report time. Lifecycle is forward-only:
// created with internal_reported set, confirmed at most once, never deleted.
type Report struct {
	ID                      uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	VerificationID          uuid.UUID    `gorm:"type:uuid;not null;index" json:"verification_id"`
	ProfileURL              string       `gorm:"not null" json:"profile_url"`
	PlatformName            string       `gorm:"size:50;not null" json:"platform_name"`
	InternalReported        bool         `gorm:"not null;default:false" json:"internal_reported"`
	PlatformReportConfirmed bool         `gorm:"not null;default:false" json:"platform_report_confirmed"`
	ReportedAt              time.Time    `gorm:"autoCreateTime;index" json:"reported_at"`
	Verification            Verification `gorm:"foreignKey:VerificationID" json:"-"`
}
