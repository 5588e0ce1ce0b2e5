package models

import (
	"time"

	"github.com/google/uuid"
)

// Prediction labels produced by the classifier gateway.
const (
	PredictionReal    = "Real"
	PredictionFake    = "Fake"
	PredictionUnknown = "Unknown"
)

// Verification is immutable once written; there is no update path.
type Verification struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileURL  string    `gorm:"not null" json:"profile_url"`
	Platform    string    `gorm:"size:50;not null;index" json:"platform"`
	Prediction  string    `gorm:"size:20;not null" json:"prediction"`
	Confidence  float64   `gorm:"not null" json:"confidence"`
	ImagePath   string    `json:"image_path,omitempty"`
	Timestamp   time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
	UserSession string    `gorm:"size:36;index" json:"-"`
}
