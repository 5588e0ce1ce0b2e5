package dto

type VerifyRequest struct {
	URL      string `json:"url"`
	Platform string `json:"platform"`
}

// VerifyResponse renders confidence as a percentage string with two
// decimals. ImageUploaded is only present on the image-capable flow.
type VerifyResponse struct {
	VerificationID   string `json:"verification_id"`
	ProfileURL       string `json:"profile_url"`
	Platform         string `json:"platform"`
	Prediction       string `json:"prediction"`
	Confidence       string `json:"confidence"`
	ImageUploaded    *bool  `json:"image_uploaded,omitempty"`
	FeaturesAnalyzed int    `json:"features_analyzed"`
}

type StatsResponse struct {
	TotalToday   int64 `json:"total_today"`
	FakeToday    int64 `json:"fake_today"`
	ReportsToday int64 `json:"reports_today"`
}
