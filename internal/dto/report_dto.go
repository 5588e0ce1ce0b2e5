package dto

type ReportRequest struct {
	VerificationID string `json:"verification_id"`
	ProfileURL     string `json:"profile_url"`
	PlatformName   string `json:"platform_name"`
}

type ReportResponse struct {
	ReportID         string `json:"report_id"`
	Message          string `json:"message"`
	InternalReported bool   `json:"internal_reported"`
}

type ConfirmResponse struct {
	ReportID                string `json:"report_id"`
	Message                 string `json:"message"`
	PlatformReportConfirmed bool   `json:"platform_report_confirmed"`
}
