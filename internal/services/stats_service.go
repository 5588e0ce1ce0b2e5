package services

import "github.com/profileshield/backend/internal/dto"

// StatsService aggregates same-day counts over both stores. The three
// counts are independent reads; skew between them is acceptable.
type StatsService struct {
	verifications *VerificationService
	reports       *ReportService
}

func NewStatsService(verifications *VerificationService, reports *ReportService) *StatsService {
	return &StatsService{verifications: verifications, reports: reports}
}

func (s *StatsService) Today() (*dto.StatsResponse, error) {
	total, err := s.verifications.CountToday()
	if err != nil {
		return nil, err
	}
	fake, err := s.verifications.CountTodayFake()
	if err != nil {
		return nil, err
	}
	reports, err := s.reports.CountToday()
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalToday:   total,
		FakeToday:    fake,
		ReportsToday: reports,
	}, nil
}
