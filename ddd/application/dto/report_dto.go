package dto

import "biblioteca-service/ddd/domain/notify"

// SummaryReportResponse is the dashboard overview report.
type SummaryReportResponse struct {
	PersonsByType  map[string]int64 `json:"persons_by_type"`
	TotalResources int64            `json:"total_resources"`
	TotalCopies    int64            `json:"total_copies"`
	AvailableCount int64            `json:"available_count"`
	LoansByStatus  map[string]int64 `json:"loans_by_status"`
	Notifications  notify.Stats     `json:"notifications"`
}
