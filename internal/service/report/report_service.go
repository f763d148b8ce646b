package report

import (
	"context"
	"fmt"

	"workshop-service/internal/domain/job"
)

// Completion is one row of the recent completions list.
type Completion struct {
	RecordID      string            `json:"record_id"`
	LicensePlate  string            `json:"license_plate"`
	ClientName    string            `json:"client_name"`
	PaymentStatus job.PaymentStatus `json:"payment_status"`
	FinalAmount   float64           `json:"final_amount"`
}

// Summary is the derived, read-only view of workshop performance.
type Summary struct {
	TotalRevenue       float64            `json:"total_revenue"`
	JobsCompleted      int                `json:"jobs_completed"`
	TotalHours         float64            `json:"total_hours"`
	StatusCounts       map[job.Status]int `json:"status_counts"`
	RecentCompletions  []Completion       `json:"recent_completions"`
	OutstandingBalance float64            `json:"outstanding_balance"`
}

const recentLimit = 5

// ReportService aggregates statistics over the record collection. It only
// reads; nothing here appends to any communication log.
type ReportService struct {
	recordRepo job.Repository
}

func NewReportService(recordRepo job.Repository) *ReportService {
	return &ReportService{recordRepo: recordRepo}
}

func (s *ReportService) Summarize(ctx context.Context) (*Summary, error) {
	records, err := s.recordRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicle records: %w", err)
	}

	summary := &Summary{StatusCounts: make(map[job.Status]int)}
	for _, r := range records {
		summary.StatusCounts[r.Status]++
		if r.Status != job.StatusCompleted {
			continue
		}
		summary.JobsCompleted++
		summary.TotalRevenue += r.FinalAmount
		summary.TotalHours += r.HoursSpent
		if r.PaymentStatus != job.PaymentPaid {
			summary.OutstandingBalance += r.FinalAmount
		}
		if len(summary.RecentCompletions) < recentLimit {
			summary.RecentCompletions = append(summary.RecentCompletions, Completion{
				RecordID:      r.ID,
				LicensePlate:  r.LicensePlate,
				ClientName:    r.ClientName,
				PaymentStatus: r.PaymentStatus,
				FinalAmount:   r.FinalAmount,
			})
		}
	}
	return summary, nil
}
