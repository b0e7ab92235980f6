package app

import (
	"context"
	"time"

	"biblioteca-service/ddd/application/cqe"
	"biblioteca-service/ddd/application/dto"
	"biblioteca-service/ddd/domain/entity"
	"biblioteca-service/ddd/domain/notify"
	drepo "biblioteca-service/ddd/domain/repo"
	"biblioteca-service/ddd/infrastructure/database/persistence"
	"biblioteca-service/pkg/config"
	"biblioteca-service/pkg/pdfgen"
)

// ReportApp builds the dashboard summary and the printable loan report.
type ReportApp interface {
	Summary(ctx context.Context) (*dto.SummaryReportResponse, error)
	LoanReportPDF(ctx context.Context, req *cqe.LoanReportReq) ([]byte, error)
}

type reportAppImpl struct {
	loans     drepo.LoanRepository
	persons   drepo.PersonRepository
	resources drepo.ResourceRepository
	now       func() time.Time
}

// DefaultReportApp returns the default application service.
func DefaultReportApp() ReportApp {
	return &reportAppImpl{
		loans:     persistence.NewLoanRepository(),
		persons:   persistence.NewPersonRepository(),
		resources: persistence.NewResourceRepository(),
		now:       time.Now,
	}
}

func (a *reportAppImpl) Summary(ctx context.Context) (*dto.SummaryReportResponse, error) {
	personsByType, err := a.persons.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := a.resources.StockSummary(ctx)
	if err != nil {
		return nil, err
	}
	loansByStatus, err := a.loans.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	relevant, err := a.loans.ListRelevant(ctx)
	if err != nil {
		return nil, err
	}
	flat := make([]entity.Loan, 0, len(relevant))
	for _, l := range relevant {
		if l != nil {
			flat = append(flat, *l)
		}
	}
	_, stats := notify.Derive(flat, a.now(), config.GetGlobalConfig().Notification.ExpiringWindowDays)

	return &dto.SummaryReportResponse{
		PersonsByType:  personsByType,
		TotalResources: stock.TotalResources,
		TotalCopies:    stock.TotalCopies,
		AvailableCount: stock.Available,
		LoansByStatus:  loansByStatus,
		Notifications:  stats,
	}, nil
}

func (a *reportAppImpl) LoanReportPDF(ctx context.Context, req *cqe.LoanReportReq) ([]byte, error) {
	if req == nil {
		req = &cqe.LoanReportReq{}
	}

	loans, err := a.loans.ListForReport(ctx, req.Status, req.From, req.To)
	if err != nil {
		return nil, err
	}
	counts, err := a.loans.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]pdfgen.LoanRow, 0, len(loans))
	for _, l := range loans {
		rows = append(rows, pdfgen.LoanRow{
			PersonName:    l.PersonName,
			ResourceTitle: l.ResourceTitle,
			LoanDate:      l.LoanDate,
			DueDate:       l.DueDate,
			Status:        l.Status,
		})
	}

	cfg := config.GetGlobalConfig()
	report := &pdfgen.LoanReport{
		Title:       cfg.Report.Title,
		GeneratedAt: a.now(),
		LogoPath:    cfg.Report.LogoPath,
		Summary: []pdfgen.SummaryLine{
			{Label: "Active loans", Value: counts[entity.LoanStatusActive]},
			{Label: "Overdue loans", Value: counts[entity.LoanStatusOverdue]},
			{Label: "Returned loans", Value: counts[entity.LoanStatusReturned]},
			{Label: "Lost loans", Value: counts[entity.LoanStatusLost]},
		},
		Rows: rows,
	}
	return pdfgen.RenderLoanReport(report)
}
