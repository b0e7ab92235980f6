package repo

import (
	"context"
	"time"

	"biblioteca-service/ddd/domain/entity"
)

// LoanFilter narrows loan listings. Zero values mean "no filter".
type LoanFilter struct {
	Status     string
	PersonID   string
	ResourceID string
}

// LoanRepository hides loan persistence from the application layer.
type LoanRepository interface {
	Create(ctx context.Context, l *entity.Loan) error
	GetByID(ctx context.Context, id string) (*entity.Loan, error)
	List(ctx context.Context, filter LoanFilter, offset, limit int) ([]*entity.Loan, int64, error)
	// ListRelevant returns every loan in active or overdue status,
	// the full input set the notification deriver expects.
	ListRelevant(ctx context.Context) ([]*entity.Loan, error)
	Update(ctx context.Context, l *entity.Loan) error
	// MarkOverdue flips the given active loans to overdue status.
	MarkOverdue(ctx context.Context, ids []string) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
	// ListForReport returns loans for the printable report, optionally
	// filtered by status and loan-date range, ordered by loan date.
	ListForReport(ctx context.Context, status string, from, to *time.Time) ([]*entity.Loan, error)
}
