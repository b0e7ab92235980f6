package persistence

import (
	"context"
	"time"

	"biblioteca-service/ddd/domain/entity"
	drepo "biblioteca-service/ddd/domain/repo"
	"biblioteca-service/ddd/infrastructure/database/dao"
	"biblioteca-service/ddd/infrastructure/database/po"
)

type loanRepositoryImpl struct {
	dao *dao.LoanDao
}

func NewLoanRepository() drepo.LoanRepository {
	return &loanRepositoryImpl{dao: dao.NewLoanDao()}
}

func (r *loanRepositoryImpl) Create(ctx context.Context, l *entity.Loan) error {
	return r.dao.Create(ctx, loanToPo(l))
}

func (r *loanRepositoryImpl) GetByID(ctx context.Context, id string) (*entity.Loan, error) {
	p, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return loanToEntity(p), nil
}

func (r *loanRepositoryImpl) List(ctx context.Context, filter drepo.LoanFilter, offset, limit int) ([]*entity.Loan, int64, error) {
	pos, total, err := r.dao.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	res := make([]*entity.Loan, 0, len(pos))
	for i := range pos {
		res = append(res, loanToEntity(&pos[i]))
	}
	return res, total, nil
}

func (r *loanRepositoryImpl) ListRelevant(ctx context.Context) ([]*entity.Loan, error) {
	pos, err := r.dao.ListRelevant(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]*entity.Loan, 0, len(pos))
	for i := range pos {
		res = append(res, loanToEntity(&pos[i]))
	}
	return res, nil
}

func (r *loanRepositoryImpl) Update(ctx context.Context, l *entity.Loan) error {
	return r.dao.Update(ctx, loanToPo(l))
}

func (r *loanRepositoryImpl) MarkOverdue(ctx context.Context, ids []string) error {
	return r.dao.MarkOverdue(ctx, ids)
}

func (r *loanRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.dao.Delete(ctx, id)
}

func (r *loanRepositoryImpl) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return r.dao.CountByStatus(ctx)
}

func (r *loanRepositoryImpl) ListForReport(ctx context.Context, status string, from, to *time.Time) ([]*entity.Loan, error) {
	pos, err := r.dao.ListForReport(ctx, status, from, to)
	if err != nil {
		return nil, err
	}
	res := make([]*entity.Loan, 0, len(pos))
	for i := range pos {
		res = append(res, loanToEntity(&pos[i]))
	}
	return res, nil
}

func loanToPo(l *entity.Loan) *po.Loan {
	return &po.Loan{
		ID:            l.ID,
		PersonID:      l.PersonID,
		ResourceID:    l.ResourceID,
		PersonName:    l.PersonName,
		ResourceTitle: l.ResourceTitle,
		LoanDate:      l.LoanDate,
		DueDate:       l.DueDate,
		ReturnedAt:    l.ReturnedAt,
		Status:        l.Status,
		Observations:  l.Observations,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func loanToEntity(p *po.Loan) *entity.Loan {
	return &entity.Loan{
		ID:            p.ID,
		PersonID:      p.PersonID,
		ResourceID:    p.ResourceID,
		PersonName:    p.PersonName,
		ResourceTitle: p.ResourceTitle,
		LoanDate:      p.LoanDate,
		DueDate:       p.DueDate,
		ReturnedAt:    p.ReturnedAt,
		Status:        p.Status,
		Observations:  p.Observations,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
