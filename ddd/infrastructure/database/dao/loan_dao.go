package dao

import (
	"context"
	"time"

	"gorm.io/gorm"

	"biblioteca-service/ddd/domain/entity"
	"biblioteca-service/ddd/domain/repo"
	"biblioteca-service/ddd/infrastructure/database/po"
	"biblioteca-service/internal/resource"
)

type LoanDao struct {
	db *gorm.DB
}

func NewLoanDao() *LoanDao {
	return &LoanDao{db: resource.MainDB()}
}

func (d *LoanDao) Create(ctx context.Context, p *po.Loan) error {
	return d.db.WithContext(ctx).Create(p).Error
}

func (d *LoanDao) GetByID(ctx context.Context, id string) (*po.Loan, error) {
	var p po.Loan
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *LoanDao) List(ctx context.Context, filter repo.LoanFilter, offset, limit int) ([]po.Loan, int64, error) {
	q := d.db.WithContext(ctx).Model(&po.Loan{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.PersonID != "" {
		q = q.Where("person_id = ?", filter.PersonID)
	}
	if filter.ResourceID != "" {
		q = q.Where("resource_id = ?", filter.ResourceID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pos []po.Loan
	err := q.Order("loan_date DESC").Offset(offset).Limit(limit).Find(&pos).Error
	if err != nil {
		return nil, 0, err
	}
	return pos, total, nil
}

func (d *LoanDao) ListRelevant(ctx context.Context) ([]po.Loan, error) {
	var pos []po.Loan
	err := d.db.WithContext(ctx).
		Where("status IN ?", []string{entity.LoanStatusActive, entity.LoanStatusOverdue}).
		Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return pos, nil
}

func (d *LoanDao) Update(ctx context.Context, p *po.Loan) error {
	return d.db.WithContext(ctx).Save(p).Error
}

func (d *LoanDao) MarkOverdue(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return d.db.WithContext(ctx).
		Model(&po.Loan{}).
		Where("id IN ? AND status = ?", ids, entity.LoanStatusActive).
		Updates(map[string]interface{}{
			"status":     entity.LoanStatusOverdue,
			"updated_at": time.Now(),
		}).Error
}

func (d *LoanDao) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&po.Loan{}).Error
}

func (d *LoanDao) ListForReport(ctx context.Context, status string, from, to *time.Time) ([]po.Loan, error) {
	q := d.db.WithContext(ctx).Model(&po.Loan{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if from != nil {
		q = q.Where("loan_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("loan_date < ?", to.AddDate(0, 0, 1))
	}
	var pos []po.Loan
	err := q.Order("loan_date ASC").Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return pos, nil
}

func (d *LoanDao) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := d.db.WithContext(ctx).
		Model(&po.Loan{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Count
	}
	return out, nil
}
